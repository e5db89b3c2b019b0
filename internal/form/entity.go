package form

import (
	"time"

	"github.com/google/uuid"

	"github.com/educahub/educahub-lambda/internal/user"
)

type Form struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title       string    `gorm:"type:text;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	TemplateURL string    `gorm:"type:text" json:"template_url,omitempty"`
	Active      bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type Submission struct {
	ID         uuid.UUID        `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	FormID     uuid.UUID        `gorm:"type:uuid;not null;index" json:"form_id"`
	Form       Form             `gorm:"foreignKey:FormID;constraint:OnDelete:CASCADE" json:"-"`
	UserID     uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	User       user.User        `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	PDFURL     string           `gorm:"type:text;not null" json:"pdf_url"`
	Status     SubmissionStatus `gorm:"type:text;not null;default:PENDING" json:"status"`
	ReviewNote string           `gorm:"type:text" json:"review_note,omitempty"`
	ReviewedBy *uuid.UUID       `gorm:"type:uuid" json:"reviewed_by,omitempty"`
	ReviewedAt *time.Time       `json:"reviewed_at,omitempty"`
	CreatedAt  time.Time        `gorm:"autoCreateTime" json:"created_at"`
}
