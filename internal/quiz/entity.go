package quiz

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/educahub/educahub-lambda/internal/video"
)

type QuestionKind string

const (
	KindMultipleChoice QuestionKind = "MULTIPLE_CHOICE"
	KindFreeText       QuestionKind = "FREE_TEXT"
)

// Quiz is the whole-replace persisted unit: saving a quiz replaces every
// question attached to the video at once.
type Quiz struct {
	ID           uuid.UUID   `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	VideoID      uuid.UUID   `gorm:"type:uuid;not null;uniqueIndex" json:"video_id"`
	Video        video.Video `gorm:"foreignKey:VideoID;constraint:OnDelete:CASCADE" json:"-"`
	PassingScore int         `gorm:"not null;default:70" json:"passing_score"`
	CreatedAt    time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time   `gorm:"autoUpdateTime" json:"updated_at"`

	Questions []Question `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
}

// Question carries kind-specific fields: Options and CorrectIndex apply to
// MULTIPLE_CHOICE, CorrectText to FREE_TEXT.
type Question struct {
	ID           uuid.UUID                   `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	QuizID       uuid.UUID                   `gorm:"type:uuid;not null;index" json:"quiz_id"`
	Position     int                         `gorm:"not null" json:"position"`
	Text         string                      `gorm:"type:text;not null" json:"text"`
	Kind         QuestionKind                `gorm:"type:text;not null" json:"kind"`
	Options      datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"options,omitempty"`
	CorrectIndex int                         `gorm:"not null;default:0" json:"correct_index"`
	CorrectText  string                      `gorm:"type:text" json:"correct_text,omitempty"`
	CreatedAt    time.Time                   `gorm:"autoCreateTime" json:"created_at"`
}

// Submission records one graded attempt. It is keyed by video so attempt
// history survives quiz edits.
type Submission struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	VideoID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"video_id"`
	Video        video.Video    `gorm:"foreignKey:VideoID;constraint:OnDelete:CASCADE" json:"-"`
	UserID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Answers      datatypes.JSON `gorm:"type:jsonb;not null" json:"answers"`
	CorrectCount int            `gorm:"not null;default:0" json:"correct_count"`
	Total        int            `gorm:"not null;default:0" json:"total"`
	ScorePercent int            `gorm:"not null;default:0" json:"score_percent"`
	Passed       bool           `gorm:"not null;default:false" json:"passed"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
}
