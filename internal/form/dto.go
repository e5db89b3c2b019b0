package form

type CreateFormDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	TemplateURL string `json:"template_url"`
}

type UpdateFormDTO struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	TemplateURL *string `json:"template_url"`
	Active      *bool   `json:"active"`
}

type ReviewDTO struct {
	Status SubmissionStatus `json:"status"`
	Note   string           `json:"note"`
}
