package aiquiz

import "github.com/google/uuid"

// DraftQuestion matches the editor payload of the quiz feature so generated
// questions can be reviewed and saved through the normal validated path.
type DraftQuestion struct {
	Text         string   `json:"text"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	Explanation  string   `json:"explanation,omitempty"`
}

type GenerateRequest struct {
	VideoID  uuid.UUID `json:"video_id"`
	Quantity int       `json:"quantity"`
}

type GenerateResponse struct {
	VideoID   uuid.UUID       `json:"video_id"`
	Questions []DraftQuestion `json:"questions"`
}
