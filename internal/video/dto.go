package video

type CreateVideoDTO struct {
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	URL             string  `json:"url"`
	ThumbnailURL    string  `json:"thumbnail_url"`
	DurationSeconds int     `json:"duration_seconds"`
	Category        *string `json:"category"`
}

type UpdateVideoDTO struct {
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	URL             *string `json:"url"`
	ThumbnailURL    *string `json:"thumbnail_url"`
	DurationSeconds *int    `json:"duration_seconds"`
	Category        *string `json:"category"`
	ClearCategory   bool    `json:"clear_category"`
}

type MoveVideoDTO struct {
	Direction Direction `json:"direction"`
}

type MoveVideoResponse struct {
	Moved bool `json:"moved"`
}
