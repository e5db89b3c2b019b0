package quiz

import "github.com/google/uuid"

// QuestionDraft is the editor payload for one question; the whole draft is
// validated and persisted as a unit.
type QuestionDraft struct {
	Text         string       `json:"text"`
	Kind         QuestionKind `json:"kind"`
	Options      []string     `json:"options"`
	CorrectIndex int          `json:"correct_index"`
	CorrectText  string       `json:"correct_text"`
}

type SaveQuizDTO struct {
	PassingScore int             `json:"passing_score"`
	Questions    []QuestionDraft `json:"questions"`
}

type SubmitDTO struct {
	Answers AnswerSet `json:"answers"`
}

// QuizView is the learner-facing shape: correct answers stay server-side.
type QuizView struct {
	ID           uuid.UUID      `json:"id"`
	VideoID      uuid.UUID      `json:"video_id"`
	PassingScore int            `json:"passing_score"`
	Questions    []QuestionView `json:"questions"`
}

type QuestionView struct {
	ID      uuid.UUID    `json:"id"`
	Text    string       `json:"text"`
	Kind    QuestionKind `json:"kind"`
	Options []string     `json:"options,omitempty"`
}

func toView(q *Quiz) *QuizView {
	view := &QuizView{
		ID:           q.ID,
		VideoID:      q.VideoID,
		PassingScore: q.PassingScore,
		Questions:    make([]QuestionView, 0, len(q.Questions)),
	}
	for _, question := range q.Questions {
		view.Questions = append(view.Questions, QuestionView{
			ID:      question.ID,
			Text:    question.Text,
			Kind:    question.Kind,
			Options: []string(question.Options),
		})
	}
	return view
}
