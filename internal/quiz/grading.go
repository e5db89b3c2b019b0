package quiz

import (
	"math"
	"strings"

	"github.com/google/uuid"
)

// Answer is one submitted response. SelectedIndex answers a multiple choice
// question, Text a free text one; the other field stays nil.
type Answer struct {
	SelectedIndex *int    `json:"selected_index,omitempty"`
	Text          *string `json:"text,omitempty"`
}

type AnswerSet map[uuid.UUID]Answer

type Result struct {
	CorrectCount int  `json:"correct_count"`
	Total        int  `json:"total"`
	ScorePercent int  `json:"score_percent"`
	Passed       bool `json:"passed"`
}

// Grade scores a learner's answers against the quiz. Missing or mismatched
// answers count as wrong, never as an error. Free text comparison trims
// surrounding whitespace and ignores case; internal whitespace, punctuation
// and accents stay significant.
func Grade(q *Quiz, answers AnswerSet) Result {
	correct := 0
	for _, question := range q.Questions {
		if isCorrect(question, answers[question.ID]) {
			correct++
		}
	}

	total := len(q.Questions)
	percent := 0
	if total > 0 {
		percent = int(math.Round(100 * float64(correct) / float64(total)))
	}

	return Result{
		CorrectCount: correct,
		Total:        total,
		ScorePercent: percent,
		Passed:       percent >= q.PassingScore,
	}
}

func isCorrect(q Question, ans Answer) bool {
	switch q.Kind {
	case KindMultipleChoice:
		return ans.SelectedIndex != nil && *ans.SelectedIndex == q.CorrectIndex
	case KindFreeText:
		return ans.Text != nil &&
			strings.EqualFold(strings.TrimSpace(*ans.Text), strings.TrimSpace(q.CorrectText))
	}
	return false
}
