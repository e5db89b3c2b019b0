package quiz

import (
	"errors"
	"strings"
)

const (
	MinOptions = 2
	MaxOptions = 6
)

var (
	ErrEmptyQuestionText  = errors.New("question text must not be empty")
	ErrTooFewOptions      = errors.New("multiple choice questions need at least 2 options")
	ErrEmptyOption        = errors.New("options must not be empty")
	ErrEmptyCorrectAnswer = errors.New("free text questions need a correct answer")
)

// Validate walks the questions in document order and reports the first rule
// violation. A quiz with zero questions validates; the save boundary rejects
// it separately. The input is never modified.
func Validate(questions []Question) error {
	for _, q := range questions {
		if strings.TrimSpace(q.Text) == "" {
			return ErrEmptyQuestionText
		}
		switch q.Kind {
		case KindMultipleChoice:
			if len(q.Options) < MinOptions {
				return ErrTooFewOptions
			}
			for _, opt := range q.Options {
				if strings.TrimSpace(opt) == "" {
					return ErrEmptyOption
				}
			}
		case KindFreeText:
			if strings.TrimSpace(q.CorrectText) == "" {
				return ErrEmptyCorrectAnswer
			}
		}
	}
	return nil
}

// RemoveOption returns a copy of the question without the option at index.
// When the removed option was the correct one the answer falls back to the
// first option; options before the correct one shift it down by one.
func RemoveOption(q Question, index int) Question {
	if index < 0 || index >= len(q.Options) {
		return q
	}

	options := make([]string, 0, len(q.Options)-1)
	options = append(options, q.Options[:index]...)
	options = append(options, q.Options[index+1:]...)
	q.Options = options

	switch {
	case index == q.CorrectIndex:
		q.CorrectIndex = 0
	case index < q.CorrectIndex:
		q.CorrectIndex--
	}
	return q
}
