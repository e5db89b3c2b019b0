package quiz_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/educahub/educahub-lambda/internal/quiz"
)

func multipleChoice(text string, correctIndex int, options ...string) quiz.Question {
	return quiz.Question{
		ID:           uuid.New(),
		Text:         text,
		Kind:         quiz.KindMultipleChoice,
		Options:      datatypes.NewJSONSlice(options),
		CorrectIndex: correctIndex,
	}
}

func freeText(text, correct string) quiz.Question {
	return quiz.Question{
		ID:          uuid.New(),
		Text:        text,
		Kind:        quiz.KindFreeText,
		CorrectText: correct,
	}
}

func TestValidate(t *testing.T) {
	t.Run("ValidQuiz", func(t *testing.T) {
		questions := []quiz.Question{
			multipleChoice("Qual é o protocolo?", 1, "FTP", "HTTP", "SSH"),
			freeText("Capital da França?", "Paris"),
		}
		if err := quiz.Validate(questions); err != nil {
			t.Errorf("quiz válido foi rejeitado: %v", err)
		}
	})

	t.Run("ZeroQuestionsValidates", func(t *testing.T) {
		if err := quiz.Validate(nil); err != nil {
			t.Errorf("quiz sem perguntas deveria validar (rejeição é do save): %v", err)
		}
	})

	t.Run("EmptyQuestionText", func(t *testing.T) {
		err := quiz.Validate([]quiz.Question{multipleChoice("   ", 0, "A", "B")})
		if !errors.Is(err, quiz.ErrEmptyQuestionText) {
			t.Errorf("esperado ErrEmptyQuestionText, recebido: %v", err)
		}
	})

	t.Run("EmptyOption", func(t *testing.T) {
		err := quiz.Validate([]quiz.Question{multipleChoice("Q1", 0, "A", "")})
		if !errors.Is(err, quiz.ErrEmptyOption) {
			t.Errorf("esperado ErrEmptyOption, recebido: %v", err)
		}
	})

	t.Run("TooFewOptions", func(t *testing.T) {
		err := quiz.Validate([]quiz.Question{multipleChoice("Q1", 0, "A")})
		if !errors.Is(err, quiz.ErrTooFewOptions) {
			t.Errorf("esperado ErrTooFewOptions, recebido: %v", err)
		}
	})

	t.Run("EmptyCorrectAnswer", func(t *testing.T) {
		err := quiz.Validate([]quiz.Question{freeText("Q1", "  ")})
		if !errors.Is(err, quiz.ErrEmptyCorrectAnswer) {
			t.Errorf("esperado ErrEmptyCorrectAnswer, recebido: %v", err)
		}
	})

	t.Run("FirstErrorInDocumentOrderWins", func(t *testing.T) {
		questions := []quiz.Question{
			freeText("Q1", ""),                              // ErrEmptyCorrectAnswer
			multipleChoice("Q2", 0, "A", ""),                // ErrEmptyOption
		}
		err := quiz.Validate(questions)
		if !errors.Is(err, quiz.ErrEmptyCorrectAnswer) {
			t.Errorf("a primeira falha em ordem de documento deveria ser reportada, recebido: %v", err)
		}
	})

	t.Run("DoesNotMutateInput", func(t *testing.T) {
		q := multipleChoice(" Q1 ", 1, " A ", "B")
		_ = quiz.Validate([]quiz.Question{q})
		if q.Text != " Q1 " || q.Options[0] != " A " {
			t.Error("Validate não deve alterar as perguntas")
		}
	})
}

func TestRemoveOption(t *testing.T) {
	newQuestion := func() quiz.Question {
		return multipleChoice("Q1", 2, "A", "B", "C", "D")
	}

	t.Run("RemovingBeforeCorrectDecrements", func(t *testing.T) {
		q := quiz.RemoveOption(newQuestion(), 1)
		if q.CorrectIndex != 1 {
			t.Errorf("esperado correct_index 1, recebido %d", q.CorrectIndex)
		}
		if len(q.Options) != 3 || q.Options[1] != "C" {
			t.Errorf("opções incorretas após remoção: %v", q.Options)
		}
	})

	t.Run("RemovingCorrectResetsToFirst", func(t *testing.T) {
		q := quiz.RemoveOption(newQuestion(), 2)
		if q.CorrectIndex != 0 {
			t.Errorf("esperado correct_index 0, recebido %d", q.CorrectIndex)
		}
	})

	t.Run("RemovingAfterCorrectKeepsIndex", func(t *testing.T) {
		q := quiz.RemoveOption(newQuestion(), 3)
		if q.CorrectIndex != 2 {
			t.Errorf("esperado correct_index 2, recebido %d", q.CorrectIndex)
		}
	})

	t.Run("OutOfRangeIsNoOp", func(t *testing.T) {
		q := quiz.RemoveOption(newQuestion(), 7)
		if len(q.Options) != 4 || q.CorrectIndex != 2 {
			t.Errorf("índice fora do intervalo deveria ser no-op: %v", q)
		}
	})

	t.Run("TwoOptionsDownToOneDoesNotPanic", func(t *testing.T) {
		q := quiz.RemoveOption(multipleChoice("Q1", 0, "A", "B"), 1)
		if len(q.Options) != 1 || q.Options[0] != "A" {
			t.Errorf("opções incorretas: %v", q.Options)
		}
	})

	t.Run("InputCopyNotShared", func(t *testing.T) {
		original := newQuestion()
		_ = quiz.RemoveOption(original, 0)
		if len(original.Options) != 4 || original.Options[0] != "A" {
			t.Error("RemoveOption não deve alterar a pergunta original")
		}
	})
}
