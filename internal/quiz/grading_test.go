package quiz_test

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"

	"github.com/educahub/educahub-lambda/internal/quiz"
)

func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }

func TestGrade(t *testing.T) {
	q1 := multipleChoice("Q1", 1, "A", "B", "C")
	q2 := multipleChoice("Q2", 0, "Sim", "Não")
	q3 := freeText("Capital da França?", "Paris")
	q4 := freeText("Protocolo da web?", "HTTP")

	newQuiz := func(passingScore int, questions ...quiz.Question) *quiz.Quiz {
		return &quiz.Quiz{
			ID:           uuid.New(),
			VideoID:      uuid.New(),
			PassingScore: passingScore,
			Questions:    questions,
		}
	}

	t.Run("EmptyAnswersScoreZero", func(t *testing.T) {
		result := quiz.Grade(newQuiz(70, q1, q2, q3, q4), quiz.AnswerSet{})

		if result.CorrectCount != 0 || result.Total != 4 {
			t.Errorf("esperado 0/4, recebido %d/%d", result.CorrectCount, result.Total)
		}
		if result.ScorePercent != 0 {
			t.Errorf("esperado 0%%, recebido %d%%", result.ScorePercent)
		}
		if result.Passed {
			t.Error("não deveria passar com 0% e nota de corte 70")
		}
	})

	t.Run("AllCorrect", func(t *testing.T) {
		answers := quiz.AnswerSet{
			q1.ID: {SelectedIndex: intPtr(1)},
			q2.ID: {SelectedIndex: intPtr(0)},
			q3.ID: {Text: strPtr("Paris")},
			q4.ID: {Text: strPtr("HTTP")},
		}
		result := quiz.Grade(newQuiz(70, q1, q2, q3, q4), answers)

		if result.CorrectCount != 4 || result.ScorePercent != 100 || !result.Passed {
			t.Errorf("esperado 4/4 com aprovação, recebido %+v", result)
		}
	})

	t.Run("FreeTextIsTrimmedAndCaseInsensitive", func(t *testing.T) {
		answers := quiz.AnswerSet{
			q3.ID: {Text: strPtr("  paris ")},
		}
		result := quiz.Grade(newQuiz(100, q3), answers)
		if result.CorrectCount != 1 {
			t.Errorf("'  paris ' deveria valer como 'Paris', recebido %+v", result)
		}
	})

	t.Run("InternalWhitespaceStaysSignificant", func(t *testing.T) {
		answers := quiz.AnswerSet{
			q3.ID: {Text: strPtr("Pa ris")},
		}
		result := quiz.Grade(newQuiz(100, q3), answers)
		if result.CorrectCount != 0 {
			t.Error("espaços internos devem continuar significativos")
		}
	})

	t.Run("WrongIndexCountsAsIncorrect", func(t *testing.T) {
		answers := quiz.AnswerSet{
			q1.ID: {SelectedIndex: intPtr(2)},
		}
		result := quiz.Grade(newQuiz(50, q1), answers)
		if result.CorrectCount != 0 {
			t.Errorf("índice errado deveria contar como incorreto: %+v", result)
		}
	})

	t.Run("MismatchedAnswerShapeIsIncorrect", func(t *testing.T) {
		answers := quiz.AnswerSet{
			q1.ID: {Text: strPtr("B")},        // texto numa questão de múltipla escolha
			q3.ID: {SelectedIndex: intPtr(0)}, // índice numa questão de texto livre
		}
		result := quiz.Grade(newQuiz(50, q1, q3), answers)
		if result.CorrectCount != 0 {
			t.Errorf("resposta de formato errado deveria contar como incorreta: %+v", result)
		}
	})

	t.Run("PercentIsRounded", func(t *testing.T) {
		answers := quiz.AnswerSet{
			q1.ID: {SelectedIndex: intPtr(1)},
		}
		result := quiz.Grade(newQuiz(33, q1, q2, q3), answers)
		if result.ScorePercent != 33 {
			t.Errorf("1/3 deveria arredondar para 33, recebido %d", result.ScorePercent)
		}
		if !result.Passed {
			t.Error("33 >= 33 deveria passar")
		}

		answers[q2.ID] = quiz.Answer{SelectedIndex: intPtr(0)}
		result = quiz.Grade(newQuiz(33, q1, q2, q3), answers)
		if result.ScorePercent != 67 {
			t.Errorf("2/3 deveria arredondar para 67, recebido %d", result.ScorePercent)
		}
	})

	t.Run("AddingCorrectAnswerNeverLowersScore", func(t *testing.T) {
		answers := quiz.AnswerSet{}
		previous := 0
		for _, pair := range []struct {
			id  uuid.UUID
			ans quiz.Answer
		}{
			{q1.ID, quiz.Answer{SelectedIndex: intPtr(1)}},
			{q2.ID, quiz.Answer{SelectedIndex: intPtr(0)}},
			{q3.ID, quiz.Answer{Text: strPtr("paris")}},
			{q4.ID, quiz.Answer{Text: strPtr("http")}},
		} {
			answers[pair.id] = pair.ans
			result := quiz.Grade(newQuiz(70, q1, q2, q3, q4), answers)
			if result.ScorePercent < previous {
				t.Fatalf("pontuação caiu de %d para %d ao acertar mais uma", previous, result.ScorePercent)
			}
			previous = result.ScorePercent
		}
	})

	t.Run("NoQuestions", func(t *testing.T) {
		result := quiz.Grade(newQuiz(70), quiz.AnswerSet{})
		if result.Total != 0 || result.ScorePercent != 0 || result.Passed {
			t.Errorf("quiz vazio deveria dar 0%% sem aprovação: %+v", result)
		}

		zeroCut := quiz.Grade(newQuiz(0), quiz.AnswerSet{})
		if !zeroCut.Passed {
			t.Error("nota de corte 0 aprova qualquer pontuação")
		}
	})

	t.Run("SerializedQuizGradesTheSame", func(t *testing.T) {
		original := newQuiz(70, q1, q2, q3, q4)
		answers := quiz.AnswerSet{
			q1.ID: {SelectedIndex: intPtr(1)},
			q3.ID: {Text: strPtr("paris")},
		}

		raw, err := json.Marshal(original)
		if err != nil {
			t.Fatalf("falha ao serializar quiz: %v", err)
		}
		var reloaded quiz.Quiz
		if err := json.Unmarshal(raw, &reloaded); err != nil {
			t.Fatalf("falha ao desserializar quiz: %v", err)
		}

		if err := quiz.Validate(reloaded.Questions); err != nil {
			t.Errorf("quiz recarregado deveria continuar válido: %v", err)
		}
		if got, want := quiz.Grade(&reloaded, answers), quiz.Grade(original, answers); got != want {
			t.Errorf("nota divergiu após persistir e recarregar: %+v vs %+v", got, want)
		}
	})

	t.Run("QuestionOrderDoesNotAffectResult", func(t *testing.T) {
		answers := quiz.AnswerSet{
			q1.ID: {SelectedIndex: intPtr(1)},
			q3.ID: {Text: strPtr("Paris")},
		}
		a := quiz.Grade(newQuiz(50, q1, q2, q3), answers)
		b := quiz.Grade(newQuiz(50, q3, q2, q1), answers)
		if a != b {
			t.Errorf("a ordem das perguntas não deveria afetar a nota: %+v vs %+v", a, b)
		}
	})
}
