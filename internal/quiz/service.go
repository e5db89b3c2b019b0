package quiz

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/educahub/educahub-lambda/internal/auth"
	"github.com/educahub/educahub-lambda/internal/config"
	"github.com/educahub/educahub-lambda/internal/video"
)

var (
	ErrQuizNotFound        = errors.New("quiz not found")
	ErrNoQuestions         = errors.New("quiz must contain at least one question")
	ErrInvalidPassingScore = errors.New("passing score must be between 0 and 100")
	ErrUnauthorized        = errors.New("unauthorized")
)

type QuizService interface {
	SaveQuiz(ctx context.Context, videoID uuid.UUID, dto SaveQuizDTO) (*Quiz, error)
	GetQuiz(ctx context.Context, videoID uuid.UUID) (*Quiz, error)
	DeleteQuiz(ctx context.Context, videoID uuid.UUID) error

	Submit(ctx context.Context, videoID uuid.UUID, answers AnswerSet) (*Submission, error)
	ListMySubmissions(ctx context.Context) ([]Submission, error)
	ListVideoSubmissions(ctx context.Context, videoID uuid.UUID) ([]Submission, error)
}

type quizService struct {
	repo      QuizRepository
	videoRepo video.VideoRepository
}

func NewService(repo QuizRepository, videoRepo video.VideoRepository) QuizService {
	return &quizService{repo: repo, videoRepo: videoRepo}
}

// SaveQuiz validates the draft and replaces the video's quiz document as a
// unit. The zero-question rule lives here, at the save boundary, not in
// Validate.
func (s *quizService) SaveQuiz(ctx context.Context, videoID uuid.UUID, dto SaveQuizDTO) (*Quiz, error) {
	log := config.WithContext(ctx)
	log.Info("Salvando quiz do vídeo...", "video_id", videoID.String())

	if dto.PassingScore < 0 || dto.PassingScore > 100 {
		return nil, ErrInvalidPassingScore
	}
	if len(dto.Questions) == 0 {
		log.Warn("Tentativa de salvar quiz sem perguntas")
		return nil, ErrNoQuestions
	}

	v, err := s.videoRepo.FindByID(videoID)
	if err != nil {
		log.WithError(err).Error("Erro ao buscar vídeo do quiz")
		return nil, err
	}
	if v == nil {
		return nil, video.ErrVideoNotFound
	}

	q := &Quiz{
		ID:           uuid.New(),
		VideoID:      videoID,
		PassingScore: dto.PassingScore,
	}
	for i, draft := range dto.Questions {
		q.Questions = append(q.Questions, Question{
			ID:           uuid.New(),
			QuizID:       q.ID,
			Position:     i,
			Text:         draft.Text,
			Kind:         draft.Kind,
			Options:      datatypes.NewJSONSlice(draft.Options),
			CorrectIndex: draft.CorrectIndex,
			CorrectText:  draft.CorrectText,
		})
	}

	if err := Validate(q.Questions); err != nil {
		return nil, err
	}

	if err := s.repo.Replace(q); err != nil {
		log.WithError(err).Error("Erro ao persistir quiz")
		return nil, err
	}

	log.Info("Quiz salvo com sucesso", "quiz_id", q.ID.String())
	return q, nil
}

func (s *quizService) GetQuiz(ctx context.Context, videoID uuid.UUID) (*Quiz, error) {
	q, err := s.repo.GetByVideoID(videoID)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, ErrQuizNotFound
	}
	return q, nil
}

func (s *quizService) DeleteQuiz(ctx context.Context, videoID uuid.UUID) error {
	log := config.WithContext(ctx)
	log.Info("Deletando quiz do vídeo...", "video_id", videoID.String())

	if _, err := s.GetQuiz(ctx, videoID); err != nil {
		return err
	}
	if err := s.repo.DeleteByVideoID(videoID); err != nil {
		log.WithError(err).Error("Erro ao deletar quiz")
		return err
	}
	return nil
}

// Submit grades the answers against the stored quiz and records the attempt
// for the authenticated user.
func (s *quizService) Submit(ctx context.Context, videoID uuid.UUID, answers AnswerSet) (*Submission, error) {
	log := config.WithContext(ctx)

	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, ErrUnauthorized
	}

	q, err := s.GetQuiz(ctx, videoID)
	if err != nil {
		return nil, err
	}

	result := Grade(q, answers)

	raw, err := json.Marshal(answers)
	if err != nil {
		return nil, err
	}

	submission := &Submission{
		ID:           uuid.New(),
		VideoID:      videoID,
		UserID:       userID,
		Answers:      datatypes.JSON(raw),
		CorrectCount: result.CorrectCount,
		Total:        result.Total,
		ScorePercent: result.ScorePercent,
		Passed:       result.Passed,
	}

	if err := s.repo.CreateSubmission(submission); err != nil {
		log.WithError(err).Error("Erro ao registrar tentativa do quiz")
		return nil, err
	}

	log.Info("Tentativa registrada",
		"video_id", videoID.String(),
		"score", result.ScorePercent,
	)
	return submission, nil
}

func (s *quizService) ListMySubmissions(ctx context.Context) ([]Submission, error) {
	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, ErrUnauthorized
	}
	return s.repo.ListSubmissionsByUser(userID)
}

func (s *quizService) ListVideoSubmissions(ctx context.Context, videoID uuid.UUID) ([]Submission, error) {
	return s.repo.ListSubmissionsByVideo(videoID)
}
