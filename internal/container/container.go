package container

import (
	"context"
	"log"
	"os"

	"github.com/educahub/educahub-lambda/internal/aiquiz"
	"github.com/educahub/educahub-lambda/internal/auth"
	"github.com/educahub/educahub-lambda/internal/category"
	"github.com/educahub/educahub-lambda/internal/config"
	"github.com/educahub/educahub-lambda/internal/form"
	"github.com/educahub/educahub-lambda/internal/quiz"
	"github.com/educahub/educahub-lambda/internal/storage"
	"github.com/educahub/educahub-lambda/internal/user"
	"github.com/educahub/educahub-lambda/internal/video"
)

type Container struct {
	UserContainer     *user.UserContainer
	VideoContainer    *video.VideoContainer
	CategoryContainer *category.CategoryContainer
	QuizContainer     *quiz.QuizContainer
	FormContainer     *form.FormContainer
	AIQuizContainer   *aiquiz.AIQuizContainer
}

func New() *Container {
	config.Init()
	auth.Init()
	config.InitCrypto()

	ctx := context.Background()

	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(ctx, dsn); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	if err := config.DB.AutoMigrate(
		&user.User{},
		&category.Category{},
		&video.Video{},
		&quiz.Quiz{},
		&quiz.Question{},
		&quiz.Submission{},
		&form.Form{},
		&form.Submission{},
	); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	blobs, err := storage.NewFromEnv(ctx)
	if err != nil {
		log.Fatalf("failed to init blob storage: %v", err)
	}

	userContainer := user.NewUserContainer(config.DB)
	videoContainer := video.NewVideoContainer(config.DB, blobs)
	categoryContainer := category.NewCategoryContainer(config.DB, videoContainer.Repo)
	quizContainer := quiz.NewQuizContainer(config.DB, videoContainer.Repo)
	formContainer := form.NewFormContainer(config.DB, blobs)
	aiQuizContainer := aiquiz.NewAIQuizContainer(videoContainer.Repo)

	return &Container{
		UserContainer:     userContainer,
		VideoContainer:    videoContainer,
		CategoryContainer: categoryContainer,
		QuizContainer:     quizContainer,
		FormContainer:     formContainer,
		AIQuizContainer:   aiQuizContainer,
	}
}
