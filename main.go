package main

import (
	"log"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"

	"github.com/educahub/educahub-lambda/internal/container"
	"github.com/educahub/educahub-lambda/internal/router"
)

func main() {
	c := container.New()

	r := router.New(router.RouterConfig{
		UserHandler:     c.UserContainer.Handler,
		VideoHandler:    c.VideoContainer.Handler,
		CategoryHandler: c.CategoryContainer.Handler,
		QuizHandler:     c.QuizContainer.Handler,
		FormHandler:     c.FormContainer.Handler,
		AIQuizHandler:   c.AIQuizContainer.Handler,
	})

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		chiLambda := chiadapter.New(r)
		lambda.Start(chiLambda.ProxyWithContext)
		return
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("listening on :%s", port)
	log.Fatal(http.ListenAndServe(":"+port, r))
}
