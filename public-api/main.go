package main

import (
	"context"

	"github.com/Real-Dev-Squad/public-api/utils"
	"github.com/aws/aws-lambda-go/lambda"
)

func handler(ctx context.Context) (utils.Response, error) {
	return utils.NewPublicResponse()
}

func main() {
	lambda.Start(handler)
}
