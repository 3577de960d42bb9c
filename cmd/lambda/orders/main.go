package main

import (
	"context"
	"strings"

	"registration-api/internal/config"
	"registration-api/internal/handlers"
	"registration-api/pkg/lambda"
	"registration-api/pkg/server"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"
)

var container *server.Container

func init() {
	cfg, err := config.GetOptimizedConfig()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	container, err = server.NewContainer(cfg)
	if err != nil {
		panic("Failed to initialize container: " + err.Error())
	}
}

func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	// Convert API Gateway event to generic request
	req := &lambda.Request{
		Method:      event.HTTPMethod,
		Path:        event.Path,
		Headers:     event.Headers,
		QueryParams: event.QueryStringParameters,
		Body:        []byte(event.Body),
		PathParams:  event.PathParameters,
	}

	orderHandler := handlers.NewOrderHandler(container.OrderService)

	// Route the request
	var resp *lambda.Response
	var err error

	switch {
	case req.Method == "GET" && req.PathParams["email"] != "":
		resp, err = orderHandler.HandleGet(ctx, req)
	case req.Method == "GET" && strings.HasSuffix(req.Path, "/orders"):
		resp, err = orderHandler.HandleList(ctx, req)
	default:
		resp = &lambda.Response{
			StatusCode: 404,
			Headers:    map[string]string{"Content-Type": "application/json"},
			Body:       []byte(`{"message": "Not found"}`),
		}
	}

	if err != nil {
		container.Logger.WithError(err).Error("Order handler failed")
		return events.APIGatewayProxyResponse{
			StatusCode: 500,
			Headers:    map[string]string{"Content-Type": "application/json"},
			Body:       `{"message": "Internal server error"}`,
		}, nil
	}

	return events.APIGatewayProxyResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       string(resp.Body),
	}, nil
}

func main() {
	awslambda.Start(handler)
}
