package main

import (
	"context"

	"registration-api/internal/config"
	"registration-api/internal/handlers"
	"registration-api/pkg/server"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"
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

// handler records an order for the confirmed user. Cognito expects the
// event back regardless of outcome, so storage failures are logged but
// never propagated as trigger errors.
func handler(ctx context.Context, event events.CognitoEventUserPoolsPostConfirmation) (events.CognitoEventUserPoolsPostConfirmation, error) {
	lifecycleHandler := handlers.NewLifecycleHandler(container.OrderService)

	resp, err := lifecycleHandler.HandleTrigger(ctx, event.Request.UserAttributes)
	if err != nil {
		container.Logger.WithError(err).Error("Order trigger failed")
		return event, nil
	}

	if resp.StatusCode != 200 {
		container.Logger.WithFields(logrus.Fields{
			"status_code": resp.StatusCode,
			"body":        string(resp.Body),
		}).Error("Order trigger could not store record")
		return event, nil
	}

	container.Logger.WithField("email", event.Request.UserAttributes["email"]).Info("Order stored for confirmed user")
	return event, nil
}

func main() {
	awslambda.Start(handler)
}
