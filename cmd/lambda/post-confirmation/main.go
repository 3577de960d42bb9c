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

// handler persists the confirmed user's profile. Cognito expects the
// event back regardless of outcome, so storage failures are logged but
// never propagated as trigger errors.
func handler(ctx context.Context, event events.CognitoEventUserPoolsPostConfirmation) (events.CognitoEventUserPoolsPostConfirmation, error) {
	lifecycleHandler := handlers.NewLifecycleHandler(container.UserService)

	resp, err := lifecycleHandler.HandleTrigger(ctx, event.Request.UserAttributes)
	if err != nil {
		container.Logger.WithError(err).Error("Post confirmation trigger failed")
		return event, nil
	}

	if resp.StatusCode != 200 {
		container.Logger.WithFields(logrus.Fields{
			"status_code": resp.StatusCode,
			"body":        string(resp.Body),
		}).Error("Post confirmation trigger could not store record")
		return event, nil
	}

	container.Logger.WithField("email", event.Request.UserAttributes["email"]).Info("User profile stored after confirmation")
	return event, nil
}

func main() {
	awslambda.Start(handler)
}
