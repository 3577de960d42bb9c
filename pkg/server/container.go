package server

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/sirupsen/logrus"

	"registration-api/internal/config"
	"registration-api/internal/database"
	"registration-api/internal/identity"
	"registration-api/internal/middleware"
	"registration-api/internal/repositories"
	dynamorepo "registration-api/internal/repositories/dynamodb"
	sqliterepo "registration-api/internal/repositories/sqlite"
	"registration-api/internal/services"
)

// Container wires the application's dependencies. It is constructed once at
// process start and shared read-only across requests; in Lambda it survives
// warm invocations.
type Container struct {
	Config *config.Config
	Logger *logrus.Logger

	Repositories     repositories.Manager
	IdentityProvider identity.Provider

	RegistrationService services.RegistrationService
	OrderService        services.RecordService
	UserService         services.RecordService
	AuthService         *middleware.AuthService
}

// NewContainer builds the full dependency graph from configuration
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	logger := newLogger(cfg)

	manager, provider, err := buildAdapters(cfg, logger)
	if err != nil {
		return nil, err
	}

	container := &Container{
		Config:           cfg,
		Logger:           logger,
		Repositories:     manager,
		IdentityProvider: provider,
		AuthService: middleware.NewAuthService(&middleware.AuthConfig{
			JWTSecret:     cfg.Auth.JWTSecret,
			TokenDuration: time.Duration(cfg.Auth.ExpiryHours) * time.Hour,
		}),
	}

	container.RegistrationService = services.NewRegistrationService(provider, logger)
	container.OrderService = services.NewRecordService(manager.Orders(), logger)
	container.UserService = services.NewRecordService(manager.Users(), logger)

	logger.WithFields(logrus.Fields{
		"store_backend": cfg.Store.Backend,
		"mode":          config.GetDeploymentMode(),
	}).Info("Container initialized")

	return container, nil
}

// Close releases the container's resources
func (c *Container) Close() error {
	if c.Repositories != nil {
		return c.Repositories.Close()
	}
	return nil
}

// newLogger builds the shared logger. Lambda logs go to CloudWatch, so JSON
// output is used there.
func newLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()
	if config.IsServerlessMode() {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	if cfg.Environment == "production" {
		logger.SetLevel(logrus.InfoLevel)
	} else {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

// buildAdapters constructs the store manager and identity provider
func buildAdapters(cfg *config.Config, logger *logrus.Logger) (repositories.Manager, identity.Provider, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.Store.Region))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	cognitoClient := cognitoidentityprovider.NewFromConfig(awsCfg)
	provider := identity.NewCognitoProvider(cognitoClient, cfg.Identity.UserPoolID, logger)

	switch cfg.Store.Backend {
	case config.StoreBackendDynamoDB:
		dynamoClient := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
			if cfg.Store.Endpoint != "" {
				o.BaseEndpoint = aws.String(cfg.Store.Endpoint)
			}
		})
		manager := dynamorepo.NewManager(dynamoClient, cfg.Store.OrdersTable, cfg.Store.UsersTable, logger)
		return manager, provider, nil

	case config.StoreBackendSQLite:
		db, err := database.Connect(&database.ConnectionConfig{
			DatabasePath:    cfg.Store.SQLitePath,
			MigrationsPath:  cfg.Store.MigrationsPath,
			MaxOpenConns:    1,
			MaxIdleConns:    1,
			ConnMaxLifetime: time.Hour,
			Logger:          logger,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open local store: %w", err)
		}
		manager := sqliterepo.NewManager(db, cfg.Store.OrdersTable, cfg.Store.UsersTable, logger)
		return manager, provider, nil

	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}
