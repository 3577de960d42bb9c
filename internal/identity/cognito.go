package identity

import (
	"context"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/sirupsen/logrus"
)

// CognitoClient is the subset of the Cognito API used by the provider
type CognitoClient interface {
	AdminCreateUser(ctx context.Context, params *cognitoidentityprovider.AdminCreateUserInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.AdminCreateUserOutput, error)
	AdminSetUserPassword(ctx context.Context, params *cognitoidentityprovider.AdminSetUserPasswordInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.AdminSetUserPasswordOutput, error)
}

// CognitoProvider implements Provider against a Cognito user pool
type CognitoProvider struct {
	client     CognitoClient
	userPoolID string
	logger     *logrus.Logger
}

// NewCognitoProvider creates a provider bound to one user pool
func NewCognitoProvider(client CognitoClient, userPoolID string, logger *logrus.Logger) *CognitoProvider {
	if logger == nil {
		logger = logrus.New()
	}
	return &CognitoProvider{
		client:     client,
		userPoolID: userPoolID,
		logger:     logger,
	}
}

// CreateUser registers an account in the user pool. Welcome messaging is
// suppressed; the caller assigns the password immediately afterwards.
func (p *CognitoProvider) CreateUser(ctx context.Context, username string, attributes map[string]string) (*CreatedUser, error) {
	userAttributes := make([]types.AttributeType, 0, len(attributes))
	names := make([]string, 0, len(attributes))
	for name := range attributes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		userAttributes = append(userAttributes, types.AttributeType{
			Name:  aws.String(name),
			Value: aws.String(attributes[name]),
		})
	}

	out, err := p.client.AdminCreateUser(ctx, &cognitoidentityprovider.AdminCreateUserInput{
		UserPoolId:     aws.String(p.userPoolID),
		Username:       aws.String(username),
		UserAttributes: userAttributes,
		MessageAction:  types.MessageActionTypeSuppress,
	})
	if err != nil {
		return nil, NewError("create_user", err)
	}

	p.logger.WithField("username", username).Info("Identity account created")

	created := &CreatedUser{Username: username}
	if out.User != nil {
		if out.User.Username != nil {
			created.Username = *out.User.Username
		}
		created.Status = string(out.User.UserStatus)
		created.Enabled = out.User.Enabled
		if out.User.UserCreateDate != nil {
			created.CreateDate = *out.User.UserCreateDate
		}
	}

	return created, nil
}

// SetPermanentPassword assigns a permanent credential to an existing account
func (p *CognitoProvider) SetPermanentPassword(ctx context.Context, username, password string) error {
	_, err := p.client.AdminSetUserPassword(ctx, &cognitoidentityprovider.AdminSetUserPasswordInput{
		UserPoolId: aws.String(p.userPoolID),
		Username:   aws.String(username),
		Password:   aws.String(password),
		Permanent:  true,
	})
	if err != nil {
		return NewError("set_password", err)
	}

	p.logger.WithField("username", username).Info("Permanent password set")
	return nil
}
