package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
)

// fakeCognitoClient captures inputs and replays canned outputs
type fakeCognitoClient struct {
	createInput   *cognitoidentityprovider.AdminCreateUserInput
	passwordInput *cognitoidentityprovider.AdminSetUserPasswordInput
	createErr     error
	passwordErr   error
}

func (f *fakeCognitoClient) AdminCreateUser(ctx context.Context, params *cognitoidentityprovider.AdminCreateUserInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.AdminCreateUserOutput, error) {
	f.createInput = params
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &cognitoidentityprovider.AdminCreateUserOutput{
		User: &types.UserType{
			Username:   params.Username,
			UserStatus: types.UserStatusTypeForceChangePassword,
			Enabled:    true,
		},
	}, nil
}

func (f *fakeCognitoClient) AdminSetUserPassword(ctx context.Context, params *cognitoidentityprovider.AdminSetUserPasswordInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.AdminSetUserPasswordOutput, error) {
	f.passwordInput = params
	if f.passwordErr != nil {
		return nil, f.passwordErr
	}
	return &cognitoidentityprovider.AdminSetUserPasswordOutput{}, nil
}

func TestCognitoProvider_CreateUser(t *testing.T) {
	client := &fakeCognitoClient{}
	provider := NewCognitoProvider(client, "pool-123", nil)

	created, err := provider.CreateUser(context.Background(), "john@example.com", map[string]string{
		"email": "john@example.com",
		"name":  "John Doe",
	})
	if err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}

	if created.Username != "john@example.com" {
		t.Errorf("Expected username 'john@example.com', got %q", created.Username)
	}
	if !created.Enabled {
		t.Error("Expected created user to be enabled")
	}

	input := client.createInput
	if input == nil {
		t.Fatal("AdminCreateUser was not called")
	}
	if *input.UserPoolId != "pool-123" {
		t.Errorf("Expected user pool 'pool-123', got %q", *input.UserPoolId)
	}
	if input.MessageAction != types.MessageActionTypeSuppress {
		t.Errorf("Expected welcome messaging to be suppressed, got %q", input.MessageAction)
	}
	if len(input.UserAttributes) != 2 {
		t.Fatalf("Expected 2 user attributes, got %d", len(input.UserAttributes))
	}
}

func TestCognitoProvider_SetPermanentPassword(t *testing.T) {
	client := &fakeCognitoClient{}
	provider := NewCognitoProvider(client, "pool-123", nil)

	err := provider.SetPermanentPassword(context.Background(), "john@example.com", "s3cret!")
	if err != nil {
		t.Fatalf("SetPermanentPassword() failed: %v", err)
	}

	input := client.passwordInput
	if input == nil {
		t.Fatal("AdminSetUserPassword was not called")
	}
	if !input.Permanent {
		t.Error("Expected a permanent password")
	}
	if *input.Password != "s3cret!" {
		t.Errorf("Expected the supplied password to be forwarded, got %q", *input.Password)
	}
}

func TestCognitoProvider_FaultMessage(t *testing.T) {
	client := &fakeCognitoClient{createErr: errors.New("network unreachable")}
	provider := NewCognitoProvider(client, "pool-123", nil)

	_, err := provider.CreateUser(context.Background(), "john@example.com", nil)
	if err == nil {
		t.Fatal("Expected CreateUser() to fail")
	}

	var idErr *Error
	if !errors.As(err, &idErr) {
		t.Fatalf("Expected an identity error, got %T", err)
	}
	if err.Error() != "network unreachable" {
		t.Errorf("Expected the underlying message to surface, got %q", err.Error())
	}
}
