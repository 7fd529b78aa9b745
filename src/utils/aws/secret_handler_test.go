package aws_handler_test

import (
	"context"
	"errors"
	"testing"

	aws_handler "invest/src/utils/aws"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/secretsmanager"
	"github.com/aws/aws-sdk-go/service/secretsmanager/secretsmanageriface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSecretsManager struct {
	secretsmanageriface.SecretsManagerAPI
	secrets map[string]*string
	calls   []string
}

func (f *fakeSecretsManager) GetSecretValueWithContext(_ aws.Context, input *secretsmanager.GetSecretValueInput, _ ...request.Option) (*secretsmanager.GetSecretValueOutput, error) {
	id := aws.StringValue(input.SecretId)
	f.calls = append(f.calls, id)
	value, ok := f.secrets[id]
	if !ok {
		return nil, errors.New("ResourceNotFoundException")
	}
	return &secretsmanager.GetSecretValueOutput{SecretString: value}, nil
}

func TestSecretManager(t *testing.T) {
	fake := &fakeSecretsManager{secrets: map[string]*string{
		"invest/db":    aws.String(`{"username":"admin","password":"s3cr3t","host":"db.internal","port":5432,"dbname":"invest"}`),
		"invest/plain": aws.String("not-json"),
		"invest/bin":   nil,
	}}
	sm := aws_handler.NewSecretManager(fake)
	ctx := context.Background()

	t.Run("GetDatabaseCredentials", func(t *testing.T) {
		creds, err := sm.GetDatabaseCredentials(ctx, "invest/db")
		require.NoError(t, err)
		assert.Equal(t, "admin", creds.Username)
		assert.Equal(t, "s3cr3t", creds.Password)
		assert.Equal(t, "db.internal", creds.Host)
		assert.Equal(t, "5432", creds.Port.String())
		assert.Equal(t, "invest", creds.DBName)
	})

	t.Run("secret is not JSON", func(t *testing.T) {
		_, err := sm.GetDatabaseCredentials(ctx, "invest/plain")
		assert.Error(t, err)
	})

	t.Run("binary secret", func(t *testing.T) {
		_, err := sm.GetSecretValue(ctx, "invest/bin")
		assert.Error(t, err)
	})

	t.Run("unknown secret", func(t *testing.T) {
		_, err := sm.GetSecretValue(ctx, "invest/missing")
		assert.Error(t, err)
		assert.Contains(t, fake.calls, "invest/missing")
	})
}
