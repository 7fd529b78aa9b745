package aws_handler

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/secretsmanager"
	"github.com/aws/aws-sdk-go/service/secretsmanager/secretsmanageriface"
)

// DatabaseCredentials is the JSON layout AWS uses for RDS-managed secrets.
// Empty fields leave the corresponding setting untouched.
type DatabaseCredentials struct {
	Username string      `json:"username"`
	Password string      `json:"password"`
	Host     string      `json:"host"`
	Port     json.Number `json:"port"`
	DBName   string      `json:"dbname"`
}

type SecretManager struct {
	svc secretsmanageriface.SecretsManagerAPI
}

func NewSecretManager(svc secretsmanageriface.SecretsManagerAPI) *SecretManager {
	return &SecretManager{svc: svc}
}

func (s *SecretManager) GetSecretValue(ctx context.Context, secretId string) (string, error) {
	input := &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretId),
	}

	result, err := s.svc.GetSecretValueWithContext(ctx, input)
	if err != nil {
		return "", err
	}
	if result.SecretString == nil {
		return "", fmt.Errorf("secret %s has no string value", secretId)
	}

	return *result.SecretString, nil
}

func (s *SecretManager) GetDatabaseCredentials(ctx context.Context, secretId string) (*DatabaseCredentials, error) {
	value, err := s.GetSecretValue(ctx, secretId)
	if err != nil {
		return nil, fmt.Errorf("failed to read secret %s: %w", secretId, err)
	}

	var creds DatabaseCredentials
	if err := json.Unmarshal([]byte(value), &creds); err != nil {
		return nil, fmt.Errorf("secret %s is not a database credentials document: %w", secretId, err)
	}
	return &creds, nil
}
