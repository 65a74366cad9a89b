package repositories

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/PiotrMigaj/niebieskie-aparaty-admin/internal/config"
)

// DynamoAPI is the narrow slice of the DynamoDB client the repositories
// need: point get, unconditional put, filtered scan.
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// NewClient builds a DynamoDB client from static credentials.
func NewClient(cfg config.AWSConfig) *dynamodb.Client {
	awsCfg := aws.Config{
		Credentials: credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Region:      cfg.Region,
	}
	return dynamodb.NewFromConfig(awsCfg)
}

// Ping performs a cheap connectivity check against DynamoDB. Callers
// treat a failure at startup as fatal.
func Ping(ctx context.Context, client *dynamodb.Client) error {
	limit := int32(1)
	if _, err := client.ListTables(ctx, &dynamodb.ListTablesInput{Limit: &limit}); err != nil {
		return fmt.Errorf("dynamodb connectivity check: %w", err)
	}
	return nil
}
