package database

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ConnectDynamoDB builds the client shared by the quote, version-ledger,
// negotiation, escrow and template repositories. Table names are owned by the
// repositories (QUOTES_TABLE, QUOTE_VERSIONS_TABLE, NEGOTIATIONS_TABLE,
// ESCROWS_TABLE, QUOTE_TEMPLATES_TABLE); this layer resolves only region,
// credentials and endpoint:
//   - AWS_REGION: default us-east-1
//   - DYNAMODB_ENDPOINT: point at DynamoDB Local (e.g. http://localhost:8000)
//     for development; leave unset in AWS
//   - AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY: default "local" — DynamoDB
//     Local accepts any credentials but the SDK requires them to be present
func ConnectDynamoDB() *dynamodb.Client {
	cfg, err := quoteStoreConfig(context.Background())
	if err != nil {
		log.Fatalf("[database] failed to configure quote store: %v", err)
	}
	return dynamodb.NewFromConfig(cfg)
}

func quoteStoreConfig(ctx context.Context) (aws.Config, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(envOr("AWS_REGION", "us-east-1")),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			envOr("AWS_ACCESS_KEY_ID", "local"),
			envOr("AWS_SECRET_ACCESS_KEY", "local"),
			"",
		)),
	}

	if endpoint := os.Getenv("DYNAMODB_ENDPOINT"); endpoint != "" {
		log.Printf("[database] using local dynamodb endpoint=%s", endpoint)
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
			if service == dynamodb.ServiceID {
				return aws.Endpoint{URL: endpoint, SigningRegion: region, HostnameImmutable: true}, nil
			}
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		})
		opts = append(opts, config.WithEndpointResolverWithOptions(resolver))
	}

	return config.LoadDefaultConfig(ctx, opts...)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
