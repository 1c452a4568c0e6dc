package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awss3sdk "github.com/aws/aws-sdk-go-v2/service/s3"

	awss3 "tasnim.dev/bucket-lister/internal/aws/s3"
)

// ServiceClient bundles the SDK config with the wrapped service clients.
// It is built once per process and shared by every invocation.
type ServiceClient struct {
	Config aws.Config
	S3     *awss3.Client
}

func NewServiceClient(ctx context.Context, profile, region string) (*ServiceClient, error) {
	cfg, err := LoadConfig(ctx, profile, region)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}
	return NewServiceClientFromConfig(cfg), nil
}

func NewServiceClientFromConfig(cfg aws.Config) *ServiceClient {
	return &ServiceClient{
		Config: cfg,
		S3:     awss3.NewClient(awss3sdk.NewFromConfig(cfg)),
	}
}
