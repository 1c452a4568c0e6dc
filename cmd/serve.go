package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/spf13/cobra"

	awsclient "tasnim.dev/bucket-lister/internal/aws"
	"tasnim.dev/bucket-lister/internal/config"
	"tasnim.dev/bucket-lister/internal/handler"
	"tasnim.dev/bucket-lister/internal/logger"
)

// NewServeCmd runs the Lambda runtime loop. The S3 client is built once here
// and reused by every invocation.
func NewServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as an AWS Lambda function (default when no command is given)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Serve(cmd.Context())
		},
	}
}

func Serve(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	log := logger.NewLogger(os.Stdout, os.Getenv(config.LogLevelEnv))

	client, err := awsclient.NewServiceClient(ctx, "", "")
	if err != nil {
		return fmt.Errorf("initializing AWS client: %w", err)
	}

	h := handler.New(client.S3, handler.WithLogger(log))
	lambda.StartWithOptions(h.Handle, lambda.WithContext(ctx))
	return nil
}
