package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	awsclient "tasnim.dev/bucket-lister/internal/aws"
	"tasnim.dev/bucket-lister/internal/config"
	"tasnim.dev/bucket-lister/internal/handler"
	"tasnim.dev/bucket-lister/internal/logger"
)

func NewInvokeCmd() *cobra.Command {
	var profile string
	var region string
	var bucket string
	var eventPath string

	cmd := &cobra.Command{
		Use:   "invoke",
		Short: "Run one invocation locally and print the response envelope",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			profile, region = cfg.Merge(profile, region)

			level := os.Getenv(config.LogLevelEnv)
			if level == "" {
				level = cfg.LogLevel
			}
			log := logger.NewLogger(cmd.ErrOrStderr(), level)

			event, err := readEvent(eventPath)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			client, err := awsclient.NewServiceClient(ctx, profile, region)
			if err != nil {
				return fmt.Errorf("initializing AWS client: %w", err)
			}
			if accountID := awsclient.GetAccountID(ctx, awsclient.NewSTS(client.Config)); accountID != "" {
				log.Debug("resolved caller identity", "account", accountID, "region", client.Config.Region)
			}

			h := handler.New(client.S3,
				handler.WithLogger(log),
				handler.WithLookup(bucketOverride(bucket, os.LookupEnv)),
			)
			return runInvoke(ctx, cmd.OutOrStdout(), h, event)
		},
	}

	cmd.Flags().StringVarP(&profile, "profile", "p", "", "AWS profile to use")
	cmd.Flags().StringVarP(&region, "region", "r", "", "AWS region to use")
	cmd.Flags().StringVarP(&bucket, "bucket", "b", "", "Bucket to list (overrides BUCKET_NAME)")
	cmd.Flags().StringVarP(&eventPath, "event", "e", "", "Path to a JSON event payload")

	return cmd
}

// bucketOverride returns a lookup that answers BUCKET_NAME with bucket when
// it is non-empty and defers to next otherwise.
func bucketOverride(bucket string, next config.LookupFunc) config.LookupFunc {
	if bucket == "" {
		return next
	}
	return func(key string) (string, bool) {
		if key == config.BucketEnv {
			return bucket, true
		}
		return next(key)
	}
}

func readEvent(path string) (json.RawMessage, error) {
	if path == "" {
		return json.RawMessage("{}"), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading event: %w", err)
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("event %s is not valid JSON", path)
	}
	return json.RawMessage(data), nil
}

func runInvoke(ctx context.Context, out io.Writer, h *handler.Handler, event json.RawMessage) error {
	resp, err := h.Handle(ctx, event)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}
