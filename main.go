package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"tasnim.dev/bucket-lister/cmd"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bucket-lister",
		Short: "List S3 bucket objects as a Lambda function",
		// The Lambda bootstrap runs the binary without arguments.
		RunE: func(c *cobra.Command, args []string) error {
			return cmd.Serve(c.Context())
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(cmd.NewServeCmd())
	rootCmd.AddCommand(cmd.NewInvokeCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
