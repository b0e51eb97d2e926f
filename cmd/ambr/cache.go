package main

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/seriaati/ambr-go"
)

func newCacheCommand() *cobra.Command {
	rootCommand := cobra.Command{
		Use:   "cache",
		Short: "Cache maintenance commands",
	}

	rootCommand.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove all cached responses",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd.Context(), func(ctx context.Context, client *ambr.Client) error {
				if err := client.ClearCache(ctx); err != nil {
					return fmt.Errorf("client.ClearCache > %w", err)
				}
				color.Green("Cache cleared")
				return nil
			})
		},
	})

	return &rootCommand
}
