package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seriaati/ambr-go"
)

func newChangelogCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "changelog",
		Short: "List game version changelogs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd.Context(), func(ctx context.Context, client *ambr.Client) error {
				changelogs, err := client.FetchChangelogs(ctx)
				if err != nil {
					return fmt.Errorf("client.FetchChangelogs > %w", err)
				}
				for _, changelog := range changelogs {
					beta := ""
					if changelog.Beta {
						beta = " (beta)"
					}
					fmt.Printf("%s%s\n", changelog.Version, beta)
					for _, item := range changelog.Items {
						fmt.Printf("  %s: %d changed\n", item.Category, len(item.IDs))
					}
				}
				return nil
			})
		},
	}
}
