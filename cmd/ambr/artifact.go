package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/seriaati/ambr-go"
)

func newArtifactCommand() *cobra.Command {
	rootCommand := cobra.Command{
		Use:   "artifact",
		Short: "Artifact set commands",
	}

	rootCommand.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all artifact sets",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd.Context(), func(ctx context.Context, client *ambr.Client) error {
				sets, err := client.FetchArtifactSets(ctx)
				if err != nil {
					return fmt.Errorf("client.FetchArtifactSets > %w", err)
				}
				for _, set := range sets {
					fmt.Printf("%d\t%s\t%v\n", set.ID, set.Name, set.RarityList)
				}
				return nil
			})
		},
	})

	rootCommand.AddCommand(&cobra.Command{
		Use:   "show <id>",
		Short: "Show an artifact set's details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid artifact set id: %s", args[0])
			}
			return withClient(cmd.Context(), func(ctx context.Context, client *ambr.Client) error {
				detail, err := client.FetchArtifactSetDetail(ctx, id)
				if err != nil {
					return fmt.Errorf("client.FetchArtifactSetDetail > %w", err)
				}

				color.New(color.Bold).Println(detail.Name)
				for _, affix := range detail.AffixList {
					fmt.Printf("%s-piece: %s\n", affix.ID, affix.Effect)
				}
				if len(detail.Artifacts) > 0 {
					fmt.Println()
					color.New(color.Underline).Println("Pieces")
					for _, artifact := range detail.Artifacts {
						fmt.Printf("- %s (%s)\n", artifact.Name, artifact.Pos)
					}
				}
				return nil
			})
		},
	})

	return &rootCommand
}
