package main

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/seriaati/ambr-go"
)

func newCharacterCommand() *cobra.Command {
	rootCommand := cobra.Command{
		Use:   "character",
		Short: "Character commands",
	}

	rootCommand.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all characters",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd.Context(), func(ctx context.Context, client *ambr.Client) error {
				characters, err := client.FetchCharacters(ctx)
				if err != nil {
					return fmt.Errorf("client.FetchCharacters > %w", err)
				}
				for _, character := range characters {
					fmt.Printf("%s\t%s\t%d★\t%s\t%s\n",
						character.ID, character.Name, character.Rarity, character.Element, character.WeaponType)
				}
				return nil
			})
		},
	})

	rootCommand.AddCommand(&cobra.Command{
		Use:   "show <id>",
		Short: "Show a character's details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd.Context(), func(ctx context.Context, client *ambr.Client) error {
				detail, err := client.FetchCharacterDetail(ctx, args[0])
				if err != nil {
					return fmt.Errorf("client.FetchCharacterDetail > %w", err)
				}

				color.New(color.Bold).Printf("%s", detail.Name)
				if detail.Info.Title != "" {
					fmt.Printf(" — %s", detail.Info.Title)
				}
				fmt.Println()
				fmt.Printf("Rarity: %d★\n", detail.Rarity)
				fmt.Printf("Element: %s\n", detail.Element)
				fmt.Printf("Weapon: %s\n", detail.WeaponType)
				if detail.Region != "" {
					fmt.Printf("Region: %s\n", detail.Region)
				}
				if detail.Birthday.Month != 0 {
					fmt.Printf("Birthday: %d/%d\n", detail.Birthday.Month, detail.Birthday.Day)
				}

				if len(detail.Talents) > 0 {
					fmt.Println()
					color.New(color.Underline).Println("Talents")
					for _, talent := range detail.Talents {
						fmt.Printf("- %s\n", talent.Name)
					}
				}
				if len(detail.Constellations) > 0 {
					fmt.Println()
					color.New(color.Underline).Println("Constellations")
					for i, constellation := range detail.Constellations {
						fmt.Printf("%d. %s\n", i+1, constellation.Name)
					}
				}
				return nil
			})
		},
	})

	rootCommand.AddCommand(&cobra.Command{
		Use:   "quotes <id>",
		Short: "Show a character's voice-over quotes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd.Context(), func(ctx context.Context, client *ambr.Client) error {
				fetter, err := client.FetchCharacterFetter(ctx, args[0])
				if err != nil {
					return fmt.Errorf("client.FetchCharacterFetter > %w", err)
				}
				for _, quote := range fetter.Quotes {
					color.New(color.Bold).Println(quote.Title)
					fmt.Println(quote.Text)
					fmt.Println()
				}
				return nil
			})
		},
	})

	return &rootCommand
}
