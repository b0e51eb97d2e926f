package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/seriaati/ambr-go"
)

func newWeaponCommand() *cobra.Command {
	rootCommand := cobra.Command{
		Use:   "weapon",
		Short: "Weapon commands",
	}

	rootCommand.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all weapons",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd.Context(), func(ctx context.Context, client *ambr.Client) error {
				weapons, err := client.FetchWeapons(ctx)
				if err != nil {
					return fmt.Errorf("client.FetchWeapons > %w", err)
				}
				types, err := client.FetchWeaponTypes(ctx)
				if err != nil {
					return fmt.Errorf("client.FetchWeaponTypes > %w", err)
				}
				for _, weapon := range weapons {
					typeName := types[weapon.Type]
					if typeName == "" {
						typeName = weapon.Type
					}
					fmt.Printf("%d\t%s\t%d★\t%s\n", weapon.ID, weapon.Name, weapon.Rarity, typeName)
				}
				return nil
			})
		},
	})

	rootCommand.AddCommand(&cobra.Command{
		Use:   "show <id>",
		Short: "Show a weapon's details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid weapon id: %s", args[0])
			}
			return withClient(cmd.Context(), func(ctx context.Context, client *ambr.Client) error {
				detail, err := client.FetchWeaponDetail(ctx, id)
				if err != nil {
					return fmt.Errorf("client.FetchWeaponDetail > %w", err)
				}

				color.New(color.Bold).Println(detail.Name)
				fmt.Printf("Rarity: %d★\n", detail.Rarity)
				fmt.Printf("Type: %s\n", detail.Type)
				if detail.Description != "" {
					fmt.Println(detail.Description)
				}
				if detail.Affix != nil {
					fmt.Println()
					color.New(color.Underline).Println(detail.Affix.Name)
					for _, upgrade := range detail.Affix.Upgrades {
						fmt.Printf("R%d: %s\n", upgrade.Level+1, upgrade.Description)
					}
				}
				return nil
			})
		},
	})

	return &rootCommand
}
