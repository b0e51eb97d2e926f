package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/seriaati/ambr-go"
)

func newDomainCommand() *cobra.Command {
	var day string
	command := cobra.Command{
		Use:   "domain",
		Short: "Show the domain schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd.Context(), func(ctx context.Context, client *ambr.Client) error {
				domains, err := client.FetchDomains(ctx)
				if err != nil {
					return fmt.Errorf("client.FetchDomains > %w", err)
				}

				weekday := strings.ToLower(day)
				if weekday == "" {
					weekday = strings.ToLower(time.Now().Weekday().String())
				}

				var daily []ambr.Domain
				switch weekday {
				case "monday":
					daily = domains.Monday
				case "tuesday":
					daily = domains.Tuesday
				case "wednesday":
					daily = domains.Wednesday
				case "thursday":
					daily = domains.Thursday
				case "friday":
					daily = domains.Friday
				case "saturday":
					daily = domains.Saturday
				case "sunday":
					daily = domains.Sunday
				default:
					return fmt.Errorf("invalid day: %s", day)
				}

				color.New(color.Bold).Printf("Domains on %s\n", weekday)
				for _, domain := range daily {
					fmt.Printf("%d\t%s\n", domain.ID, domain.Name)
				}
				return nil
			})
		},
	}
	command.Flags().StringVar(&day, "day", "", "Day of the week (defaults to today)")
	return &command
}
