package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/seriaati/ambr-go"
)

var (
	configFile string
	lang       langFlag
)

func main() {
	var debugMode bool
	rootCommand := cobra.Command{
		Use:           "ambr",
		Short:         "Query game data from the gi.yatta.moe API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(debugMode)
			return nil
		},
	}
	rootCommand.PersistentFlags().StringVar(&configFile, "config", "", "config file path")
	rootCommand.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug mode")
	rootCommand.PersistentFlags().Var(&lang, "lang", "Language of localized fields, e.g. en, jp, chs")

	rootCommand.AddCommand(
		newCharacterCommand(),
		newWeaponCommand(),
		newArtifactCommand(),
		newDomainCommand(),
		newChangelogCommand(),
		newCacheCommand(),
	)
	if err := rootCommand.Execute(); err != nil {
		if _, fprintfErr := fmt.Fprintf(os.Stderr, "failed to execute a command: %+v\n", err); fprintfErr != nil {
			panic(fmt.Errorf("failed to output an error: %w. Reason: %w", err, fprintfErr))
		}
		os.Exit(1)
	}
	os.Exit(0)
}

// setupLogger configures the default logger based on debug mode
func setupLogger(debugMode bool) {
	logLevel := slog.LevelInfo
	if debugMode {
		logLevel = slog.LevelDebug
	}

	slog.SetDefault(
		slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})),
	)
}

type langFlag string

func (l *langFlag) Set(val string) error {
	if !ambr.Language(val).IsValid() {
		return fmt.Errorf("invalid language: %s. Possible values are %v", val, ambr.Languages)
	}
	*l = langFlag(val)
	return nil
}

func (l langFlag) String() string {
	return string(l)
}

func (l *langFlag) Type() string {
	return "language"
}

var _ pflag.Value = (*langFlag)(nil)
