package main

import (
	"context"
	"fmt"
	"time"

	"github.com/seriaati/ambr-go"
	"github.com/seriaati/ambr-go/internal/config"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// withClient loads the configuration, starts a client and hands it to f,
// closing the client afterwards.
func withClient(ctx context.Context, f func(ctx context.Context, client *ambr.Client) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	language := ambr.Language(cfg.API.Lang)
	if lang != "" {
		language = ambr.Language(lang)
	}

	client := ambr.NewClient(
		ambr.WithBaseURL(cfg.API.BaseURL),
		ambr.WithLanguage(language),
		ambr.WithCachePath(cfg.Cache.Path),
		ambr.WithCacheTTL(time.Duration(cfg.Cache.TTLSeconds)*time.Second),
		ambr.WithHTTPTimeout(time.Duration(cfg.API.TimeoutSeconds)*time.Second),
	)
	if err := client.Start(ctx); err != nil {
		return fmt.Errorf("client.Start > %w", err)
	}
	defer func() {
		_ = client.Close()
	}()

	return f(ctx, client)
}
