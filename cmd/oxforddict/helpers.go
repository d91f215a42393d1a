package main

import (
	"fmt"
	"os"
	"time"

	"github.com/ThueCoders/oxforddict"
	"github.com/ThueCoders/oxforddict/internal/cli"
	"github.com/ThueCoders/oxforddict/internal/config"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

func newDictionary() (*oxforddict.Client, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	lang := cfg.Dictionary.Language
	if language != "" {
		lang = language
	}
	opts := []oxforddict.Option{
		oxforddict.WithLanguage(lang),
		oxforddict.WithBaseURL(cfg.Dictionary.BaseURL),
	}
	if cfg.Dictionary.TimeoutSeconds > 0 {
		opts = append(opts, oxforddict.WithTimeout(time.Duration(cfg.Dictionary.TimeoutSeconds)*time.Second))
	}

	client, err := oxforddict.New(cfg.Dictionary.AppID, cfg.Dictionary.AppKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("oxforddict.New > %w", err)
	}
	return client, nil
}

func newLookupCLI() (*cli.LookupCLI, error) {
	dictionary, err := newDictionary()
	if err != nil {
		return nil, err
	}
	return cli.NewLookupCLI(dictionary, os.Stdout, output), nil
}
