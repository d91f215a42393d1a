package config

import (
	"fmt"
	"strings"

	"github.com/ThueCoders/oxforddict"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Dictionary DictionaryConfig `mapstructure:"dictionary"`
}

type DictionaryConfig struct {
	AppID          string `mapstructure:"app_id"`
	AppKey         string `mapstructure:"app_key"`
	BaseURL        string `mapstructure:"base_url" validate:"omitempty,url"`
	Language       string `mapstructure:"language" validate:"required,language"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"gte=0"`
}

type Loader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewLoader(configFile string) (*Loader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/oxforddict")
	}

	return &Loader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *Loader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("dictionary.base_url", oxforddict.DefaultBaseURL)
	v.SetDefault("dictionary.language", oxforddict.DefaultLanguage)
	v.SetDefault("dictionary.timeout_seconds", 10)

	// Bind credentials to environment variables only (not from config file)
	if err := v.BindEnv("dictionary.app_id", "OXFORD_APP_ID"); err != nil {
		return nil, fmt.Errorf("failed to bind OXFORD_APP_ID environment variable: %w", err)
	}
	if err := v.BindEnv("dictionary.app_key", "OXFORD_APP_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind OXFORD_APP_KEY environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
