// Package config собирает настройки приложения из флагов и переменных окружения.
package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// StoragePath файл со ссылками в рабочем каталоге. Не настраивается.
const StoragePath = "links.txt"

const (
	EncodingConsole = "console"
	EncodingJSON    = "json"
)

type ConfigType struct {
	LogLevel    string `env:"LOG_LEVEL"`
	LogEncoding string `env:"LOG_ENCODING"`
}

// NewConfig разбирает args (без имени программы), затем переопределяет
// значения переменными окружения.
func NewConfig(args []string) (*ConfigType, error) {
	config := ConfigType{}

	fs := flag.NewFlagSet("shortener", flag.ContinueOnError)
	fs.StringVar(&config.LogLevel, "l", "info", "log level (debug, info, warn, error)")
	fs.StringVar(&config.LogEncoding, "e", EncodingConsole, "log encoding (console, json)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if err := env.Parse(&config); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if config.LogEncoding != EncodingConsole && config.LogEncoding != EncodingJSON {
		return nil, fmt.Errorf("unknown log encoding %q", config.LogEncoding)
	}

	return &config, nil
}
