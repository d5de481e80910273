package main

import "github.com/dmitrymomot/postapi/pkg/httpserver"

type Config struct {
	AppName            string   `env:"APP_NAME" envDefault:"postapi" validate:"required"`
	AppEnv             string   `env:"APP_ENV" envDefault:"development" validate:"oneof=development dev staging stage production prod"`
	LogLevel           string   `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn warning error"`
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	HTTP httpserver.Config
}
