package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	HTTPAddr string     `env:"HTTP_ADDR" envDefault:":8080"`
	DBPath   string     `env:"DB_PATH" envDefault:"data/skyline.db"`
	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
	SPADir   string     `env:"SPA_DIR" envDefault:"../web/dist"`

	// Generative model access. The image model is only exercised when a
	// client asks for an AI-generated skyline instead of a real photo.
	GeminiAPIKey     string `env:"GEMINI_API_KEY,required"`
	GeminiTextModel  string `env:"GEMINI_TEXT_MODEL" envDefault:"gemini-2.0-flash"`
	GeminiImageModel string `env:"GEMINI_IMAGE_MODEL" envDefault:"gemini-2.0-flash-exp"`

	// Photo search API. The key never leaves the server.
	PhotoAPIKey string `env:"PHOTO_API_KEY,required"`
	PhotoAPIURL string `env:"PHOTO_API_URL" envDefault:"https://api.pexels.com/v1"`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}
