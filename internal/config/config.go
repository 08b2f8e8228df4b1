package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// MaxPagesLimit bounds PAGINATION_MAX_PAGES and the max query parameter.
// Below it a request never builds more than MaxPagesLimit+2 descriptors.
const MaxPagesLimit = 100

type Config struct {
	Port     string
	Env      string // "dev" or "prod"
	LogLevel string

	// Padrões aplicados quando a query não informa o valor
	MaxPagesToShow int
	PerPage        int
	URLPattern     string
	Style          string

	LabelsFile     string
	LabelCacheSize int

	RateLimitRPS   float64
	RateLimitBurst int

	OTelExporter string // none, stdout, otlp-grpc, otlp-http
	OTelEndpoint string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		Env:          getEnv("APP_ENV", "dev"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		URLPattern:   getEnv("PAGINATION_URL_PATTERN", "?page=(:num)"),
		Style:        getEnv("PAGINATION_STYLE", "bootstrap"),
		LabelsFile:   os.Getenv("LABELS_FILE"),
		OTelExporter: getEnv("OTEL_EXPORTER", "none"),
		OTelEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
	}

	var err error
	if cfg.MaxPagesToShow, err = getEnvInt("PAGINATION_MAX_PAGES", 10); err != nil {
		return nil, err
	}
	if cfg.PerPage, err = getEnvInt("PAGINATION_PER_PAGE", 10); err != nil {
		return nil, err
	}
	if cfg.LabelCacheSize, err = getEnvInt("LABEL_CACHE_SIZE", 256); err != nil {
		return nil, err
	}
	if cfg.RateLimitBurst, err = getEnvInt("RATE_LIMIT_BURST", 10); err != nil {
		return nil, err
	}
	if cfg.RateLimitRPS, err = getEnvFloat("RATE_LIMIT_RPS", 5); err != nil {
		return nil, err
	}

	if cfg.MaxPagesToShow < 3 || cfg.MaxPagesToShow > MaxPagesLimit {
		return nil, fmt.Errorf("PAGINATION_MAX_PAGES deve estar entre 3 e %d, recebido %d", MaxPagesLimit, cfg.MaxPagesToShow)
	}
	if cfg.PerPage < 1 {
		return nil, fmt.Errorf("PAGINATION_PER_PAGE deve ser positivo, recebido %d", cfg.PerPage)
	}
	if cfg.LabelCacheSize < 1 {
		return nil, fmt.Errorf("LABEL_CACHE_SIZE deve ser positivo, recebido %d", cfg.LabelCacheSize)
	}

	switch cfg.Style {
	case "bootstrap", "tailwind":
	default:
		return nil, fmt.Errorf("PAGINATION_STYLE inválido: %q", cfg.Style)
	}

	switch cfg.OTelExporter {
	case "none", "stdout", "otlp-grpc", "otlp-http":
	default:
		return nil, fmt.Errorf("OTEL_EXPORTER inválido: %q", cfg.OTelExporter)
	}

	// Validação Estrita para Produção
	if cfg.Env == "prod" {
		if cfg.LabelsFile == "" {
			return nil, fmt.Errorf("produção: LABELS_FILE é obrigatório")
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s: valor inteiro inválido %q: %w", key, value, err)
	}
	return n, nil
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: valor numérico inválido %q: %w", key, value, err)
	}
	return f, nil
}
