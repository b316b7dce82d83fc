package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/silvercommerce/tax-admin/internal/pricing"
	"github.com/silvercommerce/tax-admin/pkg/maths"
)

// Config holds everything the server needs at boot, sourced from
// environment variables (optionally via configs/.env).
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Site     SiteConfig
	Pricing  PricingConfig
	LogLevel string
}

type ServerConfig struct {
	Port        string
	CORSOrigins []string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// SiteConfig describes the default tenant created on first boot.
type SiteConfig struct {
	Name          string
	DefaultLocale string
}

type PricingConfig struct {
	Precision        int32
	Rounding         string
	Algorithm        string
	ShowPriceWithTax bool
	ShowTaxString    bool
}

// DSN renders the postgres connection string.
func (d DatabaseConfig) DSN() string {
	return "postgres://" + d.User + ":" + d.Password + "@" + d.Host + ":" + d.Port + "/" + d.Name + "?sslmode=" + d.SSLMode
}

// PricingConfig converts the raw settings into the calculator's config
// value object.
func (c Config) PricingConfig() (pricing.Config, error) {
	mode, err := maths.ParseMode(c.Pricing.Rounding)
	if err != nil {
		return pricing.Config{}, fmt.Errorf("invalid PRICING_ROUNDING: %w", err)
	}
	version, err := maths.ParseVersion(c.Pricing.Algorithm)
	if err != nil {
		return pricing.Config{}, fmt.Errorf("invalid PRICING_ALGORITHM: %w", err)
	}
	return pricing.Config{
		Precision:        c.Pricing.Precision,
		Mode:             mode,
		Version:          version,
		ShowPriceWithTax: c.Pricing.ShowPriceWithTax,
		ShowTaxString:    c.Pricing.ShowTaxString,
	}, nil
}

// Load reads configuration from the environment with sane defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("CORS_ORIGINS", []string{"http://localhost:5173"})

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "tax_admin")
	v.SetDefault("DB_SSLMODE", "disable")

	v.SetDefault("DEFAULT_SITE_NAME", "Default Site")
	v.SetDefault("DEFAULT_LOCALE", "en_GB")

	v.SetDefault("PRICING_PRECISION", 2)
	v.SetDefault("PRICING_ROUNDING", "nearest")
	v.SetDefault("PRICING_ALGORITHM", "v2")
	v.SetDefault("PRICING_SHOW_PRICE_WITH_TAX", false)
	v.SetDefault("PRICING_SHOW_TAX_STRING", false)

	v.SetDefault("LOG_LEVEL", "info")

	cfg := &Config{
		Server: ServerConfig{
			Port:        v.GetString("PORT"),
			CORSOrigins: v.GetStringSlice("CORS_ORIGINS"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		Site: SiteConfig{
			Name:          v.GetString("DEFAULT_SITE_NAME"),
			DefaultLocale: v.GetString("DEFAULT_LOCALE"),
		},
		Pricing: PricingConfig{
			Precision:        v.GetInt32("PRICING_PRECISION"),
			Rounding:         v.GetString("PRICING_ROUNDING"),
			Algorithm:        v.GetString("PRICING_ALGORITHM"),
			ShowPriceWithTax: v.GetBool("PRICING_SHOW_PRICE_WITH_TAX"),
			ShowTaxString:    v.GetBool("PRICING_SHOW_TAX_STRING"),
		},
		LogLevel: v.GetString("LOG_LEVEL"),
	}

	if _, err := cfg.PricingConfig(); err != nil {
		return nil, err
	}
	return cfg, nil
}
