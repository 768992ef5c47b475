// Package config loads server settings from defaults, an optional config
// file and environment variables, in increasing order of precedence.
//
// Environment variables use the upper-cased key with dots replaced by
// underscores, e.g. store.name -> STORE_NAME, pricing.delivery_charge ->
// PRICING_DELIVERY_CHARGE.
package config

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/mmynk/urbanthek/internal/hours"
	"github.com/mmynk/urbanthek/internal/order"
	"github.com/mmynk/urbanthek/internal/pricing"
)

// Config holds all configuration for the storefront server.
type Config struct {
	Port         int    `mapstructure:"port"`
	LogLevel     string `mapstructure:"log_level"`
	DBPath       string `mapstructure:"db_path"`
	DatabaseURL  string `mapstructure:"database_url"`
	AMQPURL      string `mapstructure:"amqp_url"`
	AMQPExchange string `mapstructure:"amqp_exchange"`
	MenuSeedFile string `mapstructure:"menu_seed_file"`
	PageSize     int    `mapstructure:"page_size"`
	ReceiptWidth int    `mapstructure:"receipt_width"`

	Hours   HoursConfig   `mapstructure:"hours"`
	Pricing PricingConfig `mapstructure:"pricing"`
	Store   StoreConfig   `mapstructure:"store"`
}

// HoursConfig is the daily ordering window, in local whole hours.
type HoursConfig struct {
	Opening int `mapstructure:"opening"`
	Closing int `mapstructure:"closing"`
}

// PricingConfig holds the delivery thresholds and the one delivery fee.
type PricingConfig struct {
	MinOrder        string `mapstructure:"min_order"`
	FreeDeliveryMin string `mapstructure:"free_delivery_min"`
	DeliveryCharge  string `mapstructure:"delivery_charge"`
}

// StoreConfig is the store identity printed on messages and receipts.
type StoreConfig struct {
	Name           string `mapstructure:"name"`
	Location       string `mapstructure:"location"`
	WhatsAppNumber string `mapstructure:"whatsapp_number"`
	DeliveryNote   string `mapstructure:"delivery_note"`
	GSTIN          string `mapstructure:"gstin"`
	FSSAI          string `mapstructure:"fssai"`
	ContactPhones  string `mapstructure:"contact_phones"`
	Website        string `mapstructure:"website"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 8080)
	v.SetDefault("log_level", "info")
	v.SetDefault("db_path", "./data/urbanthek.db")
	v.SetDefault("database_url", "")
	v.SetDefault("amqp_url", "")
	v.SetDefault("amqp_exchange", "orders_fanout")
	v.SetDefault("menu_seed_file", "")
	v.SetDefault("page_size", 20)
	v.SetDefault("receipt_width", order.DefaultReceiptWidth)

	v.SetDefault("hours.opening", hours.DefaultOpeningHour)
	v.SetDefault("hours.closing", hours.DefaultClosingHour)

	v.SetDefault("pricing.min_order", pricing.DefaultRules.MinOrder.String())
	v.SetDefault("pricing.free_delivery_min", pricing.DefaultRules.FreeDeliveryMin.String())
	v.SetDefault("pricing.delivery_charge", pricing.DefaultRules.DeliveryCharge.String())

	s := order.DefaultStore
	v.SetDefault("store.name", s.Name)
	v.SetDefault("store.location", s.Location)
	v.SetDefault("store.whatsapp_number", s.WhatsAppNumber)
	v.SetDefault("store.delivery_note", s.DeliveryNote)
	v.SetDefault("store.gstin", s.GSTIN)
	v.SetDefault("store.fssai", s.FSSAI)
	v.SetDefault("store.contact_phones", s.ContactPhones)
	v.SetDefault("store.website", s.Website)
}

// Load reads configuration. path may be empty, in which case only defaults
// and the environment are used.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Hours.Opening < 0 || c.Hours.Closing > 24 || c.Hours.Opening >= c.Hours.Closing {
		return fmt.Errorf("invalid opening hours: %d-%d", c.Hours.Opening, c.Hours.Closing)
	}
	if _, err := c.Rules(); err != nil {
		return err
	}
	return nil
}

// Rules converts the pricing section into exact decimals.
func (c *Config) Rules() (pricing.Rules, error) {
	minOrder, err := decimal.NewFromString(c.Pricing.MinOrder)
	if err != nil {
		return pricing.Rules{}, fmt.Errorf("invalid pricing.min_order: %w", err)
	}
	freeMin, err := decimal.NewFromString(c.Pricing.FreeDeliveryMin)
	if err != nil {
		return pricing.Rules{}, fmt.Errorf("invalid pricing.free_delivery_min: %w", err)
	}
	charge, err := decimal.NewFromString(c.Pricing.DeliveryCharge)
	if err != nil {
		return pricing.Rules{}, fmt.Errorf("invalid pricing.delivery_charge: %w", err)
	}
	return pricing.Rules{MinOrder: minOrder, FreeDeliveryMin: freeMin, DeliveryCharge: charge}, nil
}

// StoreInfo returns the store identity for the order composer.
func (c *Config) StoreInfo() order.StoreInfo {
	return order.StoreInfo{
		Name:           c.Store.Name,
		Location:       c.Store.Location,
		WhatsAppNumber: c.Store.WhatsAppNumber,
		DeliveryNote:   c.Store.DeliveryNote,
		GSTIN:          c.Store.GSTIN,
		FSSAI:          c.Store.FSSAI,
		ContactPhones:  c.Store.ContactPhones,
		Website:        c.Store.Website,
	}
}
