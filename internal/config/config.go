package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	API     APIConfig
	Printer PrinterConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Debug bool
}

type APIConfig struct {
	BaseURL       string
	Timeout       time.Duration
	RatePerSecond float64
	RateBurst     int
}

type PrinterConfig struct {
	Type    string
	USBPath string
	Address string
	Width   int
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "smartpurse-pos")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("API_BASE_URL", "https://api.smartpurse.co.ke")
	viper.SetDefault("API_TIMEOUT_SECONDS", 10)
	viper.SetDefault("API_RATE_PER_SECOND", 10.0)
	viper.SetDefault("API_RATE_BURST", 20)
	viper.SetDefault("PRINTER_TYPE", "none")
	viper.SetDefault("PRINTER_USB_PATH", "/dev/usb/lp0")
	viper.SetDefault("PRINTER_ADDRESS", "")
	viper.SetDefault("PRINTER_WIDTH", 48)

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		API: APIConfig{
			BaseURL:       viper.GetString("API_BASE_URL"),
			Timeout:       time.Duration(viper.GetInt("API_TIMEOUT_SECONDS")) * time.Second,
			RatePerSecond: viper.GetFloat64("API_RATE_PER_SECOND"),
			RateBurst:     viper.GetInt("API_RATE_BURST"),
		},
		Printer: PrinterConfig{
			Type:    viper.GetString("PRINTER_TYPE"),
			USBPath: viper.GetString("PRINTER_USB_PATH"),
			Address: viper.GetString("PRINTER_ADDRESS"),
			Width:   viper.GetInt("PRINTER_WIDTH"),
		},
	}
}
