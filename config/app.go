package config

import (
	"os"
	"strings"
	"sync"

	"github.com/mitchellh/mapstructure"
)

// AppConfig holds global application configuration
var AppConfig *Config
var once sync.Once

type Config struct {
	AppName string `mapstructure:"APP_NAME"`
	Port    string `mapstructure:"PORT"`
	Env     string `mapstructure:"APP_ENV"`
	Debug   bool   `mapstructure:"DEBUG"`
	// BaseURL is the externally visible host, used to build confirmation links.
	BaseURL string `mapstructure:"APP_BASE_URL"`
	// AdminEmail receives delivery notifications when a shipment is confirmed.
	AdminEmail string `mapstructure:"ADMIN_EMAIL"`
	// LowStockThreshold is the quantity at or below which the stock report job flags an item.
	LowStockThreshold int `mapstructure:"LOW_STOCK_THRESHOLD"`
}

// LoadAppConfig initializes the global AppConfig variable from the environment.
func LoadAppConfig() {
	once.Do(func() {
		env := map[string]interface{}{}
		for _, kv := range os.Environ() {
			parts := strings.SplitN(kv, "=", 2)
			if len(parts) == 2 {
				env[parts[0]] = parts[1]
			}
		}
		cfg := &Config{
			Port:              "8080",
			BaseURL:           "http://localhost:8080",
			LowStockThreshold: 5,
		}
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
		})
		if err == nil {
			_ = dec.Decode(env)
		}
		if cfg.Port == "" {
			cfg.Port = "8080"
		}
		AppConfig = cfg
	})
}
