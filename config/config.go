package config

import (
	"log"

	"github.com/spf13/viper"
)

// AppConfig holds the application-level configuration.
type AppConfig struct {
	Threshold    float64 `mapstructure:"threshold"`
	CacheDir     string  `mapstructure:"cache_dir"`
	CacheEnabled bool    `mapstructure:"cache_enabled"`
	Port         int     `mapstructure:"port"`
}

var Config *AppConfig

func LoadConfig(path string) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AutomaticEnv()

	viper.SetDefault("threshold", 0.9)
	viper.SetDefault("cache_dir", "./decksweep-cache")
	viper.SetDefault("cache_enabled", false)
	viper.SetDefault("port", 8080)

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Could not read config file, using defaults: %v", err)
	}

	var appConfig AppConfig
	if err := viper.Unmarshal(&appConfig); err != nil {
		log.Fatalf("Unable to decode config into struct: %v", err)
	}

	Config = &appConfig
}
