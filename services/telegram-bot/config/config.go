package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	TelegramToken string `mapstructure:"TELEGRAM_BOT_TOKEN"`
	GatewayURL    string `mapstructure:"GATEWAY_URL"`
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
}

func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	viper.BindEnv("TELEGRAM_BOT_TOKEN")
	viper.BindEnv("GATEWAY_URL")
	viper.BindEnv("REDIS_ADDR")

	viper.SetDefault("GATEWAY_URL", "http://api-gateway:8000")
	viper.SetDefault("REDIS_ADDR", "redis:6379")

	err = viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
		err = nil
	}

	err = viper.Unmarshal(&config)
	return
}
