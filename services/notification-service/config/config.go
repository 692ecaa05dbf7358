package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	Port             string `mapstructure:"HTTP_PORT"`
	RedisAddr        string `mapstructure:"REDIS_ADDR"`
	ManagementSvcURL string `mapstructure:"MANAGEMENT_SVC_URL"`
	EnrollingSvcURL  string `mapstructure:"ENROLLING_SVC_URL"`
	TelegramToken    string `mapstructure:"TELEGRAM_BOT_TOKEN"`
	PollIntervalSec  int    `mapstructure:"POLL_INTERVAL_SEC"`
}

func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	viper.BindEnv("HTTP_PORT")
	viper.BindEnv("REDIS_ADDR")
	viper.BindEnv("MANAGEMENT_SVC_URL")
	viper.BindEnv("ENROLLING_SVC_URL")
	viper.BindEnv("TELEGRAM_BOT_TOKEN")
	viper.BindEnv("POLL_INTERVAL_SEC")

	viper.SetDefault("HTTP_PORT", ":8005")
	viper.SetDefault("REDIS_ADDR", "redis:6379")
	viper.SetDefault("MANAGEMENT_SVC_URL", "http://management-service:8004")
	viper.SetDefault("ENROLLING_SVC_URL", "http://enrolling-service:8003")
	viper.SetDefault("POLL_INTERVAL_SEC", 5)

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
