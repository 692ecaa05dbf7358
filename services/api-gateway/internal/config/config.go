package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	Port             string `mapstructure:"PORT"`
	AllowedOrigins   string `mapstructure:"ALLOWED_ORIGINS"`
	RedisAddr        string `mapstructure:"REDIS_ADDR"`
	AuthSvcURL       string `mapstructure:"AUTH_SVC_URL"`
	ManagementSvcURL string `mapstructure:"MANAGEMENT_SVC_URL"`
	EnrollingSvcURL  string `mapstructure:"ENROLLING_SVC_URL"`
}

func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	// Явно биндим
	viper.BindEnv("PORT")
	viper.BindEnv("ALLOWED_ORIGINS")
	viper.BindEnv("REDIS_ADDR")
	viper.BindEnv("AUTH_SVC_URL")
	viper.BindEnv("MANAGEMENT_SVC_URL")
	viper.BindEnv("ENROLLING_SVC_URL")

	viper.SetDefault("PORT", ":8000")
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("REDIS_ADDR", "redis:6379")
	viper.SetDefault("AUTH_SVC_URL", "http://auth-service:8001")
	viper.SetDefault("MANAGEMENT_SVC_URL", "http://management-service:8004")
	viper.SetDefault("ENROLLING_SVC_URL", "http://enrolling-service:8003")

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
