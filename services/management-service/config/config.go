package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	Port               string `mapstructure:"HTTP_PORT"`
	DBHost             string `mapstructure:"DB_HOST"`
	DBPort             string `mapstructure:"DB_PORT"`
	DBUser             string `mapstructure:"DB_USER"`
	DBPassword         string `mapstructure:"DB_PASSWORD"`
	DBName             string `mapstructure:"DB_NAME"`
	NotificationSvcURL string `mapstructure:"NOTIFICATION_SVC_URL"`
	Timezone           string `mapstructure:"TIMEZONE"`
}

func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	viper.BindEnv("HTTP_PORT")
	viper.BindEnv("DB_HOST")
	viper.BindEnv("DB_PORT")
	viper.BindEnv("DB_USER")
	viper.BindEnv("DB_PASSWORD")
	viper.BindEnv("DB_NAME")
	viper.BindEnv("NOTIFICATION_SVC_URL")
	viper.BindEnv("TIMEZONE")

	viper.SetDefault("HTTP_PORT", ":8004")
	viper.SetDefault("NOTIFICATION_SVC_URL", "http://notification-service:8005")
	viper.SetDefault("TIMEZONE", "Asia/Yekaterinburg")

	// Файла может не быть — тогда работаем на ENV.
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
