package config

// AppConfig глобальная конфигурация приложения
var AppConfig *Config

// Config основной конфиг
type Config struct {
	Environment string
	HTTP        HTTPConfig
	Database    DatabaseConfig
}

type HTTPConfig struct {
	Port string
}
