package config

import "time"

// WatchConfig представляет конфигурацию режима периодического обновления.
type WatchConfig struct {
	Interval time.Duration `yaml:"interval" env:"BOARD_WATCH_INTERVAL" env-default:"30s"`
}

// ShutdownConfig представляет конфигурацию корректного завершения.
type ShutdownConfig struct {
	Timeout time.Duration `yaml:"timeout" env:"BOARD_SHUTDOWN_TIMEOUT" env-default:"5s"`
}
