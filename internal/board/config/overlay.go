package config

// OverlayConfig представляет конфигурацию локального слоя мутаций.
// Задачи с идентификатором не ниже порога считаются сессионными:
// бэкенд присваивает такие идентификаторы новым записям, но не хранит их.
type OverlayConfig struct {
	LocalIDThreshold int `yaml:"local_id_threshold" env:"BOARD_OVERLAY_LOCAL_ID_THRESHOLD" env-default:"201"`
}
