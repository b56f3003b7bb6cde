package engine

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config хранит параметры запуска симуляции
type Config struct {
	Simulation SimulationConfig `toml:"simulation"`
	Logging    LoggingConfig    `toml:"logging"`
}

type SimulationConfig struct {
	// LevelFile - путь к YAML-файлу уровня
	LevelFile string `toml:"level_file"`
	// WatchLevel - перезагружать уровень при изменении файла
	WatchLevel bool `toml:"watch_level"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`  // debug, info, warn, error
	Format string `toml:"format"` // text, json
}

// DefaultConfig создает конфиг по умолчанию
func DefaultConfig() Config {
	return Config{
		Simulation: SimulationConfig{
			LevelFile:  "levels/level1.yaml",
			WatchLevel: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadConfig читает TOML-конфиг поверх дефолтов.
// Отсутствующий файл - не ошибка: работаем на дефолтах.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}
