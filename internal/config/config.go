package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config корневая структура конфигурации приложения.
// Контрактные константы движка (размер чанка, гравитация и т.п.)
// конфигурацией не являются и здесь не настраиваются.

type Config struct {
	Engine  EngineConfig  `yaml:"engine"`
	Metrics MetricsConfig `yaml:"metrics"`
}

type EngineConfig struct {
	DataPath          string `yaml:"data_path"`        // Директория хранилища мира
	AutosaveSeconds   int    `yaml:"autosave_seconds"` // Интервал автосохранения
	ArchiveOnShutdown bool   `yaml:"archive_on_shutdown"`
	ArchivePath       string `yaml:"archive_path"` // Файл сжатой резервной копии
}

type MetricsConfig struct {
	Port int `yaml:"port"`
}

// GetDataPath возвращает путь к данным с приоритетом: config -> env -> default
func (e *EngineConfig) GetDataPath() string {
	if e.DataPath != "" {
		return e.DataPath
	}
	if envVal := os.Getenv("VOXEL_DATA_PATH"); envVal != "" {
		return envVal
	}
	return "data"
}

// GetAutosaveSeconds возвращает интервал автосохранения
func (e *EngineConfig) GetAutosaveSeconds() int {
	if e.AutosaveSeconds > 0 {
		return e.AutosaveSeconds
	}
	return 30
}

// GetPort возвращает порт метрик с приоритетом: config -> env -> default
func (m *MetricsConfig) GetPort() int {
	if m.Port > 0 {
		return m.Port
	}
	if envVal := os.Getenv("VOXEL_METRICS_PORT"); envVal != "" {
		if port, err := strconv.Atoi(envVal); err == nil && port > 0 {
			return port
		}
	}
	return 2112
}

// Load читает YAML файл конфигурации.
// Если path == "", пытается прочитать из ENV VOXEL_CONFIG или возвращает nil, nil.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("VOXEL_CONFIG")
		if path == "" {
			return nil, nil // конфиг не задан — использовать дефолты
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
