package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/annel0/voxel-engine/internal/config"
	"github.com/annel0/voxel-engine/internal/engine"
	"github.com/annel0/voxel-engine/internal/logging"
	"github.com/annel0/voxel-engine/internal/metrics"
	"github.com/annel0/voxel-engine/internal/physics"
	"github.com/annel0/voxel-engine/internal/storage"
)

func main() {
	// Инициализируем систему логирования
	if err := logging.InitLogger("engine"); err != nil {
		log.Fatalf("Ошибка инициализации логирования: %v", err)
	}
	defer logging.CloseLogger()

	logging.Info("Запуск voxel-engine...")

	// === КОНФИГУРАЦИЯ ===
	cfg, err := config.Load("")
	if err != nil {
		logging.Error("Ошибка чтения конфигурации: %v", err)
		log.Fatalf("Ошибка чтения конфигурации: %v", err)
	}
	if cfg == nil {
		cfg = &config.Config{}
	}

	dataPath := cfg.Engine.GetDataPath()
	metricsPort := cfg.Metrics.GetPort()
	autosave := time.Duration(cfg.Engine.GetAutosaveSeconds()) * time.Second

	logging.Info("Конфигурация: data=%s, metrics=:%d, autosave=%s", dataPath, metricsPort, autosave)

	// === ХРАНИЛИЩЕ МИРА ===
	store, err := storage.NewWorldStorage(dataPath)
	if err != nil {
		logging.Error("Ошибка открытия хранилища: %v", err)
		log.Fatalf("Ошибка открытия хранилища: %v", err)
	}
	defer store.Close()

	meta, err := store.EnsureMeta()
	if err != nil {
		logging.Error("Ошибка чтения метаданных мира: %v", err)
		log.Fatalf("Ошибка чтения метаданных мира: %v", err)
	}
	logging.Info("Мир %s (создан %s)", meta.ID, meta.CreatedAt.Format(time.RFC3339))

	// === СЕССИЯ ДВИЖКА ===
	session := engine.NewSession()

	loaded, err := store.LoadWorld(session.World)
	if err != nil {
		// Повреждённое сохранение не должно тянуть за собой мусорный мир
		logging.Error("Ошибка загрузки мира, стартуем с пустого: %v", err)
		session = engine.NewSession()
	} else if loaded > 0 {
		logging.Info("Загружено %d чанков из хранилища", loaded)
		session.RebuildBatches()
	}

	// Первичный стриминг вокруг спауна
	session.Refresh(session.Body.Position)
	logging.Info("Активно чанков: %d", session.World.ChunkCount())

	// === МЕТРИКИ ===
	exporter := metrics.NewExporter(session)
	go exporter.Serve(metricsPort)
	logging.Info("Метрики: http://localhost:%d/metrics", metricsPort)

	// Канал для получения сигналов ОС
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	tickTicker := time.NewTicker(time.Duration(physics.FixedDT * float64(time.Second)))
	defer tickTicker.Stop()
	saveTicker := time.NewTicker(autosave)
	defer saveTicker.Stop()

	logging.Info("Движок запущен, тик %.0f мс", physics.FixedDT*1000)

loop:
	for {
		select {
		case <-tickTicker.C:
			// Headless-режим: внешний слой ввода отсутствует, симуляция
			// продвигается с пустым намерением
			session.Tick(engine.Input{})
		case <-saveTicker.C:
			if err := store.SaveWorld(session.World); err != nil {
				logging.Error("Ошибка автосохранения: %v", err)
			} else {
				logging.Debug("Автосохранение: %d чанков активно", session.World.ChunkCount())
			}
		case sig := <-sigCh:
			logging.Info("Получен сигнал %v, завершение работы...", sig)
			break loop
		}
	}

	// === GRACEFUL SHUTDOWN ===
	exporter.Stop()

	if err := store.SaveWorld(session.World); err != nil {
		logging.Error("Ошибка сохранения мира: %v", err)
	}

	meta.Ticks = session.Ticks()
	if err := store.UpdateMeta(meta); err != nil {
		logging.Error("Ошибка записи метаданных: %v", err)
	}

	if cfg.Engine.ArchiveOnShutdown && cfg.Engine.ArchivePath != "" {
		if err := storage.WriteArchive(cfg.Engine.ArchivePath, session.World); err != nil {
			logging.Error("Ошибка записи архива: %v", err)
		} else {
			logging.Info("Архив мира записан: %s", cfg.Engine.ArchivePath)
		}
	}

	logging.Info("Движок остановлен")
}
