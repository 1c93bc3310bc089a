package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/annel0/voxelcore/internal/api"
	"github.com/annel0/voxelcore/internal/config"
	"github.com/annel0/voxelcore/internal/logging"
	"github.com/annel0/voxelcore/internal/observability"
	"github.com/annel0/voxelcore/internal/world"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	_ "github.com/annel0/voxelcore/internal/world/block/implementations"
)

func main() {
	configPath := flag.String("config", "", "путь к YAML конфигурации (по умолчанию $VOXEL_CONFIG)")
	flag.Parse()

	// === КОНФИГУРАЦИЯ ===
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ Ошибка загрузки конфигурации: %v", err)
	}

	consoleLevel, err := logging.ParseLevel(cfg.Logging.ConsoleLevel)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	fileLevel, err := logging.ParseLevel(cfg.Logging.FileLevel)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	logging.Configure(logging.Options{
		Dir:             cfg.Logging.Dir,
		MinConsoleLevel: consoleLevel,
		MinFileLevel:    fileLevel,
	})

	// Инициализируем систему логирования
	if err := logging.InitDefaultLogger("voxeld"); err != nil {
		log.Fatalf("❌ Ошибка инициализации логирования: %v", err)
	}
	defer logging.CloseDefaultLogger()
	defer logging.GetLoggerManager().CloseAll()

	logging.Info("🧊 Запуск voxeld (генератор %s, построитель %s, масштаб %d)",
		cfg.World.Generator, cfg.Meshing.Mesher, cfg.Meshing.Scale)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// === ИНИЦИАЛИЗАЦИЯ КОМПОНЕНТОВ ===
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	logging.Debug("Создание мира...")
	w, err := buildWorld(cfg, reg, logging.GetWorldLogger())
	if err != nil {
		logging.Error("❌ Ошибка создания мира: %v", err)
		log.Fatalf("❌ Ошибка создания мира: %v", err)
	}

	shutdownTelemetry, err := observability.InitTelemetry(ctx, observability.Options{
		Enabled:     cfg.Telemetry.Enabled,
		ServiceName: cfg.Telemetry.ServiceName,
		WorldID:     w.ID().String(),
	})
	if err != nil {
		logging.Error("❌ Ошибка инициализации OpenTelemetry: %v", err)
		log.Fatalf("❌ Ошибка инициализации OpenTelemetry: %v", err)
	}

	store := &world.SnapshotStore{}
	store.Publish(w.Stats())

	var debugServer *api.DebugServer
	if cfg.Debug.Enabled {
		debugServer, err = api.NewDebugServer(api.Config{
			Addr:     cfg.Debug.Addr(),
			Source:   store,
			Registry: reg,
			Logger:   logging.GetAPILogger(),
		})
		if err != nil {
			logging.Error("❌ Ошибка создания отладочного API: %v", err)
			log.Fatalf("❌ Ошибка создания отладочного API: %v", err)
		}
		go func() {
			if err := debugServer.Start(); err != nil {
				logging.Error("❌ Отладочный API остановлен с ошибкой: %v", err)
			}
		}()
		logging.Info("   ❤️  Health check: http://%s/health", cfg.Debug.Addr())
		logging.Info("   📊 Статистика мира: http://%s/api/world/stats", cfg.Debug.Addr())
	}

	renderer := &nullRenderer{}
	d := &driver{
		world:    w,
		renderer: renderer,
		store:    store,
		observer: orbitObserver{Radius: 512, Height: 24, Speed: 0.002},
		budget:   time.Duration(cfg.World.TickBudget) * time.Millisecond,
		logger:   logging.GetWorldLogger(),
		logEvery: 300,
	}

	logging.Info("✅ Все сервисы запущены, бюджет тика %v", d.budget)
	d.run(ctx)

	// === GRACEFUL SHUTDOWN ===
	logging.Info("📡 Получен сигнал завершения, остановка сервисов...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if debugServer != nil {
		logging.Debug("Остановка отладочного API...")
		if err := debugServer.Stop(shutdownCtx); err != nil {
			logging.Error("❌ Ошибка остановки отладочного API: %v", err)
		}
	}
	if err := shutdownTelemetry(shutdownCtx); err != nil {
		logging.Error("❌ Ошибка остановки OpenTelemetry: %v", err)
	}

	logging.Info("👋 voxeld остановлен: загрузок сеток %d, отрисовок %d, освобождений %d",
		renderer.uploads, renderer.draws, renderer.releases)
}
