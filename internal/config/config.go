package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/annel0/voxelcore/internal/world"
	"github.com/shirou/gopsutil/v3/cpu"
	"gopkg.in/yaml.v3"
)

// Config корневая структура конфигурации voxeld
type Config struct {
	World     WorldConfig     `yaml:"world"`
	Streaming StreamingConfig `yaml:"streaming"`
	Meshing   MeshingConfig   `yaml:"meshing"`
	Debug     DebugConfig     `yaml:"debug"`
	Logging   LoggingConfig   `yaml:"logging"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

type WorldConfig struct {
	Seed       int64  `yaml:"seed"`
	Workers    int    `yaml:"workers"`   // 0 — по числу логических CPU
	Generator  string `yaml:"generator"` // heightmap | flat
	FlatHeight int    `yaml:"flat_height"`
	TickBudget int    `yaml:"tick_budget_ms"`
}

type StreamingConfig struct {
	LoadRadius   int     `yaml:"load_radius"`
	LoadRadiusZ  int     `yaml:"load_radius_z"`
	UnloadRadius int     `yaml:"unload_radius"`
	UnloadSlackZ int     `yaml:"unload_slack_z"`
	BatchSize    int     `yaml:"batch_size"`
	LoadRatio    float64 `yaml:"load_ratio"`
	DistanceBase int     `yaml:"distance_base"`
	AlignWeight  int     `yaml:"align_weight"`
	NearBonus    int     `yaml:"near_bonus"`
	NearRadius   int     `yaml:"near_radius"`
}

type MeshingConfig struct {
	Mesher string `yaml:"mesher"` // greedy | naive
	Scale  int    `yaml:"scale"`
}

type DebugConfig struct {
	Enabled bool   `yaml:"enabled"`
	Host    string `yaml:"host"`
	Port    int    `yaml:"port"`
}

type LoggingConfig struct {
	Dir          string `yaml:"dir"`
	ConsoleLevel string `yaml:"console_level"`
	FileLevel    string `yaml:"file_level"`
}

type TelemetryConfig struct {
	Enabled     bool   `yaml:"enabled"`
	ServiceName string `yaml:"service_name"`
}

// Генераторы ландшафта
const (
	GeneratorHeightmap = "heightmap"
	GeneratorFlat      = "flat"
)

// Построители сеток
const (
	MesherGreedy = "greedy"
	MesherNaive  = "naive"
)

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	p := world.DefaultStreamingParams()
	return &Config{
		World: WorldConfig{
			Seed:       1,
			Generator:  GeneratorHeightmap,
			FlatHeight: 8,
			TickBudget: 16,
		},
		Streaming: StreamingConfig{
			LoadRadius:   p.LoadRadius,
			LoadRadiusZ:  p.LoadRadiusZ,
			UnloadRadius: p.UnloadRadius,
			UnloadSlackZ: p.UnloadSlackZ,
			BatchSize:    p.BatchSize,
			LoadRatio:    p.LoadRatio,
			DistanceBase: p.DistanceBase,
			AlignWeight:  p.AlignWeight,
			NearBonus:    p.NearBonus,
			NearRadius:   p.NearRadius,
		},
		Meshing: MeshingConfig{
			Mesher: MesherGreedy,
			Scale:  1,
		},
		Debug: DebugConfig{
			Enabled: true,
			Host:    "127.0.0.1",
		},
		Logging: LoggingConfig{
			ConsoleLevel: "INFO",
			FileLevel:    "DEBUG",
		},
		Telemetry: TelemetryConfig{
			ServiceName: "voxeld",
		},
	}
}

// Load читает YAML файл конфигурации поверх значений по умолчанию.
// Если path == "", берётся ENV VOXEL_CONFIG; если и он пуст, возвращаются дефолты.
// После чтения применяются переопределения из окружения и выполняется проверка.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("VOXEL_CONFIG")
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("чтение конфигурации %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("разбор конфигурации %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv применяет переопределения VOXEL_SEED и VOXEL_WORKERS
func (c *Config) applyEnv() {
	if v := os.Getenv("VOXEL_SEED"); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.World.Seed = seed
		}
	}
	if v := os.Getenv("VOXEL_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			c.World.Workers = n
		}
	}
}

// Validate проверяет значения и возвращает все найденные ошибки сразу
func (c *Config) Validate() error {
	var errs []error

	switch c.World.Generator {
	case GeneratorHeightmap, GeneratorFlat:
	default:
		errs = append(errs, fmt.Errorf("world.generator: неизвестный генератор %q", c.World.Generator))
	}
	if c.World.Workers < 0 {
		errs = append(errs, errors.New("world.workers: не может быть отрицательным"))
	}
	if c.World.TickBudget <= 0 {
		errs = append(errs, errors.New("world.tick_budget_ms: должен быть положительным"))
	}

	s := c.Streaming
	if s.LoadRadius <= 0 || s.LoadRadiusZ < 0 {
		errs = append(errs, errors.New("streaming: радиусы загрузки должны быть положительными"))
	}
	if s.UnloadRadius < s.LoadRadius {
		errs = append(errs, fmt.Errorf("streaming.unload_radius (%d) меньше load_radius (%d)", s.UnloadRadius, s.LoadRadius))
	}
	if s.UnloadSlackZ < 0 {
		errs = append(errs, errors.New("streaming.unload_slack_z: не может быть отрицательным"))
	}
	if s.BatchSize <= 0 {
		errs = append(errs, errors.New("streaming.batch_size: должен быть положительным"))
	}
	if s.LoadRatio <= 0 || s.LoadRatio > 1 {
		errs = append(errs, fmt.Errorf("streaming.load_ratio: %v вне (0, 1]", s.LoadRatio))
	}

	switch c.Meshing.Mesher {
	case MesherGreedy, MesherNaive:
	default:
		errs = append(errs, fmt.Errorf("meshing.mesher: неизвестный построитель %q", c.Meshing.Mesher))
	}
	if c.Meshing.Scale <= 0 || world.Size%c.Meshing.Scale != 0 {
		errs = append(errs, fmt.Errorf("meshing.scale: %d не делит размер чанка %d", c.Meshing.Scale, world.Size))
	}

	if c.Debug.Port < 0 || c.Debug.Port > 65535 {
		errs = append(errs, fmt.Errorf("debug.port: %d вне диапазона", c.Debug.Port))
	}

	return errors.Join(errs...)
}

// Params переводит секцию стриминга в параметры мира
func (s StreamingConfig) Params() world.StreamingParams {
	return world.StreamingParams{
		LoadRadius:   s.LoadRadius,
		LoadRadiusZ:  s.LoadRadiusZ,
		UnloadRadius: s.UnloadRadius,
		UnloadSlackZ: s.UnloadSlackZ,
		BatchSize:    s.BatchSize,
		LoadRatio:    s.LoadRatio,
		DistanceBase: s.DistanceBase,
		AlignWeight:  s.AlignWeight,
		NearBonus:    s.NearBonus,
		NearRadius:   s.NearRadius,
	}
}

// ResolveWorkers возвращает число потоков: заданное или число логических CPU
func (w WorldConfig) ResolveWorkers() int {
	if w.Workers > 0 {
		return w.Workers
	}
	if n, err := cpu.Counts(true); err == nil && n > 0 {
		return n
	}
	return runtime.NumCPU()
}

// GetPort возвращает порт отладочного API с поддержкой fallback значений
func (d *DebugConfig) GetPort() int {
	return getPortWithEnvFallback(d.Port, "VOXEL_DEBUG_PORT", 8089)
}

// Addr возвращает адрес для net/http
func (d *DebugConfig) Addr() string {
	return fmt.Sprintf("%s:%d", d.Host, d.GetPort())
}

// getPortWithEnvFallback возвращает порт с приоритетом: config -> env -> default
func getPortWithEnvFallback(configPort int, envVar string, defaultPort int) int {
	if configPort > 0 {
		return configPort
	}

	if envVal := os.Getenv(envVar); envVal != "" {
		if port, err := strconv.Atoi(envVal); err == nil && port > 0 {
			return port
		}
	}

	return defaultPort
}
