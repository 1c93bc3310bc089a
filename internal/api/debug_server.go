package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/annel0/voxelcore/internal/logging"
	"github.com/annel0/voxelcore/internal/middleware"
	"github.com/annel0/voxelcore/internal/vec"
	"github.com/annel0/voxelcore/internal/world"
	"github.com/gin-gonic/gin"
	"github.com/klauspost/compress/gzhttp"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

const gzipMinSize = 256

// SnapshotSource отдаёт последний опубликованный снимок мира.
// Реализуется world.SnapshotStore.
type SnapshotSource interface {
	Load() *world.Snapshot
}

// DebugServer — REST API только для чтения состояния мира
type DebugServer struct {
	router   *gin.Engine
	handler  http.Handler
	server   *http.Server
	source   SnapshotSource
	process  *ProcessMetrics
	logger   *logging.Logger
	registry prometheus.Gatherer
}

// Config содержит конфигурацию отладочного сервера
type Config struct {
	Addr     string               // адрес для запуска сервера
	Source   SnapshotSource       // источник снимков
	Registry *prometheus.Registry // регистр метрик мира и HTTP
	Logger   *logging.Logger      // логгер компонента api
}

// GenericResponse представляет общий ответ API
type GenericResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// NewDebugServer создает отладочный сервер
func NewDebugServer(cfg Config) (*DebugServer, error) {
	if cfg.Source == nil {
		return nil, errors.New("api: источник снимков не задан")
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8089"
	}
	if cfg.Registry == nil {
		cfg.Registry = prometheus.NewRegistry()
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.GetAPILogger()
	}

	gin.SetMode(gin.ReleaseMode)

	router := gin.New()        // без стандартного logger/recovery
	router.Use(gin.Recovery()) // добавим только recovery

	// === Observability middleware ===
	router.Use(otelgin.Middleware("voxel_debug"))
	router.Use(middleware.NewRequestLogger(cfg.Logger).Handler())

	promMw, err := middleware.NewPrometheusMiddleware(cfg.Registry, "voxel_debug")
	if err != nil {
		return nil, err
	}
	router.Use(promMw.Handler())
	promMw.RegisterMetricsEndpoint(router, cfg.Registry)

	// Ответы крупнее gzipMinSize сжимаются, если клиент это поддерживает
	gzip, err := gzhttp.NewWrapper(gzhttp.MinSize(gzipMinSize))
	if err != nil {
		return nil, err
	}
	handler := gzip(router)

	ds := &DebugServer{
		router:   router,
		handler:  handler,
		source:   cfg.Source,
		process:  NewProcessMetrics(),
		logger:   cfg.Logger,
		registry: cfg.Registry,
		server: &http.Server{
			Addr:              cfg.Addr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
	ds.setupRoutes()
	return ds, nil
}

func (ds *DebugServer) setupRoutes() {
	ds.router.GET("/health", ds.handleHealth)

	api := ds.router.Group("/api")
	{
		api.GET("/world/stats", ds.handleWorldStats)
		api.GET("/world/chunks/:x/:y/:z", ds.handleChunk)
		api.GET("/process", ds.handleProcess)
	}
}

// Handler возвращает http.Handler со всеми маршрутами и сжатием
func (ds *DebugServer) Handler() http.Handler {
	return ds.handler
}

// handleHealth проверка состояния сервера
func (ds *DebugServer) handleHealth(c *gin.Context) {
	snap := ds.source.Load()
	status := "ok"
	var tick uint64
	if snap == nil {
		status = "starting"
	} else {
		tick = snap.Tick
	}
	c.JSON(http.StatusOK, gin.H{
		"status": status,
		"tick":   tick,
		"time":   time.Now().Unix(),
	})
}

// handleWorldStats отдаёт последний снимок мира
func (ds *DebugServer) handleWorldStats(c *gin.Context) {
	snap := ds.source.Load()
	if snap == nil {
		c.JSON(http.StatusServiceUnavailable, GenericResponse{
			Success: false,
			Message: "Мир ещё не опубликовал ни одного снимка",
		})
		return
	}

	c.JSON(http.StatusOK, GenericResponse{
		Success: true,
		Message: "Статистика мира",
		Data:    snap,
	})
}

// handleChunk отдаёт сведения об одном чанке
func (ds *DebugServer) handleChunk(c *gin.Context) {
	coord, err := parseCoord(c.Param("x"), c.Param("y"), c.Param("z"))
	if err != nil {
		c.JSON(http.StatusBadRequest, GenericResponse{
			Success: false,
			Message: "Неверные координаты чанка",
		})
		return
	}

	snap := ds.source.Load()
	if snap == nil {
		c.JSON(http.StatusServiceUnavailable, GenericResponse{
			Success: false,
			Message: "Мир ещё не опубликовал ни одного снимка",
		})
		return
	}

	info, ok := snap.Chunk(coord)
	if !ok {
		c.JSON(http.StatusNotFound, GenericResponse{
			Success: false,
			Message: "Чанк не загружен",
			Data:    coord,
		})
		return
	}

	c.JSON(http.StatusOK, GenericResponse{
		Success: true,
		Message: "Чанк",
		Data:    info,
	})
}

// handleProcess возвращает метрики процесса
func (ds *DebugServer) handleProcess(c *gin.Context) {
	stats, err := ds.process.Collect()
	if err != nil {
		ds.logger.Debug("⚠️ Метрики gopsutil недоступны: %v", err)
	}

	c.JSON(http.StatusOK, GenericResponse{
		Success: true,
		Message: "Метрики процесса",
		Data:    stats,
	})
}

func parseCoord(xs, ys, zs string) (vec.Vec3, error) {
	x, err := strconv.Atoi(xs)
	if err != nil {
		return vec.Vec3{}, err
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return vec.Vec3{}, err
	}
	z, err := strconv.Atoi(zs)
	if err != nil {
		return vec.Vec3{}, err
	}
	return vec.Vec3{X: x, Y: y, Z: z}, nil
}

// Start запускает сервер и блокируется до его остановки
func (ds *DebugServer) Start() error {
	ds.logger.Info("🌐 Отладочный API слушает %s", ds.server.Addr)
	if err := ds.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop корректно останавливает сервер
func (ds *DebugServer) Stop(ctx context.Context) error {
	return ds.server.Shutdown(ctx)
}
