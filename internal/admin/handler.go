// AngelaMos | 2026
// handler.go

package admin

import (
	"context"
	"database/sql"
	"net/http"
	"runtime"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"

	"github.com/carterperez-dev/matrimony-backend/internal/core"
)

const probeTimeout = 2 * time.Second

var startedAt = time.Now()

type Handler struct {
	stats      *StatsService
	dbStats    func() sql.DBStats
	redisStats func() *redis.PoolStats
	redisPing  func(ctx context.Context) error
	dbPing     func(ctx context.Context) error
}

type HandlerConfig struct {
	Stats      *StatsService
	DBStats    func() sql.DBStats
	RedisStats func() *redis.PoolStats
	RedisPing  func(ctx context.Context) error
	DBPing     func(ctx context.Context) error
}

func NewHandler(cfg HandlerConfig) *Handler {
	return &Handler{
		stats:      cfg.Stats,
		dbStats:    cfg.DBStats,
		redisStats: cfg.RedisStats,
		redisPing:  cfg.RedisPing,
		dbPing:     cfg.DBPing,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/public-stats", h.GetPublicStats)
}

func (h *Handler) RegisterAdminRoutes(
	r chi.Router,
	authenticator, adminOnly func(http.Handler) http.Handler,
) {
	r.Group(func(r chi.Router) {
		r.Use(authenticator)
		r.Use(adminOnly)

		r.Get("/admin/stats", h.GetAdminStats)
		r.Get("/admin/system", h.GetSystemStats)
		r.Get("/admin/system/db", h.GetDatabaseStats)
		r.Get("/admin/system/redis", h.GetRedisStats)
		r.Get("/admin/system/runtime", h.GetRuntimeStats)
	})
}

func (h *Handler) GetAdminStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.stats.Compute(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, stats)
}

func (h *Handler) GetPublicStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.stats.Public(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, stats)
}

// GetSystemStats probes both stores concurrently and reports pool and
// runtime figures alongside the probe results.
func (h *Handler) GetSystemStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	var (
		wg         sync.WaitGroup
		dbProbe    Probe
		redisProbe Probe
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		dbProbe = runProbe(ctx, h.dbPing)
	}()
	go func() {
		defer wg.Done()
		redisProbe = runProbe(ctx, h.redisPing)
	}()
	wg.Wait()

	core.OK(w, SystemStatsResponse{
		Database: DatabaseStatus{Probe: dbProbe, Pool: h.dbPool()},
		Redis:    RedisStatus{Probe: redisProbe, Pool: h.redisPool()},
		Runtime:  readRuntimeStats(),
	})
}

func (h *Handler) GetDatabaseStats(w http.ResponseWriter, _ *http.Request) {
	core.OK(w, h.dbPool())
}

func (h *Handler) GetRedisStats(w http.ResponseWriter, _ *http.Request) {
	core.OK(w, h.redisPool())
}

func (h *Handler) GetRuntimeStats(w http.ResponseWriter, _ *http.Request) {
	core.OK(w, readRuntimeStats())
}

func runProbe(ctx context.Context, ping func(context.Context) error) Probe {
	if ping == nil {
		return Probe{Healthy: true}
	}

	start := time.Now()
	err := ping(ctx)
	p := Probe{
		Healthy: err == nil,
		Latency: time.Since(start).Round(time.Microsecond).String(),
	}
	if err != nil {
		p.Error = err.Error()
	}
	return p
}

func readRuntimeStats() RuntimeStats {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	return RuntimeStats{
		GoVersion:    runtime.Version(),
		NumGoroutine: runtime.NumGoroutine(),
		NumCPU:       runtime.NumCPU(),
		HeapAlloc:    mem.HeapAlloc,
		Sys:          mem.Sys,
		NumGC:        mem.NumGC,
		Uptime:       time.Since(startedAt).Round(time.Second).String(),
	}
}

func (h *Handler) dbPool() *DBPoolStats {
	if h.dbStats == nil {
		return nil
	}

	st := h.dbStats()
	return &DBPoolStats{
		MaxOpen:           st.MaxOpenConnections,
		Open:              st.OpenConnections,
		InUse:             st.InUse,
		Idle:              st.Idle,
		WaitCount:         st.WaitCount,
		WaitDuration:      st.WaitDuration.String(),
		MaxIdleClosed:     st.MaxIdleClosed,
		MaxLifetimeClosed: st.MaxLifetimeClosed,
	}
}

func (h *Handler) redisPool() *RedisPoolStats {
	if h.redisStats == nil {
		return nil
	}

	st := h.redisStats()
	return &RedisPoolStats{
		Hits:       st.Hits,
		Misses:     st.Misses,
		Timeouts:   st.Timeouts,
		TotalConns: st.TotalConns,
		IdleConns:  st.IdleConns,
		StaleConns: st.StaleConns,
	}
}

type SystemStatsResponse struct {
	Database DatabaseStatus `json:"database"`
	Redis    RedisStatus    `json:"redis"`
	Runtime  RuntimeStats   `json:"runtime"`
}

type Probe struct {
	Healthy bool   `json:"healthy"`
	Latency string `json:"latency,omitempty"`
	Error   string `json:"error,omitempty"`
}

type DatabaseStatus struct {
	Probe
	Pool *DBPoolStats `json:"pool,omitempty"`
}

type RedisStatus struct {
	Probe
	Pool *RedisPoolStats `json:"pool,omitempty"`
}

type DBPoolStats struct {
	MaxOpen           int    `json:"maxOpen"`
	Open              int    `json:"open"`
	InUse             int    `json:"inUse"`
	Idle              int    `json:"idle"`
	WaitCount         int64  `json:"waitCount"`
	WaitDuration      string `json:"waitDuration"`
	MaxIdleClosed     int64  `json:"maxIdleClosed"`
	MaxLifetimeClosed int64  `json:"maxLifetimeClosed"`
}

type RedisPoolStats struct {
	Hits       uint32 `json:"hits"`
	Misses     uint32 `json:"misses"`
	Timeouts   uint32 `json:"timeouts"`
	TotalConns uint32 `json:"totalConns"`
	IdleConns  uint32 `json:"idleConns"`
	StaleConns uint32 `json:"staleConns"`
}

type RuntimeStats struct {
	GoVersion    string `json:"goVersion"`
	NumGoroutine int    `json:"numGoroutine"`
	NumCPU       int    `json:"numCPU"`
	HeapAlloc    uint64 `json:"heapAllocBytes"`
	Sys          uint64 `json:"sysBytes"`
	NumGC        uint32 `json:"numGC"`
	Uptime       string `json:"uptime"`
}
