package api

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/process"
)

const mb = 1 << 20

// ProcessStats — состояние процесса voxeld для /api/process
type ProcessStats struct {
	Uptime     string  `json:"uptime"`
	UptimeSec  int64   `json:"uptime_sec"`
	CPUPercent float64 `json:"cpu_percent"`
	CPUCores   int     `json:"cpu_cores"`
	AllocMB    float64 `json:"alloc_mb"`
	HeapMB     float64 `json:"heap_mb"`
	SysMB      float64 `json:"sys_mb"`
	RSSMB      float64 `json:"rss_mb"`
	NumGC      uint32  `json:"num_gc"`
	Goroutines int     `json:"goroutines"`
}

// ProcessMetrics снимает показатели процесса через gopsutil и runtime
type ProcessMetrics struct {
	started time.Time
	proc    *process.Process // nil, если процесс недоступен gopsutil
}

// NewProcessMetrics запоминает время старта и открывает текущий процесс
func NewProcessMetrics() *ProcessMetrics {
	pm := &ProcessMetrics{started: time.Now()}
	if p, err := process.NewProcess(int32(os.Getpid())); err == nil {
		pm.proc = p
	}
	return pm
}

// Collect собирает ProcessStats. Ошибка означает, что показатели gopsutil
// недоступны; поля runtime при этом заполнены.
func (pm *ProcessMetrics) Collect() (ProcessStats, error) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	up := time.Since(pm.started)
	s := ProcessStats{
		Uptime:     formatUptime(up),
		UptimeSec:  int64(up / time.Second),
		AllocMB:    float64(m.Alloc) / mb,
		HeapMB:     float64(m.HeapInuse) / mb,
		SysMB:      float64(m.Sys) / mb,
		NumGC:      m.NumGC,
		Goroutines: runtime.NumGoroutine(),
	}
	if n, err := cpu.Counts(true); err == nil {
		s.CPUCores = n
	}

	if pm.proc == nil {
		return s, fmt.Errorf("процесс %d недоступен", os.Getpid())
	}
	var err error
	if s.CPUPercent, err = pm.proc.CPUPercent(); err != nil {
		return s, err
	}
	mem, err := pm.proc.MemoryInfo()
	if err != nil {
		return s, err
	}
	s.RSSMB = float64(mem.RSS) / mb
	return s, nil
}

// formatUptime пишет длительность старшими ненулевыми единицами: "1д 2ч 0м 0с"
func formatUptime(d time.Duration) string {
	total := int64(d / time.Second)
	units := []struct {
		size   int64
		suffix string
	}{{86400, "д"}, {3600, "ч"}, {60, "м"}, {1, "с"}}

	var parts []string
	for _, u := range units {
		n := total / u.size
		total %= u.size
		if n > 0 || len(parts) > 0 || u.size == 1 {
			parts = append(parts, fmt.Sprintf("%d%s", n, u.suffix))
		}
	}
	return strings.Join(parts, " ")
}
