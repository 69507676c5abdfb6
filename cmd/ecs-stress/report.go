package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"text/template"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/rotisserie/eris"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"

	"github.com/plus3/ecscore/ecs"
)

var jsonConf = jsoniter.Config{
	EscapeHTML:  true,
	SortMapKeys: true,
}.Froze()

type Report struct {
	// Configuration
	Duration    time.Duration
	MaxTicks    uint64
	Entities    int
	Systems     int
	WorldSize   float64
	MaxLifetime float64

	// Results
	Outcome        string
	TotalUpdates   uint64
	TotalTime      time.Duration
	UpdateTime     Stats
	FinalEntities  int
	Respawned      int
	Census         Census
	Storage        ecs.StorageStats
	Scheduler      *ecs.SchedulerStats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats `json:"-"`
	MemStatsEnd    runtime.MemStats `json:"-"`
	Host           HostStats
}

// HostStats is what the operating system reports about the run.
type HostStats struct {
	NumCPU         int
	RSSBytes       uint64
	ProcessCPU     float64
	MemUsedPercent float64
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration `json:"-"`
}

// Observe records one tick duration.
func (s *Stats) Observe(d time.Duration) {
	s.Samples = append(s.Samples, d)
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

// CollectHost fills Host from gopsutil. Failures leave the affected fields zero.
func (r *Report) CollectHost() error {
	r.Host.NumCPU = runtime.NumCPU()

	var errs []error
	if proc, err := process.NewProcess(int32(os.Getpid())); err != nil {
		errs = append(errs, eris.Wrap(err, "open process"))
	} else {
		if info, err := proc.MemoryInfo(); err != nil {
			errs = append(errs, eris.Wrap(err, "process memory"))
		} else {
			r.Host.RSSBytes = info.RSS
		}
		if pct, err := proc.CPUPercent(); err != nil {
			errs = append(errs, eris.Wrap(err, "process cpu"))
		} else {
			r.Host.ProcessCPU = pct
		}
	}

	if vm, err := mem.VirtualMemory(); err != nil {
		errs = append(errs, eris.Wrap(err, "virtual memory"))
	} else {
		r.Host.MemUsedPercent = vm.UsedPercent
	}

	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}

// JSON writes the report as indented JSON.
func (r *Report) JSON(w io.Writer) error {
	out, err := jsonConf.MarshalIndent(r, "", "  ")
	if err != nil {
		return eris.Wrap(err, "marshal report")
	}
	if _, err := w.Write(append(out, '\n')); err != nil {
		return eris.Wrap(err, "write report")
	}
	return nil
}

const reportTemplate = `
# ECS Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Max Ticks:** {{if .MaxTicks}}{{.MaxTicks}}{{else}}unlimited{{end}}
- **Initial Entities:** {{.Entities}}
- **Systems:** {{.Systems}}
- **World Size:** {{.WorldSize}}

## Performance Results
- **Outcome:** {{.Outcome}}
- **Total Updates:** {{.TotalUpdates}}
- **Total Test Time:** {{.TotalTime}}
- **Update Time (Tick):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}

## Systems
| System | Mode | Runs | Avg | Max |
|--------|------|------|-----|-----|
{{- range .Scheduler.Systems}}
| {{.Name}} | {{.Mode}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MaxDuration}} |
{{- end}}

## World
- **Final Entities:** {{.FinalEntities}} ({{.Census.Moving}} moving, {{.Census.Static}} static)
- **Respawned:** {{.Respawned}}
- **Components:** {{.Storage.TotalComponentCount}} across {{.Storage.KindCount}} kinds
{{- range .Storage.KindBreakdown}}
  - {{.Name}}: {{.EntityCount}}
{{- end}}

## Memory Usage
- Heap Alloc:     {{mb .MemStatsStart.HeapAlloc}} MB (start) -> {{mb .MemStatsEnd.HeapAlloc}} MB (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Sys Memory:     {{.MemStatsStart.Sys}} (start) -> {{.MemStatsEnd.Sys}} (end) -> delta: {{bsub .MemStatsEnd.Sys .MemStatsStart.Sys}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
- Process RSS:    {{mb .Host.RSSBytes}} MB on {{.Host.NumCPU}} CPUs (host memory {{printf "%.1f" .Host.MemUsedPercent}}% used)
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}`

func (r *Report) Generate(w io.Writer) error {
	fm := template.FuncMap{
		"mb": func(v any) string {
			switch val := v.(type) {
			case uint64:
				return fmt.Sprintf("%.2f", float64(val)/1024/1024)
			case int64:
				return fmt.Sprintf("%.2f", float64(val)/1024/1024)
			default:
				return "N/A"
			}
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return eris.Wrap(err, "parse report template")
	}

	if r.Scheduler == nil {
		r.Scheduler = &ecs.SchedulerStats{}
	}
	return eris.Wrap(tmpl.Execute(w, r), "render report")
}
