package renderer

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
)

// WorkerStats contains the statistics of one render worker
type WorkerStats struct {
	Worker      int
	Rows        int
	Duration    time.Duration
	PrimaryRays int64 // Rays started at the camera
	Rays        int64 // All rays traced, shadow and bounce rays included
	Checks      int64 // Boxes and primitives tested
}

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Scene    string
	Width    int
	Height   int
	Samples  int
	Threads  int
	Objects  int // Primitive count of the scene
	Elapsed  time.Duration
	Reshaped int // BVH nodes widened after the render
	Workers  []WorkerStats
}

// Totals sums the worker statistics; Duration is the slowest worker
func (s *RenderStats) Totals() WorkerStats {
	var total WorkerStats
	for _, w := range s.Workers {
		total.Rows += w.Rows
		total.PrimaryRays += w.PrimaryRays
		total.Rays += w.Rays
		total.Checks += w.Checks
		total.Duration = max(total.Duration, w.Duration)
	}
	return total
}

// WriteTable writes a per-worker statistics table
func (s *RenderStats) WriteTable(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Rows", "Primary rays", "Rays", "BVH checks", "Checks/ray", "Time"})
	for _, worker := range s.Workers {
		table.Append([]string{
			fmt.Sprintf("%d", worker.Worker),
			fmt.Sprintf("%d", worker.Rows),
			fmt.Sprintf("%d", worker.PrimaryRays),
			fmt.Sprintf("%d", worker.Rays),
			fmt.Sprintf("%d", worker.Checks),
			checksPerRay(worker),
			worker.Duration.Round(time.Microsecond).String(),
		})
	}
	total := s.Totals()
	table.SetFooter([]string{
		"TOTAL",
		fmt.Sprintf("%d", total.Rows),
		fmt.Sprintf("%d", total.PrimaryRays),
		fmt.Sprintf("%d", total.Rays),
		fmt.Sprintf("%d", total.Checks),
		checksPerRay(total),
		s.Elapsed.Round(time.Microsecond).String(),
	})
	table.Render()
}

func checksPerRay(w WorkerStats) string {
	if w.Rays == 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f", float64(w.Checks)/float64(w.Rays))
}

// Report returns a summary line, the host description and the worker table
func (s *RenderStats) Report() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s: %dx%d, %d objects, %d samples, %d threads, %v\n",
		s.Scene, s.Width, s.Height, s.Objects, s.Samples, s.Threads, s.Elapsed)
	if host, err := HostInfo(); err == nil {
		fmt.Fprintf(&buf, "host: %s\n", host)
	}
	s.WriteTable(&buf)
	return buf.String()
}

// HostInfo describes the CPU and memory of the machine
func HostInfo() (string, error) {
	cpuInfo, err := cpu.Info()
	if err != nil {
		return "", err
	}
	if len(cpuInfo) == 0 {
		return "", fmt.Errorf("no CPU information available")
	}
	cores, err := cpu.Counts(true)
	if err != nil {
		cores = len(cpuInfo)
	}

	memInfo, err := mem.VirtualMemory()
	if err != nil {
		return "", err
	}
	totalRAM := float64(memInfo.Total) / (1024 * 1024 * 1024)

	return fmt.Sprintf("%s, %d logical cores, %.1f GB RAM", cpuInfo[0].ModelName, cores, totalRAM), nil
}
