package core

// CpuMetric summarises how the single CPU spent the simulated time.
type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// MeasureCpu walks a timeline and splits its span into busy and idle time.
func MeasureCpu(timeline []TimelineEntry) CpuMetric {
	var metric CpuMetric
	for _, entry := range timeline {
		if entry.IsIdle() {
			metric.IdleTime += entry.Duration()
		} else {
			metric.UtilizationTime += entry.Duration()
		}
	}
	metric.TotalTime = metric.IdleTime + metric.UtilizationTime
	return metric
}

// Utilization is the busy fraction of the total time.
func (m CpuMetric) Utilization() float64 {
	if m.TotalTime == 0 {
		return 0
	}
	return 1 - float64(m.IdleTime)/float64(m.TotalTime)
}

// Throughput is completed processes per time unit.
func (m CpuMetric) Throughput(processCount int) float64 {
	if m.TotalTime == 0 {
		return 0
	}
	return float64(processCount) / float64(m.TotalTime)
}
