package stats

import (
	"context"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

const (
	BYTE = 1 << (10 * iota)
	KILOBYTE
	MEGABYTE
	GIGABYTE
	TERABYTE
)

var (
	// ProviderRequestCounter counts outgoing requests to external providers,
	// partitioned by provider and outcome.
	ProviderRequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stakedash_provider_requests_total",
			Help: "Number of requests issued to external providers.",
		},
		[]string{"provider", "outcome"},
	)
)

func init() {
	prometheus.MustRegister(ProviderRequestCounter)
}

// CountRequest records one request against the named provider. outcome is
// either "ok" or "error".
func CountRequest(provider string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	ProviderRequestCounter.WithLabelValues(provider, outcome).Inc()
}

// EnableMemoryStatistics enables go routine that periodically prints memory
// usage of the go process.
func EnableMemoryStatistics(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)

	go func() {
		for {
			select {
			case <-ticker.C:
				PrintMemoryStatistics()
				PrintNumOfRoutines()
			case <-ctx.Done():
				ticker.Stop()
				DumpCounters()
				return
			}
		}
	}()
}

// toGigabytes returns given memory in bytes to gigabytes.
func toGigabytes(bytes uint64) float64 {
	return float64(bytes) / GIGABYTE
}

// PrintMemoryStatistics prints memory statistics using go runtime library.
func PrintMemoryStatistics() {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	log.Infof(
		"Total allocated: %.3fGB, Heap allocated: %.3fGB, "+
			"Allocated objects count: %v, Freed objects count: %v",
		toGigabytes(memStats.TotalAlloc),
		toGigabytes(memStats.HeapAlloc),
		memStats.Mallocs,
		memStats.Frees,
	)
}

// PrintNumOfRoutines prints the current number of goroutines.
func PrintNumOfRoutines() {
	log.Infof("Number of goroutines: %v", runtime.NumGoroutine())
}

// DumpCounters logs the accumulated provider request counters, typically on
// shutdown.
func DumpCounters() {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		log.WithError(err).Warn("failed to gather metrics")
		return
	}
	for _, family := range families {
		if family.GetName() != "stakedash_provider_requests_total" {
			continue
		}
		for _, metric := range family.GetMetric() {
			fields := log.Fields{}
			for _, label := range metric.GetLabel() {
				fields[label.GetName()] = label.GetValue()
			}
			fields["count"] = metric.GetCounter().GetValue()
			log.WithFields(fields).Info("provider requests")
		}
	}
}
