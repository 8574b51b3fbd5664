// Package metrics registers the service's Prometheus collectors.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Recomputes counts full recomputations of each derived table. Every
	// selection change recomputes from scratch, so this doubles as a rough
	// request counter per chart.
	Recomputes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "league_recomputes_total",
		Help: "Full recomputations of a derived table, labeled by table.",
	}, []string{"table"})

	// SkippedPairings counts matchup groups that could not be resolved into
	// a head-to-head pairing (wrong row count or an unselected side).
	// Skipping is expected behavior; the counter exists for diagnostics.
	SkippedPairings = promauto.NewCounter(prometheus.CounterOpts{
		Name: "league_skipped_pairings_total",
		Help: "Matchup groups excluded from head-to-head computations.",
	})

	// DatasetRows tracks the row count of each loaded source table.
	DatasetRows = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "league_dataset_rows",
		Help: "Rows currently loaded per source table.",
	}, []string{"source"})
)

// Handler exposes the default registry for the /metrics route.
func Handler() http.Handler {
	return promhttp.Handler()
}
