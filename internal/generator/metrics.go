package generator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// generations counts finished generation calls by sampling method.
var generations = promauto.NewCounterVec( //nolint:gochecknoglobals
	prometheus.CounterOpts{
		Name: "passforge_generations_total",
		Help: "Number of generated passwords, differentiated by sampling method.",
	},
	[]string{"method"},
)
