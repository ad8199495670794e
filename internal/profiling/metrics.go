package profiling

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "voxcast"

var (
	phaseSeconds = prometheus.NewSummaryVec(prometheus.SummaryOpts{
		Namespace:  namespace,
		Name:       "phase_seconds",
		Help:       "Duration of tracked phases.",
		Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
	}, []string{"phase"})

	ticksTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ticks_total",
		Help:      "Simulation ticks executed.",
	})

	raysTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rays_marched_total",
		Help:      "Rays marched by rendering and editing.",
	})

	editsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "edits_total",
		Help:      "Block edits by operation and outcome.",
	}, []string{"op", "result"})

	savesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "saves_total",
		Help:      "Map save requests by outcome.",
	}, []string{"result"})

	commandsDropped = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "commands_dropped_total",
		Help:      "Input commands dropped because the queue was full.",
	})
)

// Save outcomes.
const (
	SaveOK      = "ok"
	SaveSkipped = "skipped"
	SaveFailed  = "failed"
)

// Register adds all collectors to reg. Registering twice is not an error.
func Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{phaseSeconds, ticksTotal, raysTotal, editsTotal, savesTotal, commandsDropped} {
		if err := reg.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if !errors.As(err, &are) {
				return err
			}
		}
	}
	return nil
}

func CountRay() {
	raysTotal.Inc()
	frameRays.Add(1)
}

func CountTick() {
	ticksTotal.Inc()
}

func CountEdit(op string, ok bool) {
	result := "miss"
	if ok {
		result = "hit"
	}
	editsTotal.WithLabelValues(op, result).Inc()
}

func CountSave(result string) {
	savesTotal.WithLabelValues(result).Inc()
}

func CountDroppedCommand() {
	commandsDropped.Inc()
}
