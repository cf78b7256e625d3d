package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "valrank"

// Metrics groups the bot's Prometheus collectors. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	Registry *prometheus.Registry

	rankFetches       *prometheus.CounterVec
	rankFetchDuration prometheus.Histogram
	rolesCreated      prometheus.Counter
	roleChanges       *prometheus.CounterVec
	commands          *prometheus.CounterVec
}

// New creates the collectors and registers them on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		Registry: reg,
		rankFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rank_fetch_total",
			Help:      "Rank lookups against the ranking service, by outcome.",
		}, []string{"outcome"}),
		rankFetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rank_fetch_duration_seconds",
			Help:      "Time spent fetching a rank, including retries.",
			Buckets:   prometheus.DefBuckets,
		}),
		rolesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "roles_created_total",
			Help:      "Rank roles created in a guild's role directory.",
		}),
		roleChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "role_changes_total",
			Help:      "Role memberships added or removed.",
		}, []string{"op"}),
		commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commands_total",
			Help:      "Slash commands handled, by command and outcome.",
		}, []string{"command", "outcome"}),
	}

	reg.MustRegister(
		m.rankFetches,
		m.rankFetchDuration,
		m.rolesCreated,
		m.roleChanges,
		m.commands,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

func (m *Metrics) RankFetched(outcome string, took time.Duration) {
	if m == nil {
		return
	}
	m.rankFetches.WithLabelValues(outcome).Inc()
	m.rankFetchDuration.Observe(took.Seconds())
}

func (m *Metrics) RoleCreated() {
	if m == nil {
		return
	}
	m.rolesCreated.Inc()
}

func (m *Metrics) RolesChanged(op string, n int) {
	if m == nil || n == 0 {
		return
	}
	m.roleChanges.WithLabelValues(op).Add(float64(n))
}

func (m *Metrics) CommandHandled(command, outcome string) {
	if m == nil {
		return
	}
	m.commands.WithLabelValues(command, outcome).Inc()
}
