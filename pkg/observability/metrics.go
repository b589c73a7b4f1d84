package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RunsTotal counts orchestrator runs by terminal status, plan source,
	// and execution mode.
	RunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "braid",
		Name:      "agent_runs_total",
		Help:      "Agent analysis runs by status, plan source, and execution mode.",
	}, []string{"status", "plan_source", "execution_mode"})

	// ErrorsTotal counts terminal canonical error codes.
	ErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "braid",
		Name:      "agent_errors_total",
		Help:      "Terminal errors by canonical code.",
	}, []string{"error_code"})

	// NodeStepsTotal counts executed pipeline nodes by type and status.
	NodeStepsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "braid",
		Name:      "pipeline_node_steps_total",
		Help:      "Executed pipeline nodes by type and terminal status.",
	}, []string{"node_type", "status"})

	// AnalysisLatency observes end-to-end run_agent_analysis latency.
	AnalysisLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "braid",
		Name:      "agent_analysis_latency_seconds",
		Help:      "End to end agent analysis latency.",
		Buckets:   prometheus.ExponentialBuckets(0.05, 2, 12),
	})

	// CompensationTotal counts compensation outcomes of failed DAG runs.
	CompensationTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "braid",
		Name:      "pipeline_compensation_total",
		Help:      "Compensation outcomes of failed pipeline runs.",
	}, []string{"status"})

	// RolloutDecisions counts rollout controller decisions per feature.
	RolloutDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "braid",
		Name:      "rollout_decisions_total",
		Help:      "Rollout controller decisions by feature and reason.",
	}, []string{"feature", "reason"})
)
