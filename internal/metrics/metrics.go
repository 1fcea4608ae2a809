package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	claimsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "farosat_claims_total",
			Help: "Total number of daily claim attempts by outcome",
		},
		[]string{"outcome"},
	)
	adjustmentsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "farosat_adjustments_total",
			Help: "Total number of admin score adjustments",
		},
	)
	commandsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "farosat_bot_commands_total",
			Help: "Total number of bot commands handled",
		},
		[]string{"command"},
	)
)

// Register registers the bot's metrics. Call once from main.
func Register() {
	prometheus.MustRegister(claimsTotal)
	prometheus.MustRegister(adjustmentsTotal)
	prometheus.MustRegister(commandsTotal)
}

// Claim outcome labels
const (
	OutcomeAccepted       = "accepted"
	OutcomeAlreadyClaimed = "already_claimed"
	OutcomeError          = "error"
)

// ObserveClaim records one claim attempt
func ObserveClaim(outcome string) {
	claimsTotal.WithLabelValues(outcome).Inc()
}

// ObserveAdjustment records one admin adjustment
func ObserveAdjustment() {
	adjustmentsTotal.Inc()
}

// ObserveCommand records one handled bot command
func ObserveCommand(command string) {
	commandsTotal.WithLabelValues(command).Inc()
}
