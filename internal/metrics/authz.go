// Package metrics holds the Prometheus collectors for authorization decisions,
// invariant rejections and invite reconciliation. Collectors are registered on a
// caller-supplied registry so tests and the server each get their own.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// AuthzCollector counts guard outcomes and tenancy invariant rejections
type AuthzCollector struct {
	decisions  *prometheus.CounterVec
	fallbacks  *prometheus.CounterVec
	invariants *prometheus.CounterVec
	invites    *prometheus.CounterVec
}

// NewAuthzCollector creates the collectors and registers them on reg
func NewAuthzCollector(reg prometheus.Registerer) *AuthzCollector {
	c := &AuthzCollector{
		decisions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "crm_authz_decisions_total",
				Help: "Total number of guard decisions by guard and HTTP status",
			},
			[]string{"guard", "status"},
		),
		fallbacks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "crm_identity_fallback_total",
				Help: "Total number of identities resolved from a caller-supplied user id",
			},
			[]string{"source"},
		),
		invariants: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "crm_invariant_rejections_total",
				Help: "Total number of mutations rejected to keep a tenancy invariant",
			},
			[]string{"invariant"},
		),
		invites: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "crm_invites_reconciled_total",
				Help: "Total number of invites processed at sign-in by kind and outcome",
			},
			[]string{"kind", "outcome"},
		),
	}
	reg.MustRegister(c.decisions, c.fallbacks, c.invariants, c.invites)
	return c
}

// RecordDecision counts a guard outcome; status is 200 for allowed requests
func (c *AuthzCollector) RecordDecision(guard string, status int) {
	if c == nil {
		return
	}
	c.decisions.WithLabelValues(guard, strconv.Itoa(status)).Inc()
}

// RecordFallback counts an identity taken from the query string or body
func (c *AuthzCollector) RecordFallback(source string) {
	if c == nil {
		return
	}
	c.fallbacks.WithLabelValues(source).Inc()
}

// RecordInvariantRejection counts a mutation refused by a guard such as last_owner
func (c *AuthzCollector) RecordInvariantRejection(invariant string) {
	if c == nil {
		return
	}
	c.invariants.WithLabelValues(invariant).Inc()
}

// RecordInvite counts one reconciled invite
func (c *AuthzCollector) RecordInvite(kind, outcome string) {
	if c == nil {
		return
	}
	c.invites.WithLabelValues(kind, outcome).Inc()
}
