package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthzCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewAuthzCollector(reg)

	c.RecordDecision("org_dso_access", 403)
	c.RecordDecision("org_dso_access", 403)
	c.RecordDecision("org_dso_access", 200)
	c.RecordFallback("query")
	c.RecordInvariantRejection("last_owner")
	c.RecordInvite("org", "accepted")

	assert.Equal(t, 2.0, testutil.ToFloat64(c.decisions.WithLabelValues("org_dso_access", "403")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.decisions.WithLabelValues("org_dso_access", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.fallbacks.WithLabelValues("query")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.invariants.WithLabelValues("last_owner")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.invites.WithLabelValues("org", "accepted")))

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, families, 4)
}

func TestAuthzCollector_NilSafe(t *testing.T) {
	var c *AuthzCollector
	assert.NotPanics(t, func() {
		c.RecordDecision("auth", 401)
		c.RecordFallback("body")
		c.RecordInvariantRejection("last_admin")
		c.RecordInvite("team", "skipped")
	})
}

func TestNewAuthzCollector_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewAuthzCollector(reg)
	assert.Panics(t, func() { NewAuthzCollector(reg) })
}
