package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Record(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := MustNewMetrics(reg)

	m.ObserveRPC("CompleteChallenge", "OK", 10*time.Millisecond)
	m.ObserveRPC("CompleteChallenge", "OK", 20*time.Millisecond)
	m.XP(40, true)
	m.XP(0, true)
	m.AchievementUnlocked("first_challenge")
	m.ChallengeCompleted("breathing")
	m.TextGenerated("journal_prompt", "fallback")
	m.DailyRefreshed()

	require.Equal(t, 2.0, counterSum(t, reg, "mindmates_rpc_requests_total"))
	require.Equal(t, 40.0, counterSum(t, reg, "mindmates_xp_awarded_total"))
	require.Equal(t, 1.0, counterSum(t, reg, "mindmates_level_ups_total"))
	require.Equal(t, 1.0, counterSum(t, reg, "mindmates_achievements_unlocked_total"))
	require.Equal(t, 1.0, counterSum(t, reg, "mindmates_text_generation_total"))
	require.Equal(t, 1.0, counterSum(t, reg, "mindmates_daily_challenge_refreshes_total"))
}

func counterSum(t *testing.T, reg *prometheus.Registry, name string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, f := range families {
		if f.GetName() != name {
			continue
		}
		var sum float64
		for _, m := range f.GetMetric() {
			sum += m.GetCounter().GetValue()
		}
		return sum
	}
	t.Fatalf("metric %s not gathered", name)
	return 0
}

func TestMetrics_NilSafe(t *testing.T) {
	t.Parallel()

	var m *Metrics
	m.ObserveRPC("x", "OK", time.Second)
	m.XP(10, true)
	m.AchievementUnlocked("a")
	m.ChallengeCompleted("b")
	m.TextGenerated("c", "d")
	m.DailyRefreshed()
}

func TestMetrics_RegisterTwice(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	MustNewMetrics(reg)
	_, err := NewMetrics(reg)
	require.NoError(t, err)
}
