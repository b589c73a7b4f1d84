package rollout

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/braid-labs/braid/pkg/config"
)

func TestBucket(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, Bucket("u1", "skill_v2"), Bucket("u1", "skill_v2"))
	})

	t.Run("in range", func(t *testing.T) {
		for i := 0; i < 500; i++ {
			b := Bucket(fmt.Sprintf("user-%d", i), "skill_v2")
			assert.GreaterOrEqual(t, b, 0)
			assert.Less(t, b, 100)
		}
	})

	t.Run("feature name changes the bucket distribution", func(t *testing.T) {
		same := 0
		for i := 0; i < 200; i++ {
			user := fmt.Sprintf("user-%d", i)
			if Bucket(user, "skill_v2") == Bucket(user, "atomic_overhaul") {
				same++
			}
		}
		assert.Less(t, same, 50, "buckets should not be correlated across features")
	})
}

func TestDecide(t *testing.T) {
	tests := []struct {
		name     string
		userID   string
		settings *config.FeatureSettings
		want     Decision
	}{
		{
			name:     "disabled",
			userID:   "u1",
			settings: &config.FeatureSettings{Enabled: false, TrafficPercent: 100},
			want:     Decision{Reason: "disabled"},
		},
		{
			name:   "allowlisted user served",
			userID: "u1",
			settings: &config.FeatureSettings{
				Enabled:   true,
				Allowlist: []string{"u1", "u2"},
			},
			want: Decision{Serve: true, Reason: "allowlist"},
		},
		{
			name:   "excluded user shadowed when shadow mode",
			userID: "u3",
			settings: &config.FeatureSettings{
				Enabled:    true,
				ShadowMode: true,
				Allowlist:  []string{"u1"},
			},
			want: Decision{Shadow: true, Reason: "allowlist_excluded_shadow"},
		},
		{
			name:   "excluded user skipped without shadow mode",
			userID: "u3",
			settings: &config.FeatureSettings{
				Enabled:   true,
				Allowlist: []string{"u1"},
			},
			want: Decision{Reason: "allowlist_excluded"},
		},
		{
			name:   "full traffic serves everyone",
			userID: "anyone",
			settings: &config.FeatureSettings{
				Enabled:               true,
				TrafficPercent:        100,
				LegacyFallbackEnabled: true,
			},
			want: Decision{Serve: true, Reason: "rollout_100"},
		},
		{
			name:   "zero percent without legacy fallback force-serves",
			userID: "u1",
			settings: &config.FeatureSettings{
				Enabled:               true,
				TrafficPercent:        0,
				LegacyFallbackEnabled: false,
			},
			want: Decision{Serve: true, Reason: "forced_no_legacy_rollout_0_miss"},
		},
		{
			name:   "zero percent with legacy fallback shadows",
			userID: "u1",
			settings: &config.FeatureSettings{
				Enabled:               true,
				ShadowMode:            true,
				TrafficPercent:        0,
				LegacyFallbackEnabled: true,
			},
			want: Decision{Shadow: true, Reason: "rollout_0_shadow"},
		},
		{
			name:   "zero percent plain miss",
			userID: "u1",
			settings: &config.FeatureSettings{
				Enabled:               true,
				TrafficPercent:        0,
				LegacyFallbackEnabled: true,
			},
			want: Decision{Reason: "rollout_0_miss"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.userID, "skill_v2", tt.settings))
		})
	}
}

func TestDecidePartialTraffic(t *testing.T) {
	settings := &config.FeatureSettings{
		Enabled:               true,
		ShadowMode:            true,
		TrafficPercent:        30,
		LegacyFallbackEnabled: true,
	}

	served, shadowed := 0, 0
	for i := 0; i < 1000; i++ {
		d := Decide(fmt.Sprintf("user-%d", i), "skill_v2", settings)
		if d.Serve {
			served++
		}
		if d.Shadow {
			shadowed++
		}
		// A user is never both served and shadowed
		assert.False(t, d.Serve && d.Shadow)
	}

	// Deterministic hashing should land near the configured percentage
	assert.InDelta(t, 300, served, 75)
	assert.Equal(t, 1000, served+shadowed)
}

func TestEvaluateUnknownFeature(t *testing.T) {
	controller := NewController(config.NewFeatureRegistry(nil))
	assert.Equal(t, Decision{Reason: "disabled"}, controller.Evaluate("u1", "nope"))
}
