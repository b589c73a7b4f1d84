// Package rollout decides, per user and feature, whether a feature is
// served, shadowed, or skipped. Bucketing is a deterministic hash of
// (user_id, feature) so a user's decision never flips between calls.
package rollout

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"

	"github.com/braid-labs/braid/pkg/config"
)

// Decision is the outcome of one rollout evaluation.
type Decision struct {
	Serve  bool
	Shadow bool
	Reason string
}

// Controller evaluates rollout features against their configured settings.
type Controller struct {
	features *config.FeatureRegistry
}

// NewController creates a controller over the configured feature registry.
func NewController(features *config.FeatureRegistry) *Controller {
	return &Controller{features: features}
}

// Bucket maps a user deterministically into 0..99 for a feature: the low
// 16 bits of SHA-256(user_id + feature) modulo 100.
func Bucket(userID, feature string) int {
	sum := sha256.Sum256([]byte(userID + feature))
	low := binary.BigEndian.Uint16(sum[len(sum)-2:])
	return int(low % 100)
}

// Evaluate decides a feature for a user. Unknown features are treated as
// disabled.
func (c *Controller) Evaluate(userID, feature string) Decision {
	settings, err := c.features.Get(feature)
	if err != nil {
		return Decision{Reason: "disabled"}
	}
	return Decide(userID, feature, settings)
}

// Decide applies the rollout rules to explicit settings:
//
//	disabled                        → skip
//	allowlisted user                → serve
//	allowlist set, user excluded    → shadow when shadow_mode, else skip
//	bucket < traffic_percent        → serve
//	outside bucket                  → shadow when shadow_mode, else miss
//	percent 0 without legacy path   → force-serve (nothing else can run)
func Decide(userID, feature string, settings *config.FeatureSettings) Decision {
	if settings == nil || !settings.Enabled {
		return Decision{Reason: "disabled"}
	}

	if len(settings.Allowlist) > 0 {
		for _, allowed := range settings.Allowlist {
			if allowed == userID {
				return Decision{Serve: true, Reason: "allowlist"}
			}
		}
		if settings.ShadowMode {
			return Decision{Shadow: true, Reason: "allowlist_excluded_shadow"}
		}
		return Decision{Reason: "allowlist_excluded"}
	}

	percent := settings.TrafficPercent
	if percent <= 0 && !settings.LegacyFallbackEnabled {
		return Decision{Serve: true, Reason: "forced_no_legacy_rollout_0_miss"}
	}

	if Bucket(userID, feature) < percent {
		return Decision{Serve: true, Reason: fmt.Sprintf("rollout_%d", percent)}
	}
	if settings.ShadowMode {
		return Decision{Shadow: true, Reason: fmt.Sprintf("rollout_%d_shadow", percent)}
	}
	return Decision{Reason: fmt.Sprintf("rollout_%d_miss", percent)}
}
