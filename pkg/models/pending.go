package models

import "time"

// PendingAction is per-user slot-collection state carried across
// conversational turns. One pending action per user; replaced on set,
// deleted on completion, cancellation, or TTL expiry.
type PendingAction struct {
	UserID         string         `json:"user_id"`
	Intent         string         `json:"intent"`
	Action         string         `json:"action"`
	TaskID         string         `json:"task_id,omitempty"`
	Plan           *AgentPlan     `json:"plan,omitempty"`
	PlanSource     PlanSource     `json:"plan_source,omitempty"`
	CollectedSlots map[string]any `json:"collected_slots,omitempty"`
	MissingSlots   []string       `json:"missing_slots,omitempty"`
	ExpiresAt      time.Time      `json:"expires_at"`
}

// Expired reports whether the action's TTL has elapsed.
func (p *PendingAction) Expired(now time.Time) bool {
	return !p.ExpiresAt.After(now)
}

// Clone returns a deep-enough copy: slot maps and slices are copied so a
// caller can mutate its view without racing the store.
func (p *PendingAction) Clone() *PendingAction {
	if p == nil {
		return nil
	}
	out := *p
	if p.CollectedSlots != nil {
		out.CollectedSlots = make(map[string]any, len(p.CollectedSlots))
		for k, v := range p.CollectedSlots {
			out.CollectedSlots[k] = v
		}
	}
	out.MissingSlots = append([]string(nil), p.MissingSlots...)
	return &out
}
