// Package policy computes the per-user runtime API profile: which
// registered tools are enabled for a run, and why the rest are blocked.
package policy

import (
	"sort"
	"strings"

	"github.com/braid-labs/braid/pkg/config"
	"github.com/braid-labs/braid/pkg/registry"
)

// Block reasons. Tools of unconnected services are dropped from the
// profile entirely rather than reported as blocked.
const (
	ReasonTenantBlocked = "tenant_policy_blocked"
	ReasonMissingScope  = "missing_required_scope"
	ReasonRiskBlocked   = "risk_policy_blocked"
)

// BlockedAPI names one blocked tool and the first reason that blocked it.
type BlockedAPI struct {
	APIID  string `json:"api_id"`
	Reason string `json:"reason"`
}

// Profile is the computed enabled/blocked view of the registry for one user.
type Profile struct {
	EnabledAPIIDs []string     `json:"enabled_api_ids"`
	BlockedAPIIDs []string     `json:"blocked_api_ids"`
	BlockedReason []BlockedAPI `json:"blocked_reason"`
}

// Enabled reports whether a tool survived every gate.
func (p *Profile) Enabled(toolName string) bool {
	for _, id := range p.EnabledAPIIDs {
		if id == toolName {
			return true
		}
	}
	return false
}

// scopeAliases maps provider-specific OAuth scope URLs to the canonical
// scope names tool specs declare.
var scopeAliases = map[string]string{
	"https://www.googleapis.com/auth/calendar.readonly": "calendar.read",
	"https://www.googleapis.com/auth/calendar":          "calendar.write",
	"https://www.googleapis.com/auth/calendar.events":   "calendar.events",
	"playlist-modify-private":                           "playlist.write",
	"playlist-modify-public":                            "playlist.write",
}

// Compute walks every registered tool and applies, in order: connectivity,
// tenant blocklist, scope coverage, and the risk gate. The first failing
// gate records the block reason.
func Compute(reg *registry.Registry, connectedServices []string, grantedScopes map[string][]string, policy *config.PolicyConfig) (*Profile, error) {
	tools, err := reg.ListTools("")
	if err != nil {
		return nil, err
	}

	connected := make(map[string]bool, len(connectedServices))
	for _, svc := range connectedServices {
		connected[strings.ToLower(svc)] = true
	}

	blockedTools := make(map[string]bool)
	allowHighRisk := false
	if policy != nil {
		for _, name := range policy.Tenant.BlockedTools {
			blockedTools[name] = true
		}
		allowHighRisk = policy.Risk.AllowHighRisk
	}

	profile := &Profile{}
	for _, tool := range tools {
		if !connected[tool.Service] {
			// Not connected tools are invisible, not "blocked": the
			// profile only reports decisions about reachable tools.
			continue
		}

		switch {
		case blockedTools[tool.ToolName]:
			block(profile, tool.ToolName, ReasonTenantBlocked)
		case !scopesCovered(tool.RequiredScopes, grantedScopes[tool.Service]):
			block(profile, tool.ToolName, ReasonMissingScope)
		case tool.IsHighRisk() && !allowHighRisk:
			block(profile, tool.ToolName, ReasonRiskBlocked)
		default:
			profile.EnabledAPIIDs = append(profile.EnabledAPIIDs, tool.ToolName)
		}
	}

	sort.Strings(profile.EnabledAPIIDs)
	sort.Strings(profile.BlockedAPIIDs)
	sort.Slice(profile.BlockedReason, func(i, j int) bool {
		return profile.BlockedReason[i].APIID < profile.BlockedReason[j].APIID
	})
	return profile, nil
}

func block(p *Profile, apiID, reason string) {
	p.BlockedAPIIDs = append(p.BlockedAPIIDs, apiID)
	p.BlockedReason = append(p.BlockedReason, BlockedAPI{APIID: apiID, Reason: reason})
}

// scopesCovered checks required ⊆ granted after canonicalising granted
// scopes through the provider alias table.
func scopesCovered(required, granted []string) bool {
	if len(required) == 0 {
		return true
	}
	have := make(map[string]bool, len(granted))
	for _, scope := range granted {
		have[scope] = true
		if canonical, ok := scopeAliases[scope]; ok {
			have[canonical] = true
		}
	}
	for _, scope := range required {
		if !have[scope] {
			return false
		}
	}
	return true
}
