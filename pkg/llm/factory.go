package llm

import (
	"fmt"
	"log/slog"

	"github.com/braid-labs/braid/pkg/config"
)

// Clients bundles the planner and autofill LLM clients built from the
// configured provider selection.
type Clients struct {
	Planner  *Client
	Autofill *Client
}

// BuildClients constructs providers from the registry per the configured
// selection. A missing fallback provider key (or one whose API key env is
// unset) degrades to no fallback with a warning instead of failing.
func BuildClients(cfg *config.Config) (*Clients, error) {
	sel := cfg.LLMSelection()
	if sel.PlannerProvider == "" {
		return nil, fmt.Errorf("llm: no planner provider selected")
	}

	planner, err := buildProvider(cfg, sel.PlannerProvider)
	if err != nil {
		return nil, err
	}

	var fallback Provider
	if sel.FallbackProvider != "" && sel.FallbackProvider != sel.PlannerProvider {
		fallback, err = buildProvider(cfg, sel.FallbackProvider)
		if err != nil {
			slog.Warn("LLM fallback provider unavailable, continuing without fallback",
				"provider", sel.FallbackProvider, "error", err)
			fallback = nil
		}
	}

	autofill := planner
	if sel.AutofillProvider != "" && sel.AutofillProvider != sel.PlannerProvider {
		autofill, err = buildProvider(cfg, sel.AutofillProvider)
		if err != nil {
			slog.Warn("LLM autofill provider unavailable, reusing planner provider",
				"provider", sel.AutofillProvider, "error", err)
			autofill = planner
		}
	}

	return &Clients{
		Planner:  NewClient(planner, fallback),
		Autofill: NewClient(autofill, fallback),
	}, nil
}

func buildProvider(cfg *config.Config, name string) (Provider, error) {
	providerCfg, err := cfg.LLMProviderRegistry.Get(name)
	if err != nil {
		return nil, err
	}
	return NewProvider(name, providerCfg)
}
