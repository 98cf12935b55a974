package api

import (
	"net/http"

	"hosplanner/internal/api/handlers"
	"hosplanner/internal/hosrules"
	"hosplanner/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root (handlers stay unaware
// of concrete adapters).
func NewRouter(oracle ports.RoutingOracle, audit ports.AuditSink, ruleSet hosrules.RuleSet, ruleSetTag string) http.Handler {
	mux := http.NewServeMux()

	planHandler := &handlers.PlanHandler{
		Oracle:     oracle,
		Audit:      audit,
		RuleSet:    ruleSet,
		RuleSetTag: ruleSetTag,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/plan", planHandler.Plan)

	return loggingMiddleware(mux)
}
