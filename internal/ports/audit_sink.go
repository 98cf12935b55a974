package ports

import (
	"context"

	"hosplanner/internal/domain"
)

// AuditSink records a completed RoutePlan for compliance record-keeping.
// It is an ambient side effect outside the stateless planning core,
// invoked after plan_trip returns; failures are logged, not propagated,
// since a plan that already succeeded must still be returned to the
// caller.
type AuditSink interface {
	RecordPlan(ctx context.Context, plan domain.RoutePlan, ruleSetTag string) error
}
