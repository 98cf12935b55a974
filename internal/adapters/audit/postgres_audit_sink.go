// Package audit implements the ambient trip-plan audit log described in
// SPEC_FULL.md §3: a Postgres-backed record of each completed RoutePlan,
// written after plan_trip returns. Grounded on the teacher's
// internal/platform/db.Open (pgx pool) and its cmd/dbtool schema-init
// pattern.
package audit

import (
	"context"
	"database/sql"
	"fmt"

	"hosplanner/internal/domain"
)

// PostgresAuditSink implements ports.AuditSink.
type PostgresAuditSink struct {
	DB *sql.DB
}

func NewPostgresAuditSink(db *sql.DB) *PostgresAuditSink {
	return &PostgresAuditSink{DB: db}
}

// InitSchema creates the audit table if it does not already exist.
func InitSchema(db *sql.DB) error {
	_, err := db.Exec(`
	CREATE TABLE IF NOT EXISTS trip_plan_audit (
		id                  BIGSERIAL PRIMARY KEY,
		rule_set            TEXT NOT NULL,
		start_time          TIMESTAMPTZ NOT NULL,
		end_time            TIMESTAMPTZ NOT NULL,
		segment_count       INTEGER NOT NULL,
		total_distance_mi   DOUBLE PRECISION NOT NULL,
		total_duration_hr   DOUBLE PRECISION NOT NULL,
		recorded_at         TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`)
	if err != nil {
		return fmt.Errorf("audit: init schema: %w", err)
	}
	return nil
}

func (a *PostgresAuditSink) RecordPlan(ctx context.Context, plan domain.RoutePlan, ruleSetTag string) error {
	if a.DB == nil {
		return fmt.Errorf("audit: db is nil")
	}

	_, err := a.DB.ExecContext(ctx, `
	INSERT INTO trip_plan_audit (rule_set, start_time, end_time, segment_count, total_distance_mi, total_duration_hr)
	VALUES ($1, $2, $3, $4, $5, $6);
	`,
		ruleSetTag, plan.StartTime, plan.EndTime, len(plan.Segments), plan.TotalDistanceMiles, plan.TotalDurationHours,
	)
	if err != nil {
		return fmt.Errorf("audit: record plan: %w", err)
	}

	return nil
}
