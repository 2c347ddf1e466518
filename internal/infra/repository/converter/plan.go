package converter

import (
	"clinic-booking/internal/domain/plan"
	sqlc "clinic-booking/internal/infra/sqlc/generated"
	"clinic-booking/internal/pkg/pgconv"
)

func PlanFromRow(row sqlc.SessionPlans) (*plan.SessionPlan, error) {
	return plan.ReconstructSessionPlan(
		row.ID,
		row.ClientID,
		row.ServiceID,
		row.ServiceTitle,
		row.Name,
		int(row.TotalSessions),
		int(row.CompletedSessions),
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}

func PlanToProgressParams(p *plan.SessionPlan) sqlc.UpdateSessionPlanProgressParams {
	return sqlc.UpdateSessionPlanProgressParams{
		ID:                p.ID(),
		CompletedSessions: int32(p.CompletedSessions()), // #nosec G115 -- bounded by total_sessions
		Status:            p.Status().String(),
	}
}
