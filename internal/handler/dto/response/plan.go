package response

import (
	"clinic-booking/internal/usecase/commands"
	"clinic-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type PlanListResponse struct {
	Items []*queries.PlanView `json:"items"`
	Count int                 `json:"count"`
}

func FromPlanViews(views []*queries.PlanView) *PlanListResponse {
	if views == nil {
		views = []*queries.PlanView{}
	}
	return &PlanListResponse{Items: views, Count: len(views)}
}

type PlanProgressResponse struct {
	ID                uuid.UUID `json:"id"`
	CompletedSessions int       `json:"completed_sessions"`
	TotalSessions     int       `json:"total_sessions"`
	RemainingSessions int       `json:"remaining_sessions"`
	Status            string    `json:"status"`
}

func FromPlanProgress(r *commands.PlanProgressResult) *PlanProgressResponse {
	return &PlanProgressResponse{
		ID:                r.PlanID,
		CompletedSessions: r.CompletedSessions,
		TotalSessions:     r.TotalSessions,
		RemainingSessions: r.TotalSessions - r.CompletedSessions,
		Status:            r.Status.String(),
	}
}
