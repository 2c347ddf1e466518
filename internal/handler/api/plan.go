package api

import (
	"net/http"

	resdto "clinic-booking/internal/handler/dto/response"
	"clinic-booking/internal/handler/httperr"
	"clinic-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PlanHandler struct {
	q queries.PlanQueries
}

func NewPlanHandler(q queries.PlanQueries) *PlanHandler {
	return &PlanHandler{q: q}
}

func (h *PlanHandler) ListMine(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	views, err := h.q.ListByClient(c.Request.Context(), actor.UserID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPlanViews(views))
}
