package api

import (
	"net/http"

	reqdto "clinic-booking/internal/handler/dto/request"
	resdto "clinic-booking/internal/handler/dto/response"
	"clinic-booking/internal/handler/httperr"
	"clinic-booking/internal/usecase/commands"
	"clinic-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the staff routes. The router puts them behind
// RequireRoleAtLeast(partner); the commands check the role again.
type AdminHandler struct {
	cmds commands.AppointmentCommands
	q    queries.AppointmentQueries
}

func NewAdminHandler(cmds commands.AppointmentCommands, q queries.AppointmentQueries) *AdminHandler {
	return &AdminHandler{cmds: cmds, q: q}
}

// DayView lists every appointment of a date with the client's contact.
// Unlike the picker it accepts any valid date, past ones included.
func (h *AdminHandler) DayView(c *gin.Context) {
	var query reqdto.DateQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	d, err := query.ToDate()
	if err != nil {
		abortInvalidRequest(c, err)
		return
	}

	views, err := h.q.ListByDate(c.Request.Context(), d)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDayViews(d.String(), views))
}

func (h *AdminHandler) Confirm(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := idParamOrAbort(c)
	if !ok {
		return
	}

	result, err := h.cmds.Confirm(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStatusChange(result))
}

func (h *AdminHandler) Cancel(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := idParamOrAbort(c)
	if !ok {
		return
	}

	result, err := h.cmds.Cancel(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStatusChange(result))
}

func (h *AdminHandler) CompletePlanSession(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := idParamOrAbort(c)
	if !ok {
		return
	}

	result, err := h.cmds.CompletePlanSession(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPlanProgress(result))
}
