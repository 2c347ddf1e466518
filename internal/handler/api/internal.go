package api

import (
	"net/http"

	resdto "clinic-booking/internal/handler/dto/response"
	"clinic-booking/internal/handler/httperr"
	"clinic-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// InternalHandler exposes the periodic jobs to an external scheduler.
type InternalHandler struct {
	reminders commands.ReminderCommands
	reaper    commands.ReaperCommands
}

func NewInternalHandler(reminders commands.ReminderCommands, reaper commands.ReaperCommands) *InternalHandler {
	return &InternalHandler{reminders: reminders, reaper: reaper}
}

// DispatchReminders runs one dispatch pass. A skipped pass (notifications
// disabled or unconfigured) is still a 200 with status "skipped".
func (h *InternalHandler) DispatchReminders(c *gin.Context) {
	result, err := h.reminders.Dispatch(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDispatchResult(result))
}

func (h *InternalHandler) ReapReservations(c *gin.Context) {
	result, err := h.reaper.Reap(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReapResult(result))
}
