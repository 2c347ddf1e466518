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

type AppointmentHandler struct {
	booking commands.BookingCommands
	cmds    commands.AppointmentCommands
	q       queries.AppointmentQueries
}

func NewAppointmentHandler(
	booking commands.BookingCommands,
	cmds commands.AppointmentCommands,
	q queries.AppointmentQueries,
) *AppointmentHandler {
	return &AppointmentHandler{booking: booking, cmds: cmds, q: q}
}

// Book reserves a slot for the caller. The client id always comes from the
// token, never from the body.
func (h *AppointmentHandler) Book(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	var req reqdto.BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		abortInvalidRequest(c, err)
		return
	}

	result, err := h.booking.Book(c.Request.Context(), actor.UserID, in)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.Header("Location", "/api/appointments/"+result.AppointmentID.String())
	c.JSON(http.StatusCreated, resdto.FromBookingResult(result))
}

func (h *AppointmentHandler) ListMine(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	var query reqdto.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortInvalidRequest(c, err)
		return
	}

	views, err := h.q.ListByClient(c.Request.Context(), actor.UserID, query.Limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointmentViews(views))
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
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
