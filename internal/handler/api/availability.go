package api

import (
	"net/http"

	reqdto "clinic-booking/internal/handler/dto/request"
	"clinic-booking/internal/handler/httperr"
	"clinic-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	q queries.AvailabilityQueries
}

func NewAvailabilityHandler(q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{q: q}
}

// Dates lists the dates the picker may offer, today through the horizon.
func (h *AvailabilityHandler) Dates(c *gin.Context) {
	c.JSON(http.StatusOK, h.q.SelectableDates(c.Request.Context()))
}

// ForDate returns the occupied set and the per-slot view of one date. A
// failed store read is a 503: no slot is offered rather than all of them.
func (h *AvailabilityHandler) ForDate(c *gin.Context) {
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

	view, err := h.q.ForDate(c.Request.Context(), d)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
