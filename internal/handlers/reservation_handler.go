package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/novareservas/reservation-api/internal/audit"
	"github.com/novareservas/reservation-api/internal/httperr"
	"github.com/novareservas/reservation-api/internal/middleware"
	"github.com/novareservas/reservation-api/internal/repository"
)

type ReservationHandler struct {
	reservations *repository.ReservationRepository
	audit        *audit.Dispatcher
}

func NewReservationHandler(
	reservations *repository.ReservationRepository,
	audit *audit.Dispatcher,
) *ReservationHandler {
	return &ReservationHandler{
		reservations: reservations,
		audit:        audit,
	}
}

// --------- Requests ---------

// Date and status are stored as caller-supplied text, so the binding
// only insists on the two references.
type ReservationRequest struct {
	ClientID  uint   `json:"client_id" binding:"required"`
	ServiceID uint   `json:"service_id" binding:"required"`
	Date      string `json:"date"`
	Status    string `json:"status"`
}

// --------- Handlers ---------

func (h *ReservationHandler) Create(c *gin.Context) {
	var req ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.Validation("invalid request: %s", err.Error()))
		return
	}

	id, err := h.reservations.Create(
		c.Request.Context(),
		req.ClientID,
		req.ServiceID,
		req.Date,
		req.Status,
	)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	h.dispatch(c, "reservation_created", id)

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *ReservationHandler) List(c *gin.Context) {
	rows, err := h.reservations.ListAll(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reservations": rows})
}

func (h *ReservationHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	var req ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.Validation("invalid request: %s", err.Error()))
		return
	}

	affected, err := h.reservations.Update(
		c.Request.Context(),
		id,
		req.ClientID,
		req.ServiceID,
		req.Date,
		req.Status,
	)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	if affected == 0 {
		httperr.Respond(c, httperr.ErrNotFound)
		return
	}

	h.dispatch(c, "reservation_updated", id)

	c.JSON(http.StatusOK, gin.H{"message": "Reservation updated successfully"})
}

func (h *ReservationHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	affected, err := h.reservations.Delete(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	if affected == 0 {
		httperr.Respond(c, httperr.ErrNotFound)
		return
	}

	h.dispatch(c, "reservation_deleted", id)

	c.JSON(http.StatusOK, gin.H{"message": "Reservation deleted successfully"})
}

// --------- Helpers ---------

func (h *ReservationHandler) dispatch(c *gin.Context, action string, id uint) {
	actor := c.GetUint(middleware.ContextClientID)
	h.audit.Dispatch(audit.Event{
		ClientID: &actor,
		Action:   action,
		Entity:   "reservation",
		EntityID: &id,
	})
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, httperr.Validation("invalid id: %s", c.Param("id"))
	}
	return uint(id), nil
}
