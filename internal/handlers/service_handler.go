package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/novareservas/reservation-api/internal/audit"
	"github.com/novareservas/reservation-api/internal/httperr"
	"github.com/novareservas/reservation-api/internal/middleware"
	"github.com/novareservas/reservation-api/internal/repository"
)

type ServiceHandler struct {
	services *repository.ServiceRepository
	audit    *audit.Dispatcher
}

func NewServiceHandler(
	services *repository.ServiceRepository,
	audit *audit.Dispatcher,
) *ServiceHandler {
	return &ServiceHandler{
		services: services,
		audit:    audit,
	}
}

// --------- Requests ---------

type ServiceRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// --------- Handlers ---------

func (h *ServiceHandler) Create(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.Validation("invalid request: %s", err.Error()))
		return
	}

	id, err := h.services.Create(c.Request.Context(), req.Name, req.Description)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	h.dispatch(c, "service_created", id)

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *ServiceHandler) List(c *gin.Context) {
	services, err := h.services.List(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"services": services})
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.Validation("invalid request: %s", err.Error()))
		return
	}

	affected, err := h.services.Update(c.Request.Context(), id, req.Name, req.Description)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	if affected == 0 {
		httperr.Respond(c, httperr.ErrNotFound)
		return
	}

	h.dispatch(c, "service_updated", id)

	c.JSON(http.StatusOK, gin.H{"message": "Service updated successfully"})
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	affected, err := h.services.Delete(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	if affected == 0 {
		httperr.Respond(c, httperr.ErrNotFound)
		return
	}

	h.dispatch(c, "service_deleted", id)

	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}

// --------- Helpers ---------

func (h *ServiceHandler) dispatch(c *gin.Context, action string, id uint) {
	actor := c.GetUint(middleware.ContextClientID)
	h.audit.Dispatch(audit.Event{
		ClientID: &actor,
		Action:   action,
		Entity:   "service",
		EntityID: &id,
	})
}
