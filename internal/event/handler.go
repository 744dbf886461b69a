package event

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sharath018/event-registration-backend/utils"
)

type Handler struct {
	Service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{Service: s}
}

// ===========================
// 📄 List Events - GET /api/events
// @Summary List events
// @Tags Events
// @Produce json
// @Success 200 {array} Event
// @Router /api/events [get]
func (h *Handler) ListEvents(c *gin.Context) {
	events, err := h.Service.ListEvents(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

// ===========================
// 🔍 Get Event - GET /api/events/:id
// @Summary Get an event
// @Tags Events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} Event
// @Failure 404 {object} map[string]string
// @Router /api/events/{id} [get]
func (h *Handler) GetEvent(c *gin.Context) {
	id, ok := utils.ParseID(c)
	if !ok {
		return
	}
	e, err := h.Service.GetEvent(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

// ===========================
// 🎯 Create Event - POST /api/events
// @Summary Create an event
// @Tags Events
// @Accept json
// @Produce json
// @Param body body EventRequest true "Event"
// @Success 201 {object} Event
// @Failure 400 {object} map[string]interface{}
// @Router /api/events [post]
func (h *Handler) CreateEvent(c *gin.Context) {
	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindError(c, err)
		return
	}

	e, err := h.Service.CreateEvent(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, e)
}

// ===========================
// 🛠 Update Event - PUT /api/events/:id
// @Summary Replace an event
// @Tags Events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param body body EventRequest true "Event"
// @Success 200 {object} Event
// @Failure 404 {object} map[string]string
// @Router /api/events/{id} [put]
func (h *Handler) UpdateEvent(c *gin.Context) {
	id, ok := utils.ParseID(c)
	if !ok {
		return
	}

	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindError(c, err)
		return
	}

	e, err := h.Service.UpdateEvent(c.Request.Context(), id, req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

// ===========================
// ❌ Delete Event - DELETE /api/events/:id
// @Summary Delete an event without registrations
// @Tags Events
// @Param id path string true "Event ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/events/{id} [delete]
func (h *Handler) DeleteEvent(c *gin.Context) {
	id, ok := utils.ParseID(c)
	if !ok {
		return
	}
	if err := h.Service.DeleteEvent(c.Request.Context(), id); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
