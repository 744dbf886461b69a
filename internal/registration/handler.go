package registration

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sharath018/event-registration-backend/internal/apperrors"
	"github.com/sharath018/event-registration-backend/internal/lifecycle"
	"github.com/sharath018/event-registration-backend/utils"
)

type Handler struct {
	Service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{Service: s}
}

// ===========================
// 📄 List Registrations - GET /api/registrations?eventId=&status=
// @Summary List registrations with their event
// @Tags Registrations
// @Produce json
// @Param eventId query string false "Event ID"
// @Param status query string false "pendente | confirmado | cancelado"
// @Success 200 {array} Registration
// @Router /api/registrations [get]
func (h *Handler) ListRegistrations(c *gin.Context) {
	var f ListFilter
	if v := c.Query("eventId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			utils.RespondError(c, apperrors.NewValidation("eventId", "must be a valid UUID"))
			return
		}
		f.EventID = &id
	}
	if v := c.Query("status"); v != "" {
		st, err := lifecycle.ParseStatus(v)
		if err != nil {
			utils.RespondError(c, apperrors.NewValidation("status", err.Error()))
			return
		}
		f.Status = st
	}

	regs, err := h.Service.List(c.Request.Context(), f)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, regs)
}

// ===========================
// 🔍 Get Registration - GET /api/registrations/:id
// @Summary Get a registration
// @Tags Registrations
// @Produce json
// @Param id path string true "Registration ID"
// @Success 200 {object} Registration
// @Failure 404 {object} map[string]string
// @Router /api/registrations/{id} [get]
func (h *Handler) GetRegistration(c *gin.Context) {
	id, ok := utils.ParseID(c)
	if !ok {
		return
	}
	reg, err := h.Service.Get(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, withActions(reg))
}

// ===========================
// 🎯 Create Registration - POST /api/registrations (public form)
// @Summary Register for an event
// @Tags Registrations
// @Accept json
// @Produce json
// @Param body body CreateRequest true "Registration form"
// @Success 201 {object} Registration
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /api/registrations [post]
func (h *Handler) CreateRegistration(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindError(c, err)
		return
	}
	reg, err := h.Service.Create(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, reg)
}

// ===========================
// 🛠 Overwrite Status - PUT /api/registrations/:id/status
// @Summary Overwrite a registration status
// @Tags Registrations
// @Accept json
// @Produce json
// @Param id path string true "Registration ID"
// @Param body body StatusRequest true "New status"
// @Success 200 {object} Registration
// @Router /api/registrations/{id}/status [put]
func (h *Handler) UpdateStatus(c *gin.Context) {
	id, ok := utils.ParseID(c)
	if !ok {
		return
	}
	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindError(c, err)
		return
	}
	reg, err := h.Service.SetStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reg)
}

// ===========================
// 💰 Overwrite Payment - PUT /api/registrations/:id/payment
// @Summary Overwrite a registration payment status
// @Tags Registrations
// @Accept json
// @Produce json
// @Param id path string true "Registration ID"
// @Param body body PaymentRequest true "New payment status"
// @Success 200 {object} Registration
// @Router /api/registrations/{id}/payment [put]
func (h *Handler) UpdatePayment(c *gin.Context) {
	id, ok := utils.ParseID(c)
	if !ok {
		return
	}
	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindError(c, err)
		return
	}
	reg, err := h.Service.SetPaymentStatus(c.Request.Context(), id, req.PaymentStatus)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reg)
}

// ===========================
// 🔁 Transition - POST /api/registrations/:id/transitions
// @Summary Apply a lifecycle operation
// @Description markPaid, unmarkPaid, confirm, cancel or restore. unmarkPaid and cancel need "confirmed": true.
// @Tags Registrations
// @Accept json
// @Produce json
// @Param id path string true "Registration ID"
// @Param body body TransitionRequest true "Operation"
// @Success 200 {object} Registration
// @Failure 409 {object} map[string]interface{}
// @Failure 428 {object} map[string]interface{}
// @Router /api/registrations/{id}/transitions [post]
func (h *Handler) Transition(c *gin.Context) {
	id, ok := utils.ParseID(c)
	if !ok {
		return
	}
	var req TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindError(c, err)
		return
	}
	reg, err := h.Service.Transition(c.Request.Context(), id, req.Operation, req.Confirmed)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, withActions(reg))
}

// registrationView adds the operations the dashboard may offer next.
type registrationView struct {
	*Registration
	Actions []lifecycle.Operation `json:"actions"`
}

func withActions(reg *Registration) registrationView {
	return registrationView{Registration: reg, Actions: lifecycle.Available(reg.State())}
}
