package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"

	"cleaning-booking-api/internal/model"
)

type createAppointmentReq struct {
	Name          string  `json:"name" binding:"required"`
	Email         string  `json:"email" binding:"required"`
	Phone         string  `json:"phone" binding:"required"`
	ServiceType   string  `json:"serviceType" binding:"required,oneof=carpet upholstery rugs multiple"`
	PreferredDate string  `json:"preferredDate" binding:"required"`
	PreferredTime *string `json:"preferredTime"`
	Details       *string `json:"details"`
}

// CreateAppointment is the one public write endpoint: the booking form posts
// here without authentication.
func (h *Handler) CreateAppointment(c *gin.Context) {
	var req createAppointmentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, bindingMessage(err))
		return
	}

	apt, err := h.store.CreateAppointment(c.Request.Context(), &model.Appointment{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		ServiceType:   req.ServiceType,
		PreferredDate: req.PreferredDate,
		PreferredTime: req.PreferredTime,
		Details:       req.Details,
	})
	if err != nil {
		serverError(c, "create appointment", err)
		return
	}

	c.JSON(http.StatusCreated, apt)
}

func (h *Handler) ListAppointments(c *gin.Context) {
	apts, err := h.store.ListAppointments(c.Request.Context())
	if err != nil {
		serverError(c, "list appointments", err)
		return
	}
	if apts == nil {
		apts = []model.Appointment{}
	}
	c.JSON(http.StatusOK, apts)
}

func (h *Handler) UpdateAppointment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid appointment ID.")
		return
	}

	var patch model.AppointmentPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		fail(c, http.StatusBadRequest, "Invalid appointment data.")
		return
	}
	if patch.ServiceType != nil && !model.ValidServiceType(*patch.ServiceType) {
		fail(c, http.StatusBadRequest, "Invalid service type.")
		return
	}
	// required columns stay non-empty even through partial updates
	for field, v := range map[string]*string{
		"name":          patch.Name,
		"email":         patch.Email,
		"phone":         patch.Phone,
		"preferredDate": patch.PreferredDate,
	} {
		if v != nil && *v == "" {
			fail(c, http.StatusBadRequest, fmt.Sprintf("%s cannot be empty.", field))
			return
		}
	}

	ctx := c.Request.Context()

	// existence check first so a missing row is a clean 404
	if _, err := h.store.GetAppointment(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			fail(c, http.StatusNotFound, "Appointment not found.")
		} else {
			serverError(c, "update appointment: lookup", err)
		}
		return
	}

	apt, err := h.store.UpdateAppointment(ctx, id, &patch)
	if err != nil {
		serverError(c, "update appointment", err)
		return
	}

	c.JSON(http.StatusOK, apt)
}

func (h *Handler) DeleteAppointment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid appointment ID.")
		return
	}

	deleted, err := h.store.DeleteAppointment(c.Request.Context(), id)
	if err != nil {
		serverError(c, "delete appointment", err)
		return
	}
	if !deleted {
		fail(c, http.StatusNotFound, "Appointment not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted."})
}

// bindingMessage turns a binding failure into a human-readable message for
// the 400 body, e.g. "name is required." for a missing field.
func bindingMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		field := lowerFirst(fe.Field())
		switch fe.Tag() {
		case "required":
			return fmt.Sprintf("%s is required.", field)
		case "oneof":
			return fmt.Sprintf("%s must be one of: carpet, upholstery, rugs, multiple.", field)
		}
		return fmt.Sprintf("%s is invalid.", field)
	}
	return "Invalid appointment data."
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
