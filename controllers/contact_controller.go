package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"intown_server/models"
	"intown_server/services"
	"intown_server/utils"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const requestTimeout = 5 * time.Second

// ContactController handles HTTP requests for contacts and swipes
type ContactController struct {
	ContactService *services.ContactService
	Logger         *zap.Logger
}

// NewContactController creates a new ContactController instance
func NewContactController(contactService *services.ContactService, logger *zap.Logger) *ContactController {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContactController{ContactService: contactService, Logger: logger}
}

// GetContacts returns every contact with its swipe status
func (c *ContactController) GetContacts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	contacts, err := c.ContactService.ListContacts(ctx)
	if err != nil {
		c.writeError(w, "Failed to fetch contacts", err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, contacts)
}

// GetContactByID returns one contact or 404
func (c *ContactController) GetContactByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	contact, err := c.ContactService.GetContact(ctx, mux.Vars(r)["id"])
	if err != nil {
		c.writeError(w, "Failed to fetch contact", err)
		return
	}
	if contact == nil {
		utils.WriteJSONError(w, http.StatusNotFound, "Contact not found")
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, contact)
}

// CreateContact stores a new contact with a pending swipe status
func (c *ContactController) CreateContact(w http.ResponseWriter, r *http.Request) {
	var input models.ContactInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		c.Logger.Debug("Invalid request payload", zap.Error(err))
		utils.WriteJSONError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	contact, err := c.ContactService.CreateContact(ctx, input)
	if err != nil {
		c.writeError(w, "Failed to create contact", err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusCreated, contact)
}

// SwipeContact records a left or right swipe
func (c *ContactController) SwipeContact(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.WriteJSONError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	status, ok := models.ParseSwipeStatus(request.Status)
	if !ok {
		utils.WriteJSONError(w, http.StatusBadRequest, `Status must be "left" or "right"`)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	contact, err := c.ContactService.SwipeContact(ctx, mux.Vars(r)["id"], status)
	if err != nil {
		c.writeError(w, "Failed to update swipe status", err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, contact)
}

// GetSwipedRight returns completeness reports for contacts swiped right
func (c *ContactController) GetSwipedRight(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	reports, err := c.ContactService.SwipedRight(ctx)
	if err != nil {
		c.writeError(w, "Failed to fetch swiped right contacts", err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, reports)
}

// GetPending returns the contacts still waiting for a swipe
func (c *ContactController) GetPending(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	contacts, err := c.ContactService.PendingContacts(ctx)
	if err != nil {
		c.writeError(w, "Failed to fetch pending contacts", err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, contacts)
}

// GetStats returns contact counts per swipe status
func (c *ContactController) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	stats, err := c.ContactService.Stats(ctx)
	if err != nil {
		c.writeError(w, "Failed to fetch contact statistics", err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, stats)
}

// GetBirthdayCalendar serves the birthdays of accepted contacts as text/calendar
func (c *ContactController) GetBirthdayCalendar(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	ics, err := c.ContactService.BirthdayCalendar(ctx)
	if err != nil {
		c.writeError(w, "Failed to build calendar", err)
		return
	}
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `inline; filename="birthdays.ics"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(ics)
}

// writeError maps service errors to status codes; anything unexpected is a 500
func (c *ContactController) writeError(w http.ResponseWriter, message string, err error) {
	switch {
	case errors.Is(err, services.ErrNameRequired):
		utils.WriteJSONError(w, http.StatusBadRequest, "Name is required")
	case errors.Is(err, services.ErrInvalidSwipeStatus):
		utils.WriteJSONError(w, http.StatusBadRequest, `Status must be "left" or "right"`)
	case errors.Is(err, services.ErrContactNotFound):
		utils.WriteJSONError(w, http.StatusNotFound, "Contact not found")
	default:
		c.Logger.Error(message, zap.Error(err))
		utils.WriteJSONError(w, http.StatusInternalServerError, message+": "+err.Error())
	}
}
