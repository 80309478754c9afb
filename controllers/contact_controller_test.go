package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"intown_server/models"
	"intown_server/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// failingRepo fails every call
type failingRepo struct{}

var errDown = errors.New("database is down")

func (failingRepo) ListContacts(context.Context) ([]models.Contact, error) { return nil, errDown }
func (failingRepo) GetContact(context.Context, string) (*models.Contact, error) {
	return nil, errDown
}
func (failingRepo) CreateContact(context.Context, models.Contact) (*models.Contact, error) {
	return nil, errDown
}
func (failingRepo) CountContacts(context.Context) (int, error) { return 0, errDown }

func TestWriteErrorMapping(t *testing.T) {
	c := NewContactController(nil, nil)
	tests := []struct {
		err  error
		code int
	}{
		{services.ErrNameRequired, http.StatusBadRequest},
		{services.ErrInvalidSwipeStatus, http.StatusBadRequest},
		{services.ErrContactNotFound, http.StatusNotFound},
		{errDown, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		c.writeError(rec, "Failed", tt.err)
		assert.Equal(t, tt.code, rec.Code, tt.err.Error())
		assert.Contains(t, rec.Body.String(), `"error"`)
	}
}

func TestRepositoryFailureIs500(t *testing.T) {
	cs := &services.ContactService{Repo: failingRepo{}, Swipes: services.NewMemorySwipeStore()}
	c := NewContactController(cs, zap.NewNop())

	rec := httptest.NewRecorder()
	c.GetContacts(rec, httptest.NewRequest(http.MethodGet, "/api/contacts", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "database is down")

	rec = httptest.NewRecorder()
	c.GetStats(rec, httptest.NewRequest(http.MethodGet, "/api/contacts/stats", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
