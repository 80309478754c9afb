package controllers

import (
	"context"
	"encoding/json"
	"net/http"

	"intown_server/services"
	"intown_server/utils"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// PhotoSigner issues presigned object URLs
type PhotoSigner interface {
	GenerateUploadURL(ctx context.Context, contactID, fileName, fileType string) (string, string, error)
	GenerateReadURL(ctx context.Context, key string) (string, error)
}

// PhotoController hands out presigned URLs for contact photos
type PhotoController struct {
	Signer         PhotoSigner // nil when no bucket is configured
	ContactService *services.ContactService
	Logger         *zap.Logger
}

// GeneratePresignedURL generates a presigned upload URL for a contact photo
func (c *PhotoController) GeneratePresignedURL(w http.ResponseWriter, r *http.Request) {
	if c.Signer == nil {
		utils.WriteJSONError(w, http.StatusServiceUnavailable, "Photo storage is not configured")
		return
	}

	var payload struct {
		FileName string `json:"fileName"`
		FileType string `json:"fileType"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.WriteJSONError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if payload.FileName == "" || payload.FileType == "" {
		utils.WriteJSONError(w, http.StatusBadRequest, "fileName and fileType are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	contactID := mux.Vars(r)["id"]
	contact, err := c.ContactService.GetContact(ctx, contactID)
	if err != nil {
		c.Logger.Error("Failed to fetch contact", zap.Error(err))
		utils.WriteJSONError(w, http.StatusInternalServerError, "Failed to fetch contact")
		return
	}
	if contact == nil {
		utils.WriteJSONError(w, http.StatusNotFound, "Contact not found")
		return
	}

	url, key, err := c.Signer.GenerateUploadURL(ctx, contactID, payload.FileName, payload.FileType)
	if err != nil {
		c.Logger.Error("Error generating pre-signed URL", zap.Error(err))
		utils.WriteJSONError(w, http.StatusInternalServerError, "Failed to generate pre-signed URL")
		return
	}
	c.Logger.Info("Generated photo upload URL", zap.String("contactId", contactID), zap.String("key", key))
	utils.WriteJSONResponse(w, http.StatusOK, map[string]string{"url": url, "key": key})
}

// GetPresignedReadURL generates a presigned URL for reading a photo
func (c *PhotoController) GetPresignedReadURL(w http.ResponseWriter, r *http.Request) {
	if c.Signer == nil {
		utils.WriteJSONError(w, http.StatusServiceUnavailable, "Photo storage is not configured")
		return
	}

	var payload struct {
		Key string `json:"key"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Key == "" {
		utils.WriteJSONError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	url, err := c.Signer.GenerateReadURL(r.Context(), payload.Key)
	if err != nil {
		c.Logger.Error("Error generating read URL", zap.Error(err))
		utils.WriteJSONError(w, http.StatusInternalServerError, "Failed to generate read pre-signed URL")
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, map[string]string{"url": url})
}
