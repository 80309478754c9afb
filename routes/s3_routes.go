package routes

import (
	"intown_server/controllers"
	"intown_server/services"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// RegisterS3Routes sets up routes for contact photo storage. signer may be
// nil, in which case the routes answer 503.
func RegisterS3Routes(r *mux.Router, signer controllers.PhotoSigner, contactService *services.ContactService, logger *zap.Logger) {
	controller := &controllers.PhotoController{Signer: signer, ContactService: contactService, Logger: logger}

	r.HandleFunc("/api/contacts/{id}/photo", controller.GeneratePresignedURL).Methods("POST")
	r.HandleFunc("/api/s3/read-url", controller.GetPresignedReadURL).Methods("POST")
}
