package routes

import (
	"intown_server/controllers"
	"intown_server/services"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// RegisterContactRoutes sets up routes for contact operations under /api/contacts
func RegisterContactRoutes(r *mux.Router, contactService *services.ContactService, logger *zap.Logger) {
	controller := controllers.NewContactController(contactService, logger)

	contactRouter := r.PathPrefix("/api/contacts").Subrouter()

	// Fixed paths are registered before /{id} so they are not captured by it.
	contactRouter.HandleFunc("", controller.GetContacts).Methods("GET")
	contactRouter.HandleFunc("", controller.CreateContact).Methods("POST")
	contactRouter.HandleFunc("/stats", controller.GetStats).Methods("GET")
	contactRouter.HandleFunc("/swiped-right/list", controller.GetSwipedRight).Methods("GET")
	contactRouter.HandleFunc("/swiped-right/calendar.ics", controller.GetBirthdayCalendar).Methods("GET")
	contactRouter.HandleFunc("/pending/list", controller.GetPending).Methods("GET")
	contactRouter.HandleFunc("/{id}", controller.GetContactByID).Methods("GET")
	contactRouter.HandleFunc("/{id}/swipe", controller.SwipeContact).Methods("PUT")
}
