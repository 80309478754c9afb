package routes

import (
	"intown_server/controllers"

	"github.com/gorilla/mux"
)

// RegisterRoutes sets up the service-level routes of the application
func RegisterRoutes(r *mux.Router, privacyContact string) {
	r.HandleFunc("/health", controllers.HealthCheckHandler).Methods("GET")
	r.HandleFunc("/openapi.json", controllers.OpenAPIHandler).Methods("GET")
	r.HandleFunc("/privacy", PrivacyPolicyHandler(privacyContact)).Methods("GET")
	r.HandleFunc("/", controllers.WelcomeHandler).Methods("GET")
}
