package controllers

import (
	"net/http"
	"strconv"
	"time"

	"intown_server/utils"
)

// HealthCheckHandler provides a basic health check
func HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// WelcomeHandler provides a welcome message
func WelcomeHandler(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, http.StatusOK, map[string]string{"message": "Welcome to the In Town API"})
}

// OpenAPIHandler serves a minimal OpenAPI document for the contacts API
func OpenAPIHandler(w http.ResponseWriter, r *http.Request) {
	op := func(summary string, codes ...int) map[string]interface{} {
		responses := map[string]interface{}{}
		for _, code := range codes {
			responses[strconv.Itoa(code)] = map[string]string{"description": http.StatusText(code)}
		}
		return map[string]interface{}{"summary": summary, "responses": responses}
	}
	utils.WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"openapi": "3.0.0",
		"info": map[string]string{
			"title":       "In-Town API",
			"version":     "1.0.0",
			"description": "Contacts, swipe decisions and profile completeness",
		},
		"paths": map[string]interface{}{
			"/health": map[string]interface{}{"get": op("Health check", 200)},
			"/api/contacts": map[string]interface{}{
				"get":  op("Get all contacts", 200, 500),
				"post": op("Create a new contact", 201, 400, 500),
			},
			"/api/contacts/{id}":                      map[string]interface{}{"get": op("Get a contact by ID", 200, 404, 500)},
			"/api/contacts/{id}/swipe":                map[string]interface{}{"put": op("Update contact swipe status", 200, 400, 404, 500)},
			"/api/contacts/{id}/photo":                map[string]interface{}{"post": op("Presigned photo upload URL", 200, 400, 404, 503)},
			"/api/contacts/swiped-right/list":         map[string]interface{}{"get": op("Right-swiped contacts with completeness", 200, 500)},
			"/api/contacts/swiped-right/calendar.ics": map[string]interface{}{"get": op("Birthday calendar of right-swiped contacts", 200, 500)},
			"/api/contacts/pending/list":              map[string]interface{}{"get": op("Contacts waiting for a swipe", 200, 500)},
			"/api/contacts/stats":                     map[string]interface{}{"get": op("Contact counts per swipe status", 200, 500)},
		},
	})
}
