package utils

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error []FieldError `json:"error"`
}

// ResponseJSON writes payload as JSON with a custom status code
func ResponseJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.L().Warn("Failed to write JSON response",
			zap.Int("status", code),
			zap.Error(err),
		)
	}
}

// ------------- Success responses -------------

// returns 200 OK
func ResponseSuccess(w http.ResponseWriter, data any) {
	ResponseJSON(w, http.StatusOK, data)
}

// returns 201 Created
func ResponseCreated(w http.ResponseWriter, data any) {
	ResponseJSON(w, http.StatusCreated, data)
}

// returns 200 OK with {"message": ...}
func ResponseMessage(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusOK, MessageResponse{Message: message})
}

// ------------- Error responses -------------

// returns 400 Bad Request with the field errors
func ResponseBadRequest(w http.ResponseWriter, errors []FieldError) {
	ResponseJSON(w, http.StatusBadRequest, ErrorResponse{Error: errors})
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusNotFound, MessageResponse{Message: message})
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusInternalServerError, MessageResponse{Message: message})
}
