package handlers

import (
	"encoding/json"
	"log"
	"net/http"
)

// errorResponse - единый формат тела ответа об ошибке.
type errorResponse struct {
	Error string `json:"error"`
}

// respondJSON отправляет ответ с указанным статусом и JSON-телом.
func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// Статус уже отправлен клиенту, остается только залогировать
		log.Printf("[Handlers] Ошибка кодирования JSON-ответа: %v", err)
	}
}

// respondError отправляет ответ об ошибке в формате {"error": message}.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Error: message})
}
