package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/maynagashev/partsorganizer/internal/models"
	"github.com/maynagashev/partsorganizer/internal/services"
)

// LocationService определяет операции над местами хранения, нужные обработчику.
type LocationService interface {
	CreateLocation(ctx context.Context, req models.CreateLocationRequest) (*models.Location, error)
	ListLocations(ctx context.Context) ([]models.Location, error)
	GetLocation(ctx context.Context, id int64) (*models.Location, error)
	ListPartsForLocation(ctx context.Context, id int64) ([]models.Part, error)
}

// LocationHandler обрабатывает HTTP-запросы, связанные с местами хранения.
type LocationHandler struct {
	service LocationService
}

// NewLocationHandler создает новый экземпляр LocationHandler.
func NewLocationHandler(s LocationService) *LocationHandler {
	return &LocationHandler{service: s}
}

// Create обрабатывает POST запрос на создание места хранения.
func (h *LocationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[LocationHandler:Create] Ошибка декодирования запроса: %v", err)
		respondError(w, http.StatusBadRequest, "неверный формат запроса")
		return
	}

	if req.LocationName == "" || req.Container == "" || req.Row == "" || req.Position == "" {
		log.Printf("[LocationHandler:Create] Не заполнены обязательные поля")
		respondError(w, http.StatusBadRequest, "поля locationName, container, row и position обязательны")
		return
	}

	location, err := h.service.CreateLocation(r.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrLocationNameTaken) {
			respondError(w, http.StatusConflict, services.ErrLocationNameTaken.Error())
			return
		}
		log.Printf("[LocationHandler:Create] Ошибка сервиса при создании '%s': %v", req.LocationName, err)
		respondError(w, http.StatusInternalServerError, "внутренняя ошибка сервера")
		return
	}

	respondJSON(w, http.StatusOK, location)
	log.Printf("[LocationHandler:Create] Место хранения '%s' создано (ID: %d)", location.LocationName, location.ID)
}

// List обрабатывает GET запрос на получение всех мест хранения.
func (h *LocationHandler) List(w http.ResponseWriter, r *http.Request) {
	locations, err := h.service.ListLocations(r.Context())
	if err != nil {
		log.Printf("[LocationHandler:List] Ошибка сервиса: %v", err)
		respondError(w, http.StatusInternalServerError, "внутренняя ошибка сервера")
		return
	}

	respondJSON(w, http.StatusOK, locations)
}

// GetByID обрабатывает GET запрос на получение места хранения по ID.
func (h *LocationHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "идентификатор должен быть числом")
		return
	}

	location, err := h.service.GetLocation(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrLocationNotFound) {
			respondError(w, http.StatusNotFound, services.ErrLocationNotFound.Error())
			return
		}
		log.Printf("[LocationHandler:GetByID] Ошибка сервиса для ID %d: %v", id, err)
		respondError(w, http.StatusInternalServerError, "внутренняя ошибка сервера")
		return
	}

	respondJSON(w, http.StatusOK, location)
}

// ListParts обрабатывает GET запрос на получение деталей места хранения по его ID.
func (h *LocationHandler) ListParts(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "идентификатор должен быть числом")
		return
	}

	parts, err := h.service.ListPartsForLocation(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrLocationNotFound) {
			respondError(w, http.StatusNotFound, services.ErrLocationNotFound.Error())
			return
		}
		log.Printf("[LocationHandler:ListParts] Ошибка сервиса для ID %d: %v", id, err)
		respondError(w, http.StatusInternalServerError, "внутренняя ошибка сервера")
		return
	}

	if len(parts) == 0 {
		respondError(w, http.StatusNotFound, "детали для этого места хранения не найдены")
		return
	}

	respondJSON(w, http.StatusOK, parts)
}

// parseIDParam извлекает числовой параметр {id} из URL.
func parseIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
