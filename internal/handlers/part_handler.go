package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/maynagashev/partsorganizer/internal/models"
	"github.com/maynagashev/partsorganizer/internal/services"
)

// PartService определяет операции над деталями, нужные обработчику.
type PartService interface {
	CreatePart(ctx context.Context, req models.CreatePartRequest) (*models.Part, error)
	ListParts(ctx context.Context) ([]models.Part, error)
	GetPart(ctx context.Context, id int64) (*models.Part, error)
	ListPartsByLocationName(ctx context.Context, locationName string) ([]models.Part, error)
}

// PartHandler обрабатывает HTTP-запросы, связанные с деталями.
type PartHandler struct {
	service PartService
}

// NewPartHandler создает новый экземпляр PartHandler.
func NewPartHandler(s PartService) *PartHandler {
	return &PartHandler{service: s}
}

// Create обрабатывает POST запрос на создание детали.
// Ошибка ссылочной целостности (несуществующее место хранения)
// отдается как 500 - наблюдаемый контракт финальной итерации API.
func (h *PartHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[PartHandler:Create] Ошибка декодирования запроса: %v", err)
		respondError(w, http.StatusBadRequest, "неверный формат запроса")
		return
	}

	if req.PartName == "" || req.LocationName == "" {
		log.Printf("[PartHandler:Create] Не заполнены обязательные поля")
		respondError(w, http.StatusBadRequest, "поля partName и locationName обязательны")
		return
	}

	part, err := h.service.CreatePart(r.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrLocationNotFound) {
			respondError(w, http.StatusInternalServerError, services.ErrLocationNotFound.Error())
			return
		}
		log.Printf("[PartHandler:Create] Ошибка сервиса при создании '%s': %v", req.PartName, err)
		respondError(w, http.StatusInternalServerError, "внутренняя ошибка сервера")
		return
	}

	respondJSON(w, http.StatusOK, part)
	log.Printf("[PartHandler:Create] Деталь '%s' создана (ID: %d)", part.PartName, part.ID)
}

// List обрабатывает GET запрос на получение всех деталей.
func (h *PartHandler) List(w http.ResponseWriter, r *http.Request) {
	parts, err := h.service.ListParts(r.Context())
	if err != nil {
		log.Printf("[PartHandler:List] Ошибка сервиса: %v", err)
		respondError(w, http.StatusInternalServerError, "внутренняя ошибка сервера")
		return
	}

	respondJSON(w, http.StatusOK, parts)
}

// GetByID обрабатывает GET запрос на получение детали по ID.
func (h *PartHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "идентификатор должен быть числом")
		return
	}

	part, err := h.service.GetPart(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrPartNotFound) {
			respondError(w, http.StatusNotFound, services.ErrPartNotFound.Error())
			return
		}
		log.Printf("[PartHandler:GetByID] Ошибка сервиса для ID %d: %v", id, err)
		respondError(w, http.StatusInternalServerError, "внутренняя ошибка сервера")
		return
	}

	respondJSON(w, http.StatusOK, part)
}

// ListByLocationName обрабатывает GET запрос на получение деталей
// по точному имени места хранения.
func (h *PartHandler) ListByLocationName(w http.ResponseWriter, r *http.Request) {
	locationName := chi.URLParam(r, "locationName")
	if locationName == "" {
		respondError(w, http.StatusBadRequest, "имя места хранения не указано")
		return
	}

	parts, err := h.service.ListPartsByLocationName(r.Context(), locationName)
	if err != nil {
		log.Printf("[PartHandler:ListByLocationName] Ошибка сервиса для '%s': %v", locationName, err)
		respondError(w, http.StatusInternalServerError, "внутренняя ошибка сервера")
		return
	}

	if len(parts) == 0 {
		respondError(w, http.StatusNotFound, "детали для этого места хранения не найдены")
		return
	}

	respondJSON(w, http.StatusOK, parts)
}
