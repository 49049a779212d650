package services

import (
	"context"
	"errors"
	"log"

	"github.com/maynagashev/partsorganizer/internal/models"
	"github.com/maynagashev/partsorganizer/internal/repository"
)

// InventoryService определяет операции над местами хранения и деталями.
type InventoryService interface {
	CreateLocation(ctx context.Context, req models.CreateLocationRequest) (*models.Location, error)
	ListLocations(ctx context.Context) ([]models.Location, error)
	GetLocation(ctx context.Context, id int64) (*models.Location, error)
	ListPartsForLocation(ctx context.Context, id int64) ([]models.Part, error)

	CreatePart(ctx context.Context, req models.CreatePartRequest) (*models.Part, error)
	ListParts(ctx context.Context) ([]models.Part, error)
	GetPart(ctx context.Context, id int64) (*models.Part, error)
	ListPartsByLocationName(ctx context.Context, locationName string) ([]models.Part, error)
}

// Убедимся, что inventoryService удовлетворяет интерфейсу InventoryService.
var _ InventoryService = (*inventoryService)(nil)

type inventoryService struct {
	locationRepo repository.LocationRepository
	partRepo     repository.PartRepository
}

// NewInventoryService создает новый экземпляр сервиса инвентаря.
func NewInventoryService(locationRepo repository.LocationRepository, partRepo repository.PartRepository) InventoryService {
	return &inventoryService{locationRepo: locationRepo, partRepo: partRepo}
}

// CreateLocation создает место хранения и возвращает полную запись.
func (s *inventoryService) CreateLocation(ctx context.Context, req models.CreateLocationRequest) (*models.Location, error) {
	location := &models.Location{
		LocationName: req.LocationName,
		Container:    req.Container,
		Row:          req.Row,
		Position:     req.Position,
	}

	locationID, err := s.locationRepo.CreateLocation(ctx, location)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNameTaken) {
			return nil, ErrLocationNameTaken
		}
		log.Printf("[InventoryService] Ошибка создания места хранения '%s': %v", req.LocationName, err)
		return nil, errors.New("внутренняя ошибка сервера при создании места хранения")
	}

	// Перечитываем запись, чтобы вернуть сгенерированные БД поля (created_at)
	created, err := s.locationRepo.GetLocationByID(ctx, locationID)
	if err != nil {
		log.Printf("[InventoryService] Ошибка чтения созданного места хранения ID %d: %v", locationID, err)
		return nil, errors.New("внутренняя ошибка сервера при чтении места хранения")
	}
	return created, nil
}

// ListLocations возвращает все места хранения, новые - первыми.
func (s *inventoryService) ListLocations(ctx context.Context) ([]models.Location, error) {
	locations, err := s.locationRepo.GetLocations(ctx)
	if err != nil {
		log.Printf("[InventoryService] Ошибка получения мест хранения: %v", err)
		return nil, errors.New("внутренняя ошибка сервера при получении мест хранения")
	}
	return locations, nil
}

// GetLocation возвращает место хранения по ID.
func (s *inventoryService) GetLocation(ctx context.Context, id int64) (*models.Location, error) {
	location, err := s.locationRepo.GetLocationByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, ErrLocationNotFound
		}
		log.Printf("[InventoryService] Ошибка получения места хранения ID %d: %v", id, err)
		return nil, errors.New("внутренняя ошибка сервера при получении места хранения")
	}
	return location, nil
}

// ListPartsForLocation возвращает детали места хранения, заданного по ID.
// Сначала место разрешается в имя, затем детали ищутся по имени.
func (s *inventoryService) ListPartsForLocation(ctx context.Context, id int64) ([]models.Part, error) {
	location, err := s.GetLocation(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.ListPartsByLocationName(ctx, location.LocationName)
}

// CreatePart создает деталь и возвращает полную запись.
// Если указанного места хранения нет, возвращается ErrLocationNotFound.
func (s *inventoryService) CreatePart(ctx context.Context, req models.CreatePartRequest) (*models.Part, error) {
	part := &models.Part{
		PartName:     req.PartName,
		PartDetails:  req.PartDetails,
		LocationName: req.LocationName,
		Container:    req.Container,
		Row:          req.Row,
		Position:     req.Position,
	}

	partID, err := s.partRepo.CreatePart(ctx, part)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, ErrLocationNotFound
		}
		log.Printf("[InventoryService] Ошибка создания детали '%s': %v", req.PartName, err)
		return nil, errors.New("внутренняя ошибка сервера при создании детали")
	}

	created, err := s.partRepo.GetPartByID(ctx, partID)
	if err != nil {
		log.Printf("[InventoryService] Ошибка чтения созданной детали ID %d: %v", partID, err)
		return nil, errors.New("внутренняя ошибка сервера при чтении детали")
	}
	return created, nil
}

// ListParts возвращает все детали, новые - первыми.
func (s *inventoryService) ListParts(ctx context.Context) ([]models.Part, error) {
	parts, err := s.partRepo.GetParts(ctx)
	if err != nil {
		log.Printf("[InventoryService] Ошибка получения деталей: %v", err)
		return nil, errors.New("внутренняя ошибка сервера при получении деталей")
	}
	return parts, nil
}

// GetPart возвращает деталь по ID.
func (s *inventoryService) GetPart(ctx context.Context, id int64) (*models.Part, error) {
	part, err := s.partRepo.GetPartByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPartNotFound) {
			return nil, ErrPartNotFound
		}
		log.Printf("[InventoryService] Ошибка получения детали ID %d: %v", id, err)
		return nil, errors.New("внутренняя ошибка сервера при получении детали")
	}
	return part, nil
}

// ListPartsByLocationName возвращает детали по точному имени места хранения.
func (s *inventoryService) ListPartsByLocationName(ctx context.Context, locationName string) ([]models.Part, error) {
	parts, err := s.partRepo.GetPartsByLocation(ctx, locationName)
	if err != nil {
		log.Printf("[InventoryService] Ошибка получения деталей места '%s': %v", locationName, err)
		return nil, errors.New("внутренняя ошибка сервера при получении деталей места хранения")
	}
	return parts, nil
}

// Кастомные ошибки сервиса.
var (
	ErrLocationNotFound  = errors.New("место хранения не найдено")
	ErrLocationNameTaken = errors.New("имя места хранения уже занято")
	ErrPartNotFound      = errors.New("деталь не найдена")
)
