package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/maynagashev/partsorganizer/internal/models"
)

// LocationRepository определяет методы для работы с местами хранения.
type LocationRepository interface {
	CreateLocation(ctx context.Context, location *models.Location) (int64, error)
	GetLocations(ctx context.Context) ([]models.Location, error)
	GetLocationByID(ctx context.Context, id int64) (*models.Location, error)
}

// postgresLocationRepository реализует LocationRepository для PostgreSQL.
type postgresLocationRepository struct {
	db *sqlx.DB
}

// NewPostgresLocationRepository создает новый экземпляр репозитория мест хранения.
func NewPostgresLocationRepository(db *sqlx.DB) LocationRepository {
	return &postgresLocationRepository{db: db}
}

// CreateLocation создает новое место хранения.
// Возвращает ID созданной записи или ошибку.
// Уникальность имени обеспечивается ограничением БД.
func (r *postgresLocationRepository) CreateLocation(ctx context.Context, location *models.Location) (int64, error) {
	query := `INSERT INTO locations (location_name, container, "row", "position") VALUES ($1, $2, $3, $4) RETURNING id`
	var locationID int64

	err := r.db.QueryRowxContext(ctx, query,
		location.LocationName, location.Container, location.Row, location.Position).Scan(&locationID)
	if err != nil {
		// Проверяем на ошибку нарушения уникальности (duplicate key)
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationCode {
			log.Printf("[LocationRepo] Ошибка создания: имя места '%s' уже занято", location.LocationName)
			return 0, ErrLocationNameTaken
		}
		log.Printf("[LocationRepo] Непредвиденная ошибка при создании места '%s': %v", location.LocationName, err)
		return 0, fmt.Errorf("ошибка выполнения запроса на создание места хранения: %w", err)
	}

	log.Printf("[LocationRepo] Место хранения '%s' успешно создано с ID %d", location.LocationName, locationID)
	return locationID, nil
}

// GetLocations возвращает все места хранения, новые - первыми.
func (r *postgresLocationRepository) GetLocations(ctx context.Context) ([]models.Location, error) {
	query := `SELECT id, location_name, container, "row", "position", created_at FROM locations ORDER BY created_at DESC, id DESC`
	locations := []models.Location{}

	if err := r.db.SelectContext(ctx, &locations, query); err != nil {
		log.Printf("[LocationRepo] Ошибка при получении списка мест хранения: %v", err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение мест хранения: %w", err)
	}

	log.Printf("[LocationRepo] Получено мест хранения: %d", len(locations))
	return locations, nil
}

// GetLocationByID находит место хранения по его ID.
// Возвращает запись или ErrLocationNotFound, если запись отсутствует.
func (r *postgresLocationRepository) GetLocationByID(ctx context.Context, id int64) (*models.Location, error) {
	query := `SELECT id, location_name, container, "row", "position", created_at FROM locations WHERE id=$1`
	var location models.Location

	err := r.db.GetContext(ctx, &location, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Printf("[LocationRepo] Место хранения с ID %d не найдено", id)
			return nil, ErrLocationNotFound
		}
		log.Printf("[LocationRepo] Ошибка при поиске места хранения с ID %d: %v", id, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение места хранения: %w", err)
	}

	log.Printf("[LocationRepo] Найдено место хранения '%s' (ID: %d)", location.LocationName, location.ID)
	return &location, nil
}

// Кастомные ошибки репозитория.
var (
	ErrLocationNotFound  = errors.New("место хранения не найдено")
	ErrLocationNameTaken = errors.New("имя места хранения уже занято")
)
