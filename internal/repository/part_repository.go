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

// PartRepository определяет методы для работы с деталями.
type PartRepository interface {
	CreatePart(ctx context.Context, part *models.Part) (int64, error)
	GetParts(ctx context.Context) ([]models.Part, error)
	GetPartByID(ctx context.Context, id int64) (*models.Part, error)
	GetPartsByLocation(ctx context.Context, locationName string) ([]models.Part, error)
}

// postgresPartRepository реализует PartRepository для PostgreSQL.
type postgresPartRepository struct {
	db *sqlx.DB
}

// NewPostgresPartRepository создает новый экземпляр репозитория деталей.
func NewPostgresPartRepository(db *sqlx.DB) PartRepository {
	return &postgresPartRepository{db: db}
}

// CreatePart создает новую деталь.
// Ссылочную целостность проверяет сама БД: вставка с несуществующим
// именем места хранения нарушает внешний ключ и возвращает
// ErrLocationNotFound, отдельной проверки перед вставкой нет.
func (r *postgresPartRepository) CreatePart(ctx context.Context, part *models.Part) (int64, error) {
	query := `INSERT INTO parts (part_name, part_details, location_name, container, "row", "position") VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	var partID int64

	err := r.db.QueryRowxContext(ctx, query,
		part.PartName, part.PartDetails, part.LocationName, part.Container, part.Row, part.Position).Scan(&partID)
	if err != nil {
		// Нарушение внешнего ключа - указанного места хранения не существует
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolationCode {
			log.Printf("[PartRepo] Ошибка создания детали '%s': место хранения '%s' не существует",
				part.PartName, part.LocationName)
			return 0, ErrLocationNotFound
		}
		log.Printf("[PartRepo] Непредвиденная ошибка при создании детали '%s': %v", part.PartName, err)
		return 0, fmt.Errorf("ошибка выполнения запроса на создание детали: %w", err)
	}

	log.Printf("[PartRepo] Деталь '%s' успешно создана с ID %d", part.PartName, partID)
	return partID, nil
}

// GetParts возвращает все детали, новые - первыми.
func (r *postgresPartRepository) GetParts(ctx context.Context) ([]models.Part, error) {
	query := `SELECT id, part_name, part_details, location_name, container, "row", "position", created_at FROM parts ORDER BY created_at DESC, id DESC`
	parts := []models.Part{}

	if err := r.db.SelectContext(ctx, &parts, query); err != nil {
		log.Printf("[PartRepo] Ошибка при получении списка деталей: %v", err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение деталей: %w", err)
	}

	log.Printf("[PartRepo] Получено деталей: %d", len(parts))
	return parts, nil
}

// GetPartByID находит деталь по ее ID.
// Возвращает запись или ErrPartNotFound, если запись отсутствует.
func (r *postgresPartRepository) GetPartByID(ctx context.Context, id int64) (*models.Part, error) {
	query := `SELECT id, part_name, part_details, location_name, container, "row", "position", created_at FROM parts WHERE id=$1`
	var part models.Part

	err := r.db.GetContext(ctx, &part, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Printf("[PartRepo] Деталь с ID %d не найдена", id)
			return nil, ErrPartNotFound
		}
		log.Printf("[PartRepo] Ошибка при поиске детали с ID %d: %v", id, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение детали: %w", err)
	}

	log.Printf("[PartRepo] Найдена деталь '%s' (ID: %d)", part.PartName, part.ID)
	return &part, nil
}

// GetPartsByLocation возвращает все детали с указанным именем места хранения.
// Сравнение точное, с учетом регистра. Новые детали - первыми.
func (r *postgresPartRepository) GetPartsByLocation(ctx context.Context, locationName string) ([]models.Part, error) {
	query := `SELECT id, part_name, part_details, location_name, container, "row", "position", created_at FROM parts WHERE location_name=$1 ORDER BY created_at DESC, id DESC`
	parts := []models.Part{}

	if err := r.db.SelectContext(ctx, &parts, query, locationName); err != nil {
		log.Printf("[PartRepo] Ошибка при получении деталей места '%s': %v", locationName, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение деталей места хранения: %w", err)
	}

	log.Printf("[PartRepo] Получено деталей для места '%s': %d", locationName, len(parts))
	return parts, nil
}

// Кастомная ошибка репозитория.
var (
	ErrPartNotFound = errors.New("деталь не найдена")
)
