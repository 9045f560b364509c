package posgrest

import (
	"context"

	"gorm.io/gorm"
)

// repository is a generic GORM-based repository implementation.
// It provides standard persistence operations for any entity type T.
type repository[T interface{}] struct {
	db *gorm.DB
}

// New creates a new generic repository instance for type T.
// The repository uses the provided GORM database connection for all operations.
func New[T interface{}](db *gorm.DB) *repository[T] {
	return &repository[T]{
		db,
	}
}

// Create inserts a new entity into the database.
func (r *repository[T]) Create(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Create(&entity).Error
}

// GetByID retrieves a single entity by its ID.
func (r *repository[T]) GetByID(ctx context.Context, id string) (*T, error) {
	var entity T
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&entity).Error; err != nil {
		return nil, err
	}
	return &entity, nil
}

// GetFirstBy retrieves the first entity matching a condition, e.g.
// GetFirstBy(ctx, "external_id = ?", sessionID).
func (r *repository[T]) GetFirstBy(ctx context.Context, query string, value interface{}) (*T, error) {
	var entity T
	if err := r.db.WithContext(ctx).Where(query, value).First(&entity).Error; err != nil {
		return nil, err
	}
	return &entity, nil
}

// UpdateBy applies column updates to all entities matching a condition.
func (r *repository[T]) UpdateBy(ctx context.Context, query string, value interface{}, updates map[string]interface{}) error {
	var entity T
	return r.db.WithContext(ctx).Model(&entity).Where(query, value).Updates(updates).Error
}
