package trip

import (
	"context"

	"gorm.io/gorm"
)

// Repository is the read-only trip collaborator.
type Repository interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Trip{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}
