package user

import (
	"context"

	"gorm.io/gorm"
)

// Repository is the read-only user collaborator.
type Repository interface {
	Exists(ctx context.Context, firebaseUID string) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Exists(ctx context.Context, firebaseUID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&User{}).
		Where("firebase_uid = ?", firebaseUID).
		Count(&count).Error
	return count > 0, err
}
