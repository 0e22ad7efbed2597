package message

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Repository handles all DB operations for chat messages. Exists is
// also what the file service consumes to validate message_id on
// upload.
type Repository interface {
	Create(ctx context.Context, m *Message) error
	GetByID(ctx context.Context, tripID, id int64) (*Message, error)
	ListByTrip(ctx context.Context, tripID int64) ([]*Message, error)
	Delete(ctx context.Context, tripID, id int64) error

	// Exists reports whether a message exists. tripID == 0 skips the
	// trip scoping.
	Exists(ctx context.Context, tripID, id int64) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, m *Message) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *repository) GetByID(ctx context.Context, tripID, id int64) (*Message, error) {
	var m Message
	err := r.db.WithContext(ctx).
		Where("id = ? AND trip_id = ?", id, tripID).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMessageNotFound
	}
	return &m, err
}

func (r *repository) ListByTrip(ctx context.Context, tripID int64) ([]*Message, error) {
	var msgs []*Message
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripID).
		Order("created_at ASC").
		Find(&msgs).Error
	return msgs, err
}

func (r *repository) Delete(ctx context.Context, tripID, id int64) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND trip_id = ?", id, tripID).
		Delete(&Message{}).Error
}

func (r *repository) Exists(ctx context.Context, tripID, id int64) (bool, error) {
	q := r.db.WithContext(ctx).Model(&Message{}).Where("id = ?", id)
	if tripID != 0 {
		q = q.Where("trip_id = ?", tripID)
	}
	var count int64
	err := q.Count(&count).Error
	return count > 0, err
}
