package message

import (
	"context"
	"strings"
	"time"
)

// TripStore is implemented by the trip repository.
type TripStore interface {
	Exists(ctx context.Context, tripID int64) (bool, error)
}

// UserStore is implemented by the user repository.
type UserStore interface {
	Exists(ctx context.Context, firebaseUID string) (bool, error)
}

// Service handles chat-message business logic. Trips and users are
// owned by other services; here they are only checked for existence.
type Service struct {
	repo  Repository
	trips TripStore
	users UserStore
}

func NewService(repo Repository, trips TripStore, users UserStore) *Service {
	return &Service{repo: repo, trips: trips, users: users}
}

// Post creates a message in a trip. The trip and the sending user must
// exist, and the message must carry text or a file attachment.
func (s *Service) Post(ctx context.Context, tripID int64, userID, body string, fileURL, fileType, fileName *string) (*Message, error) {
	exists, err := s.trips.Exists(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrTripNotFound
	}

	exists, err = s.users.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	if strings.TrimSpace(body) == "" && (fileURL == nil || *fileURL == "") {
		return nil, ErrEmptyMessage
	}

	msg := &Message{
		TripID:    tripID,
		UserID:    userID,
		Body:      body,
		FileURL:   fileURL,
		FileType:  fileType,
		FileName:  fileName,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// List returns all messages of a trip, oldest first.
func (s *Service) List(ctx context.Context, tripID int64) ([]*Message, error) {
	exists, err := s.trips.Exists(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrTripNotFound
	}
	return s.repo.ListByTrip(ctx, tripID)
}

// Delete removes a message. The lookup is scoped to the trip, so a
// message id from another trip reports not found. The referenced file,
// if any, is left on disk.
func (s *Service) Delete(ctx context.Context, tripID, messageID int64) error {
	if _, err := s.repo.GetByID(ctx, tripID, messageID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, tripID, messageID)
}
