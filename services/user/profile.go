package user

import (
	"fmt"

	"glamazon/models"

	"go.mongodb.org/mongo-driver/bson"
)

// profileProjection excludes the password hash from read paths.
var profileProjection = bson.M{"password_hash": 0}

func (s *DefaultUserService) GetProfile(userID string) (*models.User, error) {
	u, err := s.Repo.GetByIDWithProjection(userID, profileProjection)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if u == nil {
		return nil, ErrNotFound
	}
	return u, nil
}

// UpdateProfile applies the self-service editable fields only. Email and role
// are admin-managed.
func (s *DefaultUserService) UpdateProfile(userID string, upd ProfileUpdate) (*models.User, error) {
	update := bson.M{}
	if upd.Name != "" {
		update["name"] = upd.Name
	}
	if upd.Phone != "" {
		update["phone"] = upd.Phone
	}
	if len(update) == 0 {
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	if err := s.Repo.UpdateSetDocument(userID, update); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return s.GetProfile(userID)
}

// Heartbeat refreshes the caller's presence TTL.
func (s *DefaultUserService) Heartbeat(userID string) error {
	if s.Presence == nil {
		return nil
	}
	return s.Presence.Touch(userID)
}
