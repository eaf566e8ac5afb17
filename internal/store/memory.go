package store

import (
	"context"
	"sync"

	"photoshare-backend/internal/models"
)

// MemoryUsers is an in-memory Users client. It backs the tests and can
// stand in for DynamoDB during local development.
type MemoryUsers struct {
	mu    sync.RWMutex
	items map[string]models.User
}

// NewMemoryUsers creates an empty in-memory users store.
func NewMemoryUsers() *MemoryUsers {
	return &MemoryUsers{items: make(map[string]models.User)}
}

// Get retrieves a user by id.
func (s *MemoryUsers) Get(ctx context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	u = cloneUser(u)
	return &u, nil
}

// Scan returns all user records.
func (s *MemoryUsers) Scan(ctx context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := make([]models.User, 0, len(s.items))
	for _, u := range s.items {
		users = append(users, cloneUser(u))
	}
	return users, nil
}

// Put saves a user record.
func (s *MemoryUsers) Put(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[user.UserID] = cloneUser(*user)
	return nil
}

// Delete removes a user record. Deleting a missing key is a no-op.
func (s *MemoryUsers) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, id)
	return nil
}

// MemoryPhotos is an in-memory Photos client.
type MemoryPhotos struct {
	mu    sync.RWMutex
	items map[string]models.Photo
}

// NewMemoryPhotos creates an empty in-memory photos store.
func NewMemoryPhotos() *MemoryPhotos {
	return &MemoryPhotos{items: make(map[string]models.Photo)}
}

// Get retrieves a photo by id.
func (s *MemoryPhotos) Get(ctx context.Context, id string) (*models.Photo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	p = clonePhoto(p)
	return &p, nil
}

// Scan returns all photo records.
func (s *MemoryPhotos) Scan(ctx context.Context) ([]models.Photo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	photos := make([]models.Photo, 0, len(s.items))
	for _, p := range s.items {
		photos = append(photos, clonePhoto(p))
	}
	return photos, nil
}

// Put saves a photo record.
func (s *MemoryPhotos) Put(ctx context.Context, photo *models.Photo) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[photo.PhotoID] = clonePhoto(*photo)
	return nil
}

// Delete removes a photo record. Deleting a missing key is a no-op.
func (s *MemoryPhotos) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, id)
	return nil
}

// Records are copied on the way in and out so callers never share slice
// backing arrays with the store.
func cloneUser(u models.User) models.User {
	u.UploadedPhotoIDs = append([]string(nil), u.UploadedPhotoIDs...)
	u.LikedPhotoIDs = append([]string(nil), u.LikedPhotoIDs...)
	u.FollowedFriendIDs = append([]string(nil), u.FollowedFriendIDs...)
	return u
}

func clonePhoto(p models.Photo) models.Photo {
	p.LikedUserIDs = append([]string(nil), p.LikedUserIDs...)
	p.Labels = append([]string(nil), p.Labels...)
	p.ModerationLabels = append([]string(nil), p.ModerationLabels...)
	return p
}
