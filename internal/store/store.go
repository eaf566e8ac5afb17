// Package store provides the document-store clients for the users and
// photos tables: load by key, full scan, save, delete.
package store

import (
	"context"
	"errors"

	"photoshare-backend/internal/models"
)

// ErrNotFound is returned when no record exists under the given key.
var ErrNotFound = errors.New("record not found")

// Users is the document-store client for user records.
type Users interface {
	Get(ctx context.Context, id string) (*models.User, error)
	Scan(ctx context.Context) ([]models.User, error)
	Put(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id string) error
}

// Photos is the document-store client for photo records.
type Photos interface {
	Get(ctx context.Context, id string) (*models.Photo, error)
	Scan(ctx context.Context) ([]models.Photo, error)
	Put(ctx context.Context, photo *models.Photo) error
	Delete(ctx context.Context, id string) error
}
