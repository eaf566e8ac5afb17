package services

import (
	"context"
	"time"

	"photoshare-backend/internal/models"
	"photoshare-backend/internal/store"

	"github.com/google/uuid"
)

// AccountService handles account business logic: listing, lookup,
// creation, sign-in and deletion of users.
type AccountService struct {
	users store.Users
	locks *KeyLocks
}

// NewAccountService creates a new account service
func NewAccountService(users store.Users, locks *KeyLocks) *AccountService {
	return &AccountService{
		users: users,
		locks: locks,
	}
}

// ListUsers returns the page of user records delivered by the store.
func (s *AccountService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.users.Scan(ctx)
}

// GetUser retrieves a single user by id. A miss surfaces as
// store.ErrNotFound.
func (s *AccountService) GetUser(ctx context.Context, id string) (*models.User, error) {
	return s.users.Get(ctx, id)
}

// CreateUser registers a new account. Email and password are required;
// the email must not belong to an existing user. The generated user_id
// is returned.
func (s *AccountService) CreateUser(ctx context.Context, user *models.User) (string, error) {
	if user.Email == "" || user.Password == "" {
		return "", &ValidationError{Reason: MsgMissingParameter}
	}

	// Serialize same-email creations in this process. The uniqueness
	// check is still scan-then-insert against the store, so concurrent
	// writers in other processes can slip through.
	unlock := s.locks.Lock("email/" + user.Email)
	defer unlock()

	existing, err := s.users.Scan(ctx)
	if err != nil {
		return "", err
	}
	for i := range existing {
		if existing[i].Email == user.Email {
			return "", &ConflictError{Reason: MsgEmailExists}
		}
	}

	user.UserID = uuid.New().String()
	user.CreatedTimestamp = time.Now().UTC()
	user.UploadedPhotoIDs = []string{}
	user.LikedPhotoIDs = []string{}
	user.FollowedFriendIDs = []string{}

	if err := s.users.Put(ctx, user); err != nil {
		return "", err
	}
	return user.UserID, nil
}

// SignIn resolves credentials to a user_id. The first record matching
// the email is checked for an exact password match; anything else is
// ErrUnauthorized. Passwords are stored and compared in plaintext.
func (s *AccountService) SignIn(ctx context.Context, email, password string) (string, error) {
	users, err := s.users.Scan(ctx)
	if err != nil {
		return "", err
	}
	for i := range users {
		if users[i].Email == email {
			if users[i].Password == password {
				return users[i].UserID, nil
			}
			return "", ErrUnauthorized
		}
	}
	return "", ErrUnauthorized
}

// DeleteUser removes the user record. Deleting an id that does not
// exist is a no-op success; references to the id left in other users'
// lists and in photos are not cleaned up.
func (s *AccountService) DeleteUser(ctx context.Context, id string) error {
	return s.users.Delete(ctx, id)
}
