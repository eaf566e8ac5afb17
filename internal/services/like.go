package services

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"photoshare-backend/internal/models"
	"photoshare-backend/internal/store"
)

// LikeService maintains the mutual like relationship, mirrored on the
// user's liked_photo_id and the photo's liked_user_id.
type LikeService struct {
	users  store.Users
	photos store.Photos
	locks  *KeyLocks
	pusher *Pusher
}

// NewLikeService creates a new like service. pusher may be nil.
func NewLikeService(users store.Users, photos store.Photos, locks *KeyLocks, pusher *Pusher) *LikeService {
	return &LikeService{
		users:  users,
		photos: photos,
		locks:  locks,
		pusher: pusher,
	}
}

// Like records userID's like of photoID on both records. The user is
// saved first, then the photo; the two writes are not transactional, so
// a failure between them leaves the pair out of sync until retried.
func (s *LikeService) Like(ctx context.Context, userID, photoID string) error {
	if userID == "" || photoID == "" {
		return &ValidationError{Reason: MsgMissingParameter}
	}

	unlock := s.locks.LockPair(userID, photoID)
	defer unlock()

	user, photo, err := s.loadPair(ctx, userID, photoID)
	if err != nil {
		return err
	}

	if slices.Contains(user.LikedPhotoIDs, photo.PhotoID) {
		return &ConflictError{Reason: MsgAlreadyLiked}
	}

	user.LikedPhotoIDs = append(user.LikedPhotoIDs, photo.PhotoID)
	if err := s.users.Put(ctx, user); err != nil {
		return err
	}

	photo.LikedUserIDs = append(photo.LikedUserIDs, user.UserID)
	if err := s.photos.Put(ctx, photo); err != nil {
		return err
	}

	s.notifyOwner(ctx, photo, user)
	return nil
}

// Unlike removes the like from both records, with the same write order
// and non-atomicity as Like.
func (s *LikeService) Unlike(ctx context.Context, userID, photoID string) error {
	if userID == "" || photoID == "" {
		return &ValidationError{Reason: MsgMissingParameter}
	}

	unlock := s.locks.LockPair(userID, photoID)
	defer unlock()

	user, photo, err := s.loadPair(ctx, userID, photoID)
	if err != nil {
		return err
	}

	if !slices.Contains(user.LikedPhotoIDs, photo.PhotoID) {
		return &ConflictError{Reason: MsgNotLiked}
	}

	user.LikedPhotoIDs = slices.DeleteFunc(user.LikedPhotoIDs, func(id string) bool {
		return id == photo.PhotoID
	})
	if err := s.users.Put(ctx, user); err != nil {
		return err
	}

	photo.LikedUserIDs = slices.DeleteFunc(photo.LikedUserIDs, func(id string) bool {
		return id == user.UserID
	})
	return s.photos.Put(ctx, photo)
}

func (s *LikeService) loadPair(ctx context.Context, userID, photoID string) (*models.User, *models.Photo, error) {
	user, err := s.users.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil, &NotFoundError{Reason: MsgUserNotFound}
		}
		return nil, nil, err
	}

	photo, err := s.photos.Get(ctx, photoID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil, &NotFoundError{Reason: MsgPhotoNotFound}
		}
		return nil, nil, err
	}

	return user, photo, nil
}

func (s *LikeService) notifyOwner(ctx context.Context, photo *models.Photo, liker *models.User) {
	if s.pusher == nil || photo.UploadedUserID == "" || photo.UploadedUserID == liker.UserID {
		return
	}
	owner, err := s.users.Get(ctx, photo.UploadedUserID)
	if err != nil {
		return
	}
	s.pusher.Notify(owner.PushID, fmt.Sprintf("%s liked your photo", displayName(liker)))
}
