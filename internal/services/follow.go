package services

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"photoshare-backend/internal/models"
	"photoshare-backend/internal/store"
)

// FollowService mutates the follow edge list. The edge is stored only
// on the follower's record; no reverse follower list is maintained.
type FollowService struct {
	users  store.Users
	locks  *KeyLocks
	pusher *Pusher
}

// NewFollowService creates a new follow service. pusher may be nil.
func NewFollowService(users store.Users, locks *KeyLocks, pusher *Pusher) *FollowService {
	return &FollowService{
		users:  users,
		locks:  locks,
		pusher: pusher,
	}
}

// Follow appends otherUserID to userID's follow list.
func (s *FollowService) Follow(ctx context.Context, userID, otherUserID string) error {
	if userID == "" || otherUserID == "" {
		return &ValidationError{Reason: MsgMissingParameter}
	}

	unlock := s.locks.Lock(userID)
	defer unlock()

	user, followed, err := s.loadPair(ctx, userID, otherUserID)
	if err != nil {
		return err
	}

	if slices.Contains(user.FollowedFriendIDs, followed.UserID) {
		return &ConflictError{Reason: MsgAlreadyFollowing}
	}

	user.FollowedFriendIDs = append(user.FollowedFriendIDs, followed.UserID)
	if err := s.users.Put(ctx, user); err != nil {
		return err
	}

	s.pusher.Notify(followed.PushID, fmt.Sprintf("%s started following you", displayName(user)))
	return nil
}

// Unfollow removes every occurrence of otherUserID from userID's follow
// list. Removing all occurrences keeps the list clean even if duplicate
// entries were written by an external path.
func (s *FollowService) Unfollow(ctx context.Context, userID, otherUserID string) error {
	if userID == "" || otherUserID == "" {
		return &ValidationError{Reason: MsgMissingParameter}
	}

	unlock := s.locks.Lock(userID)
	defer unlock()

	user, followed, err := s.loadPair(ctx, userID, otherUserID)
	if err != nil {
		return err
	}

	if !slices.Contains(user.FollowedFriendIDs, followed.UserID) {
		return &ConflictError{Reason: MsgNotFollowing}
	}

	user.FollowedFriendIDs = slices.DeleteFunc(user.FollowedFriendIDs, func(id string) bool {
		return id == followed.UserID
	})
	return s.users.Put(ctx, user)
}

func (s *FollowService) loadPair(ctx context.Context, userID, otherUserID string) (*models.User, *models.User, error) {
	user, err := s.users.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil, &NotFoundError{Reason: MsgUserNotFound}
		}
		return nil, nil, err
	}

	followed, err := s.users.Get(ctx, otherUserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil, &NotFoundError{Reason: MsgOtherUserNotFound}
		}
		return nil, nil, err
	}

	return user, followed, nil
}

func displayName(u *models.User) string {
	if u.Name == "" {
		return "Someone"
	}
	return u.Name
}
