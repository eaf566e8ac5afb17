package services

import (
	"context"
	"sort"

	"photoshare-backend/internal/models"
	"photoshare-backend/internal/store"
)

// ActivityService derives a user's activity feed: photos uploaded by
// the users they follow, newest first, with uploader and liker
// summaries attached.
type ActivityService struct {
	users  store.Users
	photos store.Photos
}

// NewActivityService creates a new activity service
func NewActivityService(users store.Users, photos store.Photos) *ActivityService {
	return &ActivityService{
		users:  users,
		photos: photos,
	}
}

// GetActivity builds the feed for userID.
//
// A single users scan serves both the caller lookup and the summary
// projections through an id-keyed index, so a caller missing from the
// table reports "User cannot be found" rather than a direct-lookup 404.
// Photos are ordered by descending string compare of created_timestamp
// exactly as stored; chronological correctness of that ordering is
// owned by whoever writes the field.
func (s *ActivityService) GetActivity(ctx context.Context, userID string) ([]models.ActivityEntry, error) {
	if userID == "" {
		return nil, &ValidationError{Reason: MsgMissingParameter}
	}

	users, err := s.users.Scan(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*models.User, len(users))
	for i := range users {
		byID[users[i].UserID] = &users[i]
	}

	user, ok := byID[userID]
	if !ok {
		return nil, &NotFoundError{Reason: MsgUserNotFound}
	}

	followed := make(map[string]bool, len(user.FollowedFriendIDs))
	for _, id := range user.FollowedFriendIDs {
		followed[id] = true
	}

	photos, err := s.photos.Scan(ctx)
	if err != nil {
		return nil, err
	}

	var relevant []models.Photo
	for i := range photos {
		if followed[photos[i].UploadedUserID] {
			relevant = append(relevant, photos[i])
		}
	}

	sort.SliceStable(relevant, func(i, j int) bool {
		return relevant[i].CreatedTimestamp > relevant[j].CreatedTimestamp
	})

	entries := make([]models.ActivityEntry, 0, len(relevant))
	for i := range relevant {
		p := &relevant[i]
		entry := models.ActivityEntry{
			PhotoID:          p.PhotoID,
			OriginalURL:      p.OriginalURL,
			UploadedUserID:   p.UploadedUserID,
			LikedBy:          make([]models.UserSummary, 0, len(p.LikedUserIDs)),
			Labels:           p.Labels,
			ModerationLabels: p.ModerationLabels,
			CreatedTimestamp: p.CreatedTimestamp,
		}

		if uploader, ok := byID[p.UploadedUserID]; ok {
			summary := uploader.Summary()
			entry.UploadedBy = &summary
		}

		// Ids that no longer resolve to a user (deleted accounts) are
		// skipped rather than surfaced as holes.
		for _, likerID := range p.LikedUserIDs {
			if liker, ok := byID[likerID]; ok {
				entry.LikedBy = append(entry.LikedBy, liker.Summary())
			}
		}

		entries = append(entries, entry)
	}

	return entries, nil
}
