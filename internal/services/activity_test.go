package services

import (
	"context"
	"errors"
	"testing"

	"photoshare-backend/internal/models"
	"photoshare-backend/internal/store"
)

func newActivityFixture(t *testing.T) (*ActivityService, *FollowService, *store.MemoryUsers, *store.MemoryPhotos) {
	t.Helper()
	users := store.NewMemoryUsers()
	photos := store.NewMemoryPhotos()
	locks := NewKeyLocks()
	return NewActivityService(users, photos), NewFollowService(users, locks, nil), users, photos
}

func seedUser(t *testing.T, users *store.MemoryUsers, id, name string) {
	t.Helper()
	u := &models.User{
		UserID:            id,
		Name:              name,
		Email:             id + "@example.com",
		FollowedFriendIDs: []string{},
		LikedPhotoIDs:     []string{},
	}
	if err := users.Put(context.Background(), u); err != nil {
		t.Fatalf("seed user %s: %v", id, err)
	}
}

func seedPhoto(t *testing.T, photos *store.MemoryPhotos, id, uploader, ts string, likedBy ...string) {
	t.Helper()
	p := &models.Photo{
		PhotoID:          id,
		UploadedUserID:   uploader,
		LikedUserIDs:     likedBy,
		OriginalURL:      "https://photos.example.com/" + id,
		CreatedTimestamp: ts,
	}
	if err := photos.Put(context.Background(), p); err != nil {
		t.Fatalf("seed photo %s: %v", id, err)
	}
}

func TestActivityFollowScenario(t *testing.T) {
	activity, follow, users, photos := newActivityFixture(t)
	ctx := context.Background()

	seedUser(t, users, "user-a", "A")
	seedUser(t, users, "user-b", "B")
	seedPhoto(t, photos, "p1", "user-b", "2024-05-01T10:00:00Z")

	feed, err := activity.GetActivity(ctx, "user-a")
	if err != nil {
		t.Fatalf("feed before follow: %v", err)
	}
	if len(feed) != 0 {
		t.Fatalf("feed before follow has %d entries, want 0", len(feed))
	}

	if err := follow.Follow(ctx, "user-a", "user-b"); err != nil {
		t.Fatalf("follow: %v", err)
	}

	feed, err = activity.GetActivity(ctx, "user-a")
	if err != nil {
		t.Fatalf("feed after follow: %v", err)
	}
	if len(feed) != 1 || feed[0].PhotoID != "p1" {
		t.Fatalf("feed after follow = %+v, want [p1]", feed)
	}

	if err := follow.Unfollow(ctx, "user-a", "user-b"); err != nil {
		t.Fatalf("unfollow: %v", err)
	}

	feed, err = activity.GetActivity(ctx, "user-a")
	if err != nil {
		t.Fatalf("feed after unfollow: %v", err)
	}
	if len(feed) != 0 {
		t.Fatalf("feed after unfollow has %d entries, want 0", len(feed))
	}
}

func TestActivityOrdersNewestFirst(t *testing.T) {
	activity, follow, users, photos := newActivityFixture(t)
	ctx := context.Background()

	seedUser(t, users, "reader", "Reader")
	seedUser(t, users, "poster", "Poster")
	seedPhoto(t, photos, "old", "poster", "2024-01-01T00:00:00Z")
	seedPhoto(t, photos, "new", "poster", "2024-06-01T00:00:00Z")
	seedPhoto(t, photos, "mid", "poster", "2024-03-01T00:00:00Z")

	if err := follow.Follow(ctx, "reader", "poster"); err != nil {
		t.Fatalf("follow: %v", err)
	}

	feed, err := activity.GetActivity(ctx, "reader")
	if err != nil {
		t.Fatalf("GetActivity: %v", err)
	}

	want := []string{"new", "mid", "old"}
	if len(feed) != len(want) {
		t.Fatalf("feed has %d entries, want %d", len(feed), len(want))
	}
	for i, id := range want {
		if feed[i].PhotoID != id {
			t.Errorf("feed[%d] = %s, want %s", i, feed[i].PhotoID, id)
		}
	}
}

func TestActivityExcludesOwnPhotosUnlessSelfFollowed(t *testing.T) {
	activity, follow, users, photos := newActivityFixture(t)
	ctx := context.Background()

	seedUser(t, users, "solo", "Solo")
	seedPhoto(t, photos, "mine", "solo", "2024-05-01T00:00:00Z")

	feed, err := activity.GetActivity(ctx, "solo")
	if err != nil {
		t.Fatalf("GetActivity: %v", err)
	}
	if len(feed) != 0 {
		t.Fatalf("own photos leaked into feed: %+v", feed)
	}

	if err := follow.Follow(ctx, "solo", "solo"); err != nil {
		t.Fatalf("self follow: %v", err)
	}
	feed, err = activity.GetActivity(ctx, "solo")
	if err != nil {
		t.Fatalf("GetActivity: %v", err)
	}
	if len(feed) != 1 || feed[0].PhotoID != "mine" {
		t.Fatalf("self-followed feed = %+v, want [mine]", feed)
	}
}

func TestActivityEnrichesUploaderAndLikers(t *testing.T) {
	activity, follow, users, photos := newActivityFixture(t)
	ctx := context.Background()

	seedUser(t, users, "reader", "Reader")
	seedUser(t, users, "poster", "Poster")
	seedUser(t, users, "fan", "Fan")
	// "ghost" liked the photo and was deleted since.
	seedPhoto(t, photos, "p1", "poster", "2024-05-01T00:00:00Z", "fan", "ghost")

	if err := follow.Follow(ctx, "reader", "poster"); err != nil {
		t.Fatalf("follow: %v", err)
	}

	feed, err := activity.GetActivity(ctx, "reader")
	if err != nil {
		t.Fatalf("GetActivity: %v", err)
	}
	if len(feed) != 1 {
		t.Fatalf("feed has %d entries, want 1", len(feed))
	}

	entry := feed[0]
	if entry.UploadedBy == nil || entry.UploadedBy.UserID != "poster" || entry.UploadedBy.Name != "Poster" {
		t.Errorf("uploaded_by = %+v, want poster summary", entry.UploadedBy)
	}
	if len(entry.LikedBy) != 1 || entry.LikedBy[0].UserID != "fan" {
		t.Errorf("liked_by = %+v, want [fan] with ghost skipped", entry.LikedBy)
	}
}

func TestActivityDanglingUploaderYieldsNilSummary(t *testing.T) {
	activity, _, users, photos := newActivityFixture(t)
	ctx := context.Background()

	seedUser(t, users, "reader", "Reader")
	// Reader follows an id whose account no longer exists.
	reader, _ := users.Get(ctx, "reader")
	reader.FollowedFriendIDs = []string{"deleted-user"}
	if err := users.Put(ctx, reader); err != nil {
		t.Fatalf("seed follow edge: %v", err)
	}
	seedPhoto(t, photos, "orphan", "deleted-user", "2024-05-01T00:00:00Z")

	feed, err := activity.GetActivity(ctx, "reader")
	if err != nil {
		t.Fatalf("GetActivity: %v", err)
	}
	if len(feed) != 1 {
		t.Fatalf("feed has %d entries, want 1", len(feed))
	}
	if feed[0].UploadedBy != nil {
		t.Errorf("uploaded_by = %+v, want nil for deleted uploader", feed[0].UploadedBy)
	}
}

func TestActivityUnknownUser(t *testing.T) {
	activity, _, _, _ := newActivityFixture(t)

	_, err := activity.GetActivity(context.Background(), "nobody")
	var nferr *NotFoundError
	if !errors.As(err, &nferr) {
		t.Fatalf("got %v, want NotFoundError", err)
	}
	if nferr.Reason != MsgUserNotFound {
		t.Errorf("reason = %q, want %q", nferr.Reason, MsgUserNotFound)
	}
}

func TestActivityValidatesUserID(t *testing.T) {
	activity, _, _, _ := newActivityFixture(t)

	_, err := activity.GetActivity(context.Background(), "")
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("got %v, want ValidationError", err)
	}
}
