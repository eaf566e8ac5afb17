package models

import "time"

// User represents a registered account together with its social edges.
// Relationship lists are stored inline on the user record; the follow
// list lives only on the follower's side, while likes are mirrored on
// both the user and the photo.
type User struct {
	UserID            string    `json:"user_id" dynamodbav:"user_id"`
	Name              string    `json:"name" dynamodbav:"name"`
	Email             string    `json:"email" dynamodbav:"email"`
	PhoneNo           string    `json:"phone_no" dynamodbav:"phone_no"`
	Password          string    `json:"password" dynamodbav:"password"`
	PushID            string    `json:"push_id,omitempty" dynamodbav:"push_id,omitempty"`
	UploadedPhotoIDs  []string  `json:"uploaded_photo_id" dynamodbav:"uploaded_photo_id"`
	LikedPhotoIDs     []string  `json:"liked_photo_id" dynamodbav:"liked_photo_id"`
	FollowedFriendIDs []string  `json:"followed_friend_id" dynamodbav:"followed_friend_id"`
	CreatedTimestamp  time.Time `json:"created_timestamp" dynamodbav:"created_timestamp"`
}

// Photo represents an uploaded photo. Records are written by the upload
// pipeline; this service only mutates liked_user_id.
type Photo struct {
	PhotoID          string   `json:"photo_id" dynamodbav:"photo_id"`
	UploadedUserID   string   `json:"uploaded_user_id" dynamodbav:"uploaded_user_id"`
	LikedUserIDs     []string `json:"liked_user_id" dynamodbav:"liked_user_id"`
	OriginalURL      string   `json:"original_url" dynamodbav:"original_url"`
	ThumbnailURL     string   `json:"thumbnail_url" dynamodbav:"thumbnail_url"`
	Labels           []string `json:"labels" dynamodbav:"labels"`
	ModerationLabels []string `json:"moderation_labels" dynamodbav:"moderation_labels"`
	CreatedTimestamp string   `json:"created_timestamp" dynamodbav:"created_timestamp"`
}

// UserSummary is the public slice of a user embedded in feed entries.
type UserSummary struct {
	UserID  string `json:"user_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	PhoneNo string `json:"phone_no"`
}

// ActivityEntry is one feed item: a photo uploaded by a followed user,
// enriched with uploader and liker summaries.
type ActivityEntry struct {
	PhotoID          string        `json:"photo_id"`
	OriginalURL      string        `json:"original_url"`
	UploadedUserID   string        `json:"uploaded_user_id"`
	UploadedBy       *UserSummary  `json:"uploaded_by"`
	LikedBy          []UserSummary `json:"liked_by"`
	Labels           []string      `json:"labels"`
	ModerationLabels []string      `json:"moderation_labels"`
	CreatedTimestamp string        `json:"created_timestamp"`
}

// Summary projects the fields of a user that are safe to embed in
// another user's feed.
func (u *User) Summary() UserSummary {
	return UserSummary{
		UserID:  u.UserID,
		Name:    u.Name,
		Email:   u.Email,
		PhoneNo: u.PhoneNo,
	}
}
