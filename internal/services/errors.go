package services

import "errors"

// Response bodies for domain failures. The wording is part of the API
// contract and is asserted by clients, so it is kept verbatim.
const (
	MsgMissingParameter  = "Missing required parameter"
	MsgEmailExists       = "Email already exists"
	MsgUserNotFound      = "User cannot be found"
	MsgOtherUserNotFound = "Other user cannot be found"
	MsgPhotoNotFound     = "Photo cannot be found"
	MsgAlreadyFollowing  = "You have already follow this user"
	MsgNotFollowing      = "You have not followed this user"
	MsgAlreadyLiked      = "You have already liked this photo"
	MsgNotLiked          = "You have not liked this photo"
)

// ValidationError reports a missing or empty required field.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// NotFoundError reports a referenced record that does not exist.
type NotFoundError struct {
	Reason string
}

func (e *NotFoundError) Error() string { return e.Reason }

// ConflictError reports an operation that contradicts the current state
// of a relationship: duplicate email, already following, not liked yet.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string { return e.Reason }

// ErrUnauthorized is returned by SignIn when no record matches the
// presented credentials.
var ErrUnauthorized = errors.New("unauthorized")
