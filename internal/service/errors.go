package service

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidRating      = errors.New("rating must be between 1 and 5")
	ErrEmptyContent       = errors.New("comment content cannot be empty")
	ErrParentNotFound     = errors.New("parent comment not found")
	ErrParentMismatch     = errors.New("parent comment belongs to a different recipe")
	ErrNestedReply        = errors.New("replies to replies are not supported")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
