// domain/service/errors.go
package service

import "errors"

// Error kinds surfaced by the lifecycle operations. Everything else that comes
// out of a service is a persistence failure wrapped with %w.
var (
	ErrUserNotFound         = errors.New("user not found")
	ErrRequestNotFound      = errors.New("friend request not found")
	ErrRequestAlreadyExists = errors.New("friend request already exists")
	ErrSelfRequest          = errors.New("cannot send friend request to yourself")
	ErrAlreadyFriends       = errors.New("users are already friends")
	ErrConversationNotFound = errors.New("conversation not found")

	ErrAccountExists      = errors.New("account already exists")
	ErrAccountNotFound    = errors.New("account does not exist")
	ErrWrongPassword      = errors.New("incorrect password")
	ErrAccountNotVerified = errors.New("account is not verified")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrEmailDelivery      = errors.New("could not deliver email")
)
