package models

import "errors"

// Business-rule errors. These are returned verbatim to the transport layer,
// which translates them into caller-visible status codes. Match with errors.Is.
var (
	// ErrDuplicateIdentity is returned when a username or email is already taken.
	ErrDuplicateIdentity = errors.New("username or email already in use")

	// ErrUnknownAccount is returned when an account id or username does not resolve.
	ErrUnknownAccount = errors.New("account not found")

	// ErrAlreadyLinked is returned when the (owner, friend) pair already exists.
	ErrAlreadyLinked = errors.New("friend link already exists")

	// ErrNotLinked is returned when unlinking a pair that does not exist.
	ErrNotLinked = errors.New("friend link not found")

	// ErrNotFriends is returned when a sender has no link to the receiver.
	// This is an authorization failure, distinct from a not-found failure.
	ErrNotFriends = errors.New("can only message friends")

	// ErrInsufficientBalance is returned when a debit exceeds the current balance.
	ErrInsufficientBalance = errors.New("insufficient coin balance")

	// ErrPrizeNotFound is returned when no matching available prize exists.
	ErrPrizeNotFound = errors.New("prize not found or unavailable")
)

// ErrStorageUnavailable marks storage-layer failures. Unlike the business-rule
// errors above it is eligible for one immediate retry before surfacing.
var ErrStorageUnavailable = errors.New("storage unavailable")
