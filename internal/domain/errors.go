package domain

import "errors"

var (
	// ErrNotFound signals that a record or a remote Discord entity is gone.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists signals a uniqueness violation on record creation.
	ErrAlreadyExists = errors.New("already exists")

	// ErrSelfJoin is returned when a user tries to join their own surprise channel.
	ErrSelfJoin = errors.New("cannot join your own surprise channel")

	// ErrNoChannel is returned when the targeted record has no surprise channel.
	ErrNoChannel = errors.New("no surprise channel")
)
