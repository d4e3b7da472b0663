package service

import "errors"

var (
	// ErrInvalidInput covers bad or missing request fields, including a
	// username shorter than four characters.
	ErrInvalidInput = errors.New("invalid_input")

	// ErrUsernameTaken is returned when registering a username that already
	// has an account.
	ErrUsernameTaken = errors.New("username_taken")

	// ErrUserNotFound is returned by login for an unknown username.
	ErrUserNotFound = errors.New("user_not_found")

	// ErrBadCredentials is returned by login when the password is wrong.
	ErrBadCredentials = errors.New("bad_credentials")

	// ErrPostNotFound is returned for operations on an unknown post id.
	ErrPostNotFound = errors.New("post_not_found")

	// ErrNotOwner is returned when a valid session tries to mutate someone
	// else's post.
	ErrNotOwner = errors.New("not_owner")

	// ErrUploadFailed wraps asset-store failures so the boundary can log
	// detail while clients get a generic failure.
	ErrUploadFailed = errors.New("upload_failed")
)
