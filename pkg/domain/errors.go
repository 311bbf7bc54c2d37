package domain

import "errors"

var (
	// ErrBookletNotFound is returned when a targeted booklet is absent or
	// deactivated.
	ErrBookletNotFound = errors.New("booklet not found")
	// ErrBookletPercentNotFound is returned when a targeted interest tier
	// is absent or deactivated.
	ErrBookletPercentNotFound = errors.New("booklet percent not found")
	// ErrCurrentAccountNotFound is returned when a targeted current account
	// is absent or deactivated.
	ErrCurrentAccountNotFound = errors.New("current account not found")
	// ErrUserNotFound is returned when a targeted user is absent or
	// deactivated.
	ErrUserNotFound = errors.New("user not found")
	// ErrPictureNotFound is returned when a targeted picture is absent.
	ErrPictureNotFound = errors.New("picture not found")
	// ErrUserUnauthorized is returned on failed credential checks.
	ErrUserUnauthorized = errors.New("user unauthorized")
)
