package models

import (
	"errors"
	"time"
)

type (
	// User is the account record. PasswordHash never leaves the service
	// layer; outward projections are built in internal/http/dto.
	User struct {
		ID           string
		Username     string
		Name         string
		PasswordHash string
		Blogs        []string // owned blog ids, insertion order
		CreatedAt    time.Time
	}

	Blog struct {
		ID        string
		Title     string
		Author    string
		URL       string
		Likes     int
		UserID    string // owner, source of truth for authorization
		CreatedAt time.Time
	}
)

var (
	ErrInvalidData        = errors.New("invalid input data")
	ErrUnfound            = errors.New("unfound data")
	ErrConflict           = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrTokenMissing       = errors.New("token missing")
	ErrTokenInvalid       = errors.New("token invalid")
	ErrForbidden          = errors.New("not the owner of the resource")
)
