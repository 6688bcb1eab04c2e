package common

import "errors"

// Business logic errors
var (
	// General errors
	ErrNotFound  = errors.New("resource not found")
	ErrForbidden = errors.New("forbidden")

	// Car errors
	ErrCarNotFound    = errors.New("car not found")
	ErrSellerNotFound = errors.New("seller not found")

	// Favorite errors
	ErrAlreadyFavorited = errors.New("car already favorited")
	ErrNotFavorited     = errors.New("car not favorited")

	// Auth errors
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("expired token")

	// Validation errors
	ErrInvalidInput = errors.New("invalid input")
)
