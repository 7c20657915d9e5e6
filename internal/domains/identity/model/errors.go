package model

import "errors"

var (
	ErrEmailAlreadyExists = errors.New("email already registered")
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// login responses do not reveal which emails are registered.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)
