package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")
	ErrUserInactive        = errors.New("user account is inactive")
	ErrTokenIsExpired      = errors.New("token is expired or invalid")
)
