package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrRefreshTokenInvalid     = errors.New("refresh token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
