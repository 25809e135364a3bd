package service

import "errors"

// Ошибки бизнес-логики. Хендлеры мапят их в HTTP-статусы на границе,
// внутрь сервисов коды ответов не просачиваются.
var (
	ErrEmailTaken       = errors.New("user already in database")
	ErrMissingField     = errors.New("no password or username provided")
	ErrValidationFailed = errors.New("validation failed")
	ErrUserNotFound     = errors.New("no such user")
	ErrWrongCredentials = errors.New("wrong password or email")
	ErrEmptyItem        = errors.New("no body found in request")
	ErrIndexOutOfRange  = errors.New("item index out of range")
)
