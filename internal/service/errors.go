package service

import "errors"

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailInUse         = errors.New("email already in use")
	ErrInvalidToken       = errors.New("invalid token")
	ErrSessionNotFound    = errors.New("chat session not found")
	ErrAIUnavailable      = errors.New("ai gateway failed")
	ErrTopicListNotFound  = errors.New("topic list not found")
	ErrTopicNotFound      = errors.New("topic not found")
	ErrInvalidTopicData   = errors.New("invalid topic data")
)
