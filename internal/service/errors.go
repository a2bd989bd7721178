package service

import "errors"

var (
	ErrInvalidReference   = errors.New("invalid reference")
	ErrRoomFull           = errors.New("room is full")
	ErrAlreadyCheckedOut  = errors.New("tenant already checked out")
	ErrAlreadyPaid        = errors.New("invoice already paid")
	ErrCapacityBelowUsage = errors.New("capacity is lower than current occupancy")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired refresh token")
)
