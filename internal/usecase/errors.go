package usecase

import "errors"

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("resource not found")
	ErrMatchFinished = errors.New("match already finished")
	ErrPeriodState   = errors.New("invalid period state transition")
)
