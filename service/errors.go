package service

import "errors"

var (
	ErrFillAllFields = errors.New("fill all fields")
	ErrInvalidAmount = errors.New("amount must be a positive number")
	ErrNotLoaded     = errors.New("account state is not loaded")
)
