package domain

import "errors"

// Common domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInternalServer     = errors.New("internal server error")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// MemberErrors
var (
	ErrMemberNotFound        = errors.New("member not found")
	ErrInvalidMemberStatus   = errors.New("invalid member status")
	ErrInvalidMembershipType = errors.New("invalid membership type")
)

// PaymentErrors
var (
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
)
