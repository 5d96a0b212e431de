package types

import (
	"errors"
	"net/http"
)

type ErrorCode string

func (e ErrorCode) String() string {
	return string(e)
}

const (
	// InternalServiceError is the error code for internal service errors
	InternalServiceError ErrorCode = "INTERNAL_SERVICE_ERROR"
	// ValidationError is the error code for validation errors of the request shape
	ValidationError ErrorCode = "VALIDATION_ERROR"
	// NotFound is the error code for not found errors on read paths
	NotFound ErrorCode = "NOT_FOUND"

	// ProposalNotFound is returned when the referenced proposal id is unknown
	ProposalNotFound ErrorCode = "PROPOSAL_NOT_FOUND"
	// InvalidAmount is returned on a non-positive stake amount or voting period
	InvalidAmount ErrorCode = "INVALID_AMOUNT"
	// AlreadyVoted is returned on a duplicate (proposal, voter) vote
	AlreadyVoted ErrorCode = "ALREADY_VOTED"
	// InsufficientStake is returned when the caller's stake is below the
	// proposal-creation minimum, or zero at voting time
	InsufficientStake ErrorCode = "INSUFFICIENT_STAKE"
	// ProposalNotActive is returned when voting outside the proposal window or
	// on an already executed proposal
	ProposalNotActive ErrorCode = "PROPOSAL_NOT_ACTIVE"
	// InvalidState is returned when the execution preconditions are unmet
	InvalidState ErrorCode = "INVALID_STATE"
	// InvalidTitle is returned on an empty or oversized proposal title
	InvalidTitle ErrorCode = "INVALID_TITLE"
	// InvalidDescription is returned on an empty or oversized proposal description
	InvalidDescription ErrorCode = "INVALID_DESCRIPTION"

	// NotAuthorized, ProposalExpired and InvalidVote are reserved codes carried
	// over from the original contract interface. No code path returns them:
	// execution is deliberately open to any caller, window expiry reports
	// PROPOSAL_NOT_ACTIVE, and a vote direction is a two-valued boolean.
	NotAuthorized   ErrorCode = "NOT_AUTHORIZED"
	ProposalExpired ErrorCode = "PROPOSAL_EXPIRED"
	InvalidVote     ErrorCode = "INVALID_VOTE"
)

// Error wraps an error with the HTTP status and stable error code the API
// surfaces to callers. Services return *types.Error from every operation.
type Error struct {
	Err        error
	StatusCode int
	ErrorCode  ErrorCode
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.ErrorCode.String()
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewError(statusCode int, errorCode ErrorCode, err error) *Error {
	return &Error{
		Err:        err,
		StatusCode: statusCode,
		ErrorCode:  errorCode,
	}
}

func NewErrorWithMsg(statusCode int, errorCode ErrorCode, msg string) *Error {
	return NewError(statusCode, errorCode, errors.New(msg))
}

func NewInternalServiceError(err error) *Error {
	return &Error{
		Err:        err,
		StatusCode: http.StatusInternalServerError,
		ErrorCode:  InternalServiceError,
	}
}
