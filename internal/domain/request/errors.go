package request

import "errors"

var (
	ErrRequestNotFound       = errors.New("request not found")
	ErrRequestAlreadyDecided = errors.New("request has already been decided")
	ErrInvalidDecision       = errors.New("decision must be approved or rejected")
)
