package domain

import "errors"

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"

	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")
)
