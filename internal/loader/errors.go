package loader

import (
	"errors"
	"fmt"
)

var (
	// ErrFetch wraps every failure to obtain the raw source bytes
	ErrFetch = errors.New("fetch failed")
	// ErrParse wraps every failure to turn the source into rows
	ErrParse = errors.New("parse failed")
)

// StatusError non-successful HTTP response while fetching the source
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
}

// Is lets errors.Is(err, ErrFetch) match a StatusError
func (e *StatusError) Is(target error) bool {
	return target == ErrFetch
}
