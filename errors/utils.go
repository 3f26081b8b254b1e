package errors

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"

	"github.com/google/go-github/v52/github"
	"github.com/rotisserie/eris"
)

// Sentinel errors for every failure class a release run can hit.
// Callers wrap these with context; match them with Is.
var (
	NotFound       = eris.New("not found")
	AuthFailure    = eris.New("authentication failed")
	NetworkFailure = eris.New("network failure")
	MalformedInput = eris.New("malformed input")
	Unexpected     = eris.New("unexpected response")
)

func NotFoundError(err error, format string, args ...interface{}) error {
	return wrapClass(NotFound, err, format, args...)
}

func AuthFailureError(err error, format string, args ...interface{}) error {
	return wrapClass(AuthFailure, err, format, args...)
}

func NetworkFailureError(err error, format string, args ...interface{}) error {
	return wrapClass(NetworkFailure, err, format, args...)
}

func UnexpectedError(err error, format string, args ...interface{}) error {
	return wrapClass(Unexpected, err, format, args...)
}

func MalformedInputError(format string, args ...interface{}) error {
	return eris.Wrapf(MalformedInput, format, args...)
}

// wrapClass attaches the class sentinel to cause. Both stay reachable, so callers
// can match the class with Is and still use As on the original error.
func wrapClass(class, cause error, format string, args ...interface{}) error {
	if cause == nil {
		return eris.Wrapf(class, format, args...)
	}
	return &classError{
		msg:   fmt.Sprintf(format, args...),
		class: class,
		cause: cause,
	}
}

type classError struct {
	msg   string
	class error
	cause error
}

func (e *classError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.msg, e.class, e.cause)
}

func (e *classError) Is(target error) bool {
	return e.class == target || eris.Is(e.class, target)
}

func (e *classError) Unwrap() error {
	return e.cause
}

// ClassifyGithubError maps an error returned by go-github onto the error taxonomy.
// Errors that do not come from an HTTP exchange are returned unchanged.
func ClassifyGithubError(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	var (
		rateLimitErr *github.RateLimitError
		abuseErr     *github.AbuseRateLimitError
		responseErr  *github.ErrorResponse
		urlErr       *url.Error
		netErr       net.Error
	)
	switch {
	case errors.As(err, &rateLimitErr), errors.As(err, &abuseErr):
		return AuthFailureError(err, format, args...)
	case errors.As(err, &responseErr) && responseErr.Response != nil:
		switch responseErr.Response.StatusCode {
		case http.StatusNotFound:
			return NotFoundError(err, format, args...)
		case http.StatusUnauthorized, http.StatusForbidden:
			return AuthFailureError(err, format, args...)
		}
		return UnexpectedError(err, format, args...)
	case errors.As(err, &urlErr), errors.As(err, &netErr):
		return NetworkFailureError(err, format, args...)
	}
	return eris.Wrapf(err, format, args...)
}

func Wrapf(err error, format string, args ...interface{}) error {
	return eris.Wrapf(err, format, args...)
}

func Errorf(format string, args ...interface{}) error {
	return eris.Errorf(format, args...)
}

func New(text string) error {
	return eris.New(text)
}

func Is(err, target error) bool {
	return eris.Is(err, target) || errors.Is(err, target)
}

func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
