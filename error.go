package wordfreq

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EINVALID     = "invalid"
	ENOTFOUND    = "not_found"
	EINTERNAL    = "internal"
	ENETWORK     = "network"
	ESTATUS      = "status"
	ECONTENTTYPE = "content_type"
	EDECODE      = "decode"
	EPARSE       = "parse"
	ESEGMENT     = "segment"
)

// Error represents an application-specific error.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("wordfreq error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper function to return an Error with a given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return the error text.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// ContentTypeUnavailable is reported when no response was received.
const ContentTypeUnavailable = "N/A"

// DocumentError records the URL and response content type of the document
// a pipeline error occurred on.
type DocumentError struct {
	URL         string
	ContentType string
	Err         error
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("document %s: %v", e.URL, e.Err)
}

func (e *DocumentError) Unwrap() error {
	return e.Err
}

// Failure is the user-visible form of a pipeline error.
type Failure struct {
	Message     string
	URL         string
	ContentType string
}

// NewFailure converts err into a Failure for url. The content type comes
// from a wrapped DocumentError when a response was read.
func NewFailure(err error, url string) Failure {
	f := Failure{
		Message:     ErrorMessage(err),
		URL:         url,
		ContentType: ContentTypeUnavailable,
	}
	var fe *DocumentError
	if errors.As(err, &fe) && fe.ContentType != "" {
		f.ContentType = fe.ContentType
	}
	return f
}

// Lines returns the three display lines: message, URL and content type.
func (f Failure) Lines() []string {
	return []string{
		"error: " + f.Message,
		"URL: " + f.URL,
		"Content-Type: " + f.ContentType,
	}
}
