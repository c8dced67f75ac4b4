// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared by the E-utilities client.
package httputil

import "fmt"

// RequestError reports a failed HTTP exchange: either the transport
// failed outright (Err is set, StatusCode is zero) or the server
// answered with a non-2xx status (StatusCode is set, Err is nil).
type RequestError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *RequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("request %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("request %s: HTTP %d", e.URL, e.StatusCode)
}

func (e *RequestError) Unwrap() error { return e.Err }

// ParseError reports a response body that did not decode as XML.
// Missing individual elements are not parse errors; those degrade to
// zero values in the decoded struct.
type ParseError struct {
	URL string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing response from %s: %v", e.URL, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
