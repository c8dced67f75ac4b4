// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"encoding/xml"
	"io"
	"net/http"
)

// GetXML issues one GET against rawURL and decodes the response body
// into v. A transport failure or non-2xx status yields a *RequestError;
// a body that is not well-formed XML yields a *ParseError. A single
// failed attempt is returned to the caller as-is: no retry, no backoff.
func GetXML(ctx context.Context, client *http.Client, rawURL, userAgent string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return &RequestError{URL: rawURL, Err: err}
	}
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}

	resp, err := client.Do(req)
	if err != nil {
		return &RequestError{URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return &RequestError{URL: rawURL, StatusCode: resp.StatusCode}
	}

	if err := xml.NewDecoder(resp.Body).Decode(v); err != nil {
		return &ParseError{URL: rawURL, Err: err}
	}
	return nil
}
