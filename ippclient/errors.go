/* ipp-wire - IPP wire codec and typed attribute layer
 *
 * Copyright (C) 2020 and up by Alexander Pevzner (pzz@apevzner.com)
 * See LICENSE for license terms and conditions
 *
 * Common errors
 */

package ippclient

import (
	"errors"
	"fmt"
)

// Error values for ippclient
var (
	ErrResponseTooLarge = errors.New("IPP response too large")
	ErrNoPrinter        = errors.New("Printer URI not configured")
	ErrNoJobID          = errors.New("Response doesn't contain job-id")
)

// HTTPError is returned when the server replies with HTTP status
// other than 200 OK. The response body is not decoded in this case.
type HTTPError struct {
	StatusCode int    // HTTP status code
	Status     string // HTTP status line, e.g. "404 Not Found"
}

// Error returns the error text
func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP: %s", e.Status)
}
