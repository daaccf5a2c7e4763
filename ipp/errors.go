/* ipp-wire - IPP wire codec and typed attribute layer
 *
 * Copyright (C) 2020 and up by Alexander Pevzner (pzz@apevzner.com)
 * See LICENSE for license terms and conditions
 *
 * Common errors
 */

package ipp

import (
	"errors"
	"fmt"
)

// Decoding errors. DecodeError wraps one of these, so callers
// may use errors.Is to classify a failure.
var (
	ErrMalformedHeader         = errors.New("Malformed message header")
	ErrUnexpectedValueTag      = errors.New("Unexpected value tag")
	ErrUnexpectedDelimiterTag  = errors.New("Unexpected delimiter tag")
	ErrMissingEndOfAttributes  = errors.New("Missing end-of-attributes tag")
	ErrMissingEndOfCollection  = errors.New("Missing end-of-collection tag")
	ErrInvalidCollectionSyntax = errors.New("Invalid collection syntax")
	ErrMalformedValue          = errors.New("Malformed value")
)

// Encoding errors
var (
	ErrValueTooLong = errors.New("Attribute name or value too long")
	ErrInvalidData  = errors.New("Message is not well-formed")
)

// Request validation errors. ValidationError wraps one of these.
var (
	ErrInvalidOperationAttributes = errors.New("Invalid operation attributes")
	ErrInvalidTargetURI           = errors.New("Invalid target URI")
	ErrInvalidScheme              = errors.New("Invalid URI scheme")
)

// DecodeError describes a failure to decode a message
type DecodeError struct {
	Err     error  // One of ErrMalformedHeader etc
	Offset  int    // Byte offset where the error occurred
	Tag     Tag    // Offending tag, if any
	Context string // Optional details
}

// Error returns the error text, with the byte offset
func (e *DecodeError) Error() string {
	s := e.Err.Error()
	if e.Context != "" {
		s += ": " + e.Context
	}
	return fmt.Sprintf("%s at 0x%x", s, e.Offset)
}

// Unwrap returns the underlying sentinel error
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ValidationError describes a request that cannot be sent
type ValidationError struct {
	Err    error  // One of ErrInvalidOperationAttributes etc
	Reason string // Details
}

// Error returns the error text
func (e *ValidationError) Error() string {
	return e.Err.Error() + ": " + e.Reason
}

// Unwrap returns the underlying sentinel error
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// StatusError is an IPP response with an error status
type StatusError struct {
	Status  Status
	Message string // status-message, if the response has one
}

// Error returns the error text
func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("IPP: %s (%s)", e.Status, e.Message)
	}
	return "IPP: " + e.Status.String()
}
