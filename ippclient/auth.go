/* ipp-wire - IPP wire codec and typed attribute layer
 *
 * Copyright (C) 2020 and up by Alexander Pevzner (pzz@apevzner.com)
 * See LICENSE for license terms and conditions
 *
 * Authentication
 */

package ippclient

import (
	"fmt"
	"net/http"

	"github.com/OpenPrinting/ipp-wire/ipp"
)

// AuthMode selects how the client identifies itself
type AuthMode int

// Authentication modes
const (
	AuthNone           AuthMode = iota // Anonymous
	AuthRequestingUser                 // requesting-user-name only
	AuthBasic                          // requesting-user-name and HTTP basic
)

// ParseAuthMode parses the mode name: none, requesting-user or basic
func ParseAuthMode(s string) (AuthMode, error) {
	switch s {
	case "none":
		return AuthNone, nil
	case "requesting-user":
		return AuthRequestingUser, nil
	case "basic":
		return AuthBasic, nil
	}
	return AuthNone, fmt.Errorf("must be none, requesting-user or basic")
}

// String returns the mode name
func (mode AuthMode) String() string {
	switch mode {
	case AuthNone:
		return "none"
	case AuthRequestingUser:
		return "requesting-user"
	case AuthBasic:
		return "basic"
	}
	return fmt.Sprintf("auth-mode-%d", int(mode))
}

// Authentication holds the client credentials.
// nil *Authentication means AuthNone.
type Authentication struct {
	Mode     AuthMode
	User     string
	Password string // AuthBasic only
}

// userName returns the requesting-user-name to send, if any
func (auth *Authentication) userName() string {
	if auth == nil || auth.Mode == AuthNone {
		return ""
	}
	return auth.User
}

// applyRequest sets requesting-user-name of the IPP request
func (auth *Authentication) applyRequest(rq *ipp.Request) {
	if user := auth.userName(); user != "" {
		ipp.OperationAttrs.RequestingUserName.Set(rq.Operation(), user)
	}
}

// applyHTTP sets the Authorization header of the HTTP request
func (auth *Authentication) applyHTTP(hrq *http.Request) {
	if auth != nil && auth.Mode == AuthBasic {
		hrq.SetBasicAuth(auth.User, auth.Password)
	}
}
