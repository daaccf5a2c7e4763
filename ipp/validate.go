/* ipp-wire - IPP wire codec and typed attribute layer
 *
 * Copyright (C) 2020 and up by Alexander Pevzner (pzz@apevzner.com)
 * See LICENSE for license terms and conditions
 *
 * Request validation and target URL
 */

package ipp

import (
	"fmt"
	"net"
	"net/url"
)

// DefaultPort is the IANA-assigned IPP port
const DefaultPort = "631"

// targetSchemes maps IPP URI schemes to HTTP schemes
var targetSchemes = map[string]string{
	"ipp":  "http",
	"ipps": "https",
}

// TargetURL returns the HTTP URL the request must be posted to.
//
// The check is positional: the first group must be the operation
// group, and its first three attributes must be attributes-charset,
// attributes-natural-language and printer-uri (or job-uri), exactly
// in this order, as RFC 8011 requires and the builders produce.
// Requests that violate this are not sent.
//
// ipp:// maps to http://, ipps:// to https://, and port 631 is used
// if the URI has none.
func (r *Request) TargetURL() (string, error) {
	if len(r.Groups) == 0 || r.Groups[0].Tag != TagOperationGroup {
		return "", r.invalid(ErrInvalidOperationAttributes,
			"first group must be operation attributes")
	}

	attrs := r.Groups[0].Attrs
	for i, names := range [][]string{
		{"attributes-charset"},
		{"attributes-natural-language"},
		{"printer-uri", "job-uri"},
	} {
		name, _, ok := attrs.At(i)
		if !ok || (name != names[0] && (len(names) == 1 || name != names[1])) {
			return "", r.invalid(ErrInvalidOperationAttributes,
				fmt.Sprintf("attribute #%d must be %s", i+1, names[0]))
		}
	}

	_, attr, _ := attrs.At(2)
	uri, ok := attr.Value.(URI)
	if !ok {
		return "", r.invalid(ErrInvalidTargetURI,
			fmt.Sprintf("target must be uri, not %s", attr.Value.Tag()))
	}

	u, err := url.Parse(string(uri))
	if err != nil || u.Host == "" {
		return "", r.invalid(ErrInvalidTargetURI, fmt.Sprintf("%q", uri))
	}

	scheme, ok := targetSchemes[u.Scheme]
	if !ok {
		return "", r.invalid(ErrInvalidScheme, fmt.Sprintf("%q", u.Scheme))
	}

	port := u.Port()
	if port == "" {
		port = DefaultPort
	}

	u.Scheme = scheme
	u.Host = net.JoinHostPort(u.Hostname(), port)

	return u.String(), nil
}

func (r *Request) invalid(err error, reason string) error {
	return &ValidationError{Err: err, Reason: reason}
}
