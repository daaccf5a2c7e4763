/* ipp-wire - IPP wire codec and typed attribute layer
 *
 * Copyright (C) 2020 and up by Alexander Pevzner (pzz@apevzner.com)
 * See LICENSE for license terms and conditions
 *
 * IPP status codes
 */

package ipp

import (
	"fmt"
)

// Status is an IPP status-code (RFC 8011, Appendix B)
type Status uint16

// Status codes
const (
	StatusOk                       Status = 0x0000 // successful-ok
	StatusOkIgnoredOrSubstituted   Status = 0x0001 // successful-ok-ignored-or-substituted-attributes
	StatusOkConflicting            Status = 0x0002 // successful-ok-conflicting-attributes
	StatusRedirectionOtherSite     Status = 0x0300 // redirection-other-site
	StatusErrorBadRequest          Status = 0x0400 // client-error-bad-request
	StatusErrorForbidden           Status = 0x0401 // client-error-forbidden
	StatusErrorNotAuthenticated    Status = 0x0402 // client-error-not-authenticated
	StatusErrorNotAuthorized       Status = 0x0403 // client-error-not-authorized
	StatusErrorNotPossible         Status = 0x0404 // client-error-not-possible
	StatusErrorTimeout             Status = 0x0405 // client-error-timeout
	StatusErrorNotFound            Status = 0x0406 // client-error-not-found
	StatusErrorGone                Status = 0x0407 // client-error-gone
	StatusErrorRequestEntity       Status = 0x0408 // client-error-request-entity-too-large
	StatusErrorRequestValue        Status = 0x0409 // client-error-request-value-too-long
	StatusErrorDocumentFormat      Status = 0x040a // client-error-document-format-not-supported
	StatusErrorAttributesOrValues  Status = 0x040b // client-error-attributes-or-values-not-supported
	StatusErrorURIScheme           Status = 0x040c // client-error-uri-scheme-not-supported
	StatusErrorCharset             Status = 0x040d // client-error-charset-not-supported
	StatusErrorConflicting         Status = 0x040e // client-error-conflicting-attributes
	StatusErrorCompressionNotSupp  Status = 0x040f // client-error-compression-not-supported
	StatusErrorCompressionError    Status = 0x0410 // client-error-compression-error
	StatusErrorDocumentFormatError Status = 0x0411 // client-error-document-format-error
	StatusErrorDocumentAccess      Status = 0x0412 // client-error-document-access-error
	StatusErrorInternal            Status = 0x0500 // server-error-internal-error
	StatusErrorOperationNotSupp    Status = 0x0501 // server-error-operation-not-supported
	StatusErrorServiceUnavailable  Status = 0x0502 // server-error-service-unavailable
	StatusErrorVersionNotSupported Status = 0x0503 // server-error-version-not-supported
	StatusErrorDevice              Status = 0x0504 // server-error-device-error
	StatusErrorTemporary           Status = 0x0505 // server-error-temporary-error
	StatusErrorNotAcceptingJobs    Status = 0x0506 // server-error-not-accepting-jobs
	StatusErrorBusy                Status = 0x0507 // server-error-busy
	StatusErrorJobCanceled         Status = 0x0508 // server-error-job-canceled
	StatusErrorMultipleDocsNotSupp Status = 0x0509 // server-error-multiple-document-jobs-not-supported
)

var statusNames = map[Status]string{
	StatusOk:                       "successful-ok",
	StatusOkIgnoredOrSubstituted:   "successful-ok-ignored-or-substituted-attributes",
	StatusOkConflicting:            "successful-ok-conflicting-attributes",
	StatusRedirectionOtherSite:     "redirection-other-site",
	StatusErrorBadRequest:          "client-error-bad-request",
	StatusErrorForbidden:           "client-error-forbidden",
	StatusErrorNotAuthenticated:    "client-error-not-authenticated",
	StatusErrorNotAuthorized:       "client-error-not-authorized",
	StatusErrorNotPossible:         "client-error-not-possible",
	StatusErrorTimeout:             "client-error-timeout",
	StatusErrorNotFound:            "client-error-not-found",
	StatusErrorGone:                "client-error-gone",
	StatusErrorRequestEntity:       "client-error-request-entity-too-large",
	StatusErrorRequestValue:        "client-error-request-value-too-long",
	StatusErrorDocumentFormat:      "client-error-document-format-not-supported",
	StatusErrorAttributesOrValues:  "client-error-attributes-or-values-not-supported",
	StatusErrorURIScheme:           "client-error-uri-scheme-not-supported",
	StatusErrorCharset:             "client-error-charset-not-supported",
	StatusErrorConflicting:         "client-error-conflicting-attributes",
	StatusErrorCompressionNotSupp:  "client-error-compression-not-supported",
	StatusErrorCompressionError:    "client-error-compression-error",
	StatusErrorDocumentFormatError: "client-error-document-format-error",
	StatusErrorDocumentAccess:      "client-error-document-access-error",
	StatusErrorInternal:            "server-error-internal-error",
	StatusErrorOperationNotSupp:    "server-error-operation-not-supported",
	StatusErrorServiceUnavailable:  "server-error-service-unavailable",
	StatusErrorVersionNotSupported: "server-error-version-not-supported",
	StatusErrorDevice:              "server-error-device-error",
	StatusErrorTemporary:           "server-error-temporary-error",
	StatusErrorNotAcceptingJobs:    "server-error-not-accepting-jobs",
	StatusErrorBusy:                "server-error-busy",
	StatusErrorJobCanceled:         "server-error-job-canceled",
	StatusErrorMultipleDocsNotSupp: "server-error-multiple-document-jobs-not-supported",
}

// String returns the status name, or its hex code if unknown
func (status Status) String() string {
	if s, ok := statusNames[status]; ok {
		return s
	}
	return fmt.Sprintf("0x%4.4x", uint16(status))
}

// StatusClass is the class of a status code, derived from its range
type StatusClass int

// Status classes
const (
	StatusClassInvalid StatusClass = iota
	StatusClassSuccessful
	StatusClassInformational
	StatusClassRedirection
	StatusClassClientError
	StatusClassServerError
)

// Class returns the class of the status code
func (status Status) Class() StatusClass {
	switch {
	case status <= 0x00ff:
		return StatusClassSuccessful
	case status >= 0x0100 && status <= 0x01ff:
		return StatusClassInformational
	case status >= 0x0300 && status <= 0x03ff:
		return StatusClassRedirection
	case status >= 0x0400 && status <= 0x04ff:
		return StatusClassClientError
	case status >= 0x0500 && status <= 0x05ff:
		return StatusClassServerError
	}
	return StatusClassInvalid
}

// IsError reports whether status belongs to the client or server
// error class
func (status Status) IsError() bool {
	c := status.Class()
	return c == StatusClassClientError || c == StatusClassServerError
}

// String returns the class name
func (c StatusClass) String() string {
	switch c {
	case StatusClassSuccessful:
		return "successful"
	case StatusClassInformational:
		return "informational"
	case StatusClassRedirection:
		return "redirection"
	case StatusClassClientError:
		return "client-error"
	case StatusClassServerError:
		return "server-error"
	}
	return "invalid"
}
