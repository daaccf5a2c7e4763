/* ipp-wire - IPP wire codec and typed attribute layer
 *
 * Copyright (C) 2020 and up by Alexander Pevzner (pzz@apevzner.com)
 * See LICENSE for license terms and conditions
 *
 * Request and response builders
 */

package ipp

// Defaults for RequestOptions
const (
	DefaultCharset         = "utf-8"
	DefaultNaturalLanguage = "en"
	DefaultRequestID       = 1
)

// RequestOptions are the optional parameters of a new request.
// Zero fields take defaults.
type RequestOptions struct {
	Version            Version // Default is DefaultVersion
	RequestID          uint32  // Default is DefaultRequestID
	NaturalLanguage    string  // Default is DefaultNaturalLanguage
	RequestingUserName string  // Omitted if empty
}

// NewPrinterRequest creates a request addressed to the printer.
//
// The operation group starts with attributes-charset,
// attributes-natural-language and printer-uri, in this order.
// TargetURL relies on it.
func NewPrinterRequest(op Op, printerURI string, opt RequestOptions) *Request {
	rq := newRequest(op, printerURI, opt)
	opt.setUser(rq)
	return rq
}

// NewJobRequest creates a request addressed to the job, identified
// by printer-uri and job-id.
func NewJobRequest(op Op, printerURI string, jobID int,
	opt RequestOptions) *Request {
	rq := newRequest(op, printerURI, opt)
	OperationAttrs.JobID.Set(rq.Operation(), jobID)
	opt.setUser(rq)
	return rq
}

// newRequest creates request with the mandatory operation attributes
func newRequest(op Op, printerURI string, opt RequestOptions) *Request {
	rq := &Request{
		Version:   opt.Version,
		Op:        op,
		RequestID: opt.RequestID,
	}

	if rq.Version == 0 {
		rq.Version = DefaultVersion
	}
	if rq.RequestID == 0 {
		rq.RequestID = DefaultRequestID
	}

	lang := opt.NaturalLanguage
	if lang == "" {
		lang = DefaultNaturalLanguage
	}

	attrs := rq.Operation()
	OperationAttrs.AttributesCharset.Set(attrs, DefaultCharset)
	OperationAttrs.AttributesNaturalLanguage.Set(attrs, lang)
	OperationAttrs.PrinterURI.Set(attrs, printerURI)

	return rq
}

// setUser adds requesting-user-name, if any
func (opt RequestOptions) setUser(rq *Request) {
	if opt.RequestingUserName != "" {
		OperationAttrs.RequestingUserName.Set(rq.Operation(),
			opt.RequestingUserName)
	}
}

// NewResponse creates a response with the mandatory operation
// attributes
func NewResponse(version Version, status Status, requestID uint32) *Response {
	rsp := &Response{
		Version:   version,
		Status:    status,
		RequestID: requestID,
	}

	attrs := rsp.Groups.Group(TagOperationGroup)
	ResponseAttrs.AttributesCharset.Set(attrs, DefaultCharset)
	ResponseAttrs.AttributesNaturalLanguage.Set(attrs, DefaultNaturalLanguage)

	return rsp
}

// Target is an object requests are addressed to: a printer or a job.
// It knows which mandatory attributes its requests carry.
type Target interface {
	NewRequest(op Op) *Request
}

// PrinterTarget addresses requests to a printer
type PrinterTarget struct {
	URI     string         // printer-uri
	Options RequestOptions // Options for new requests
}

// NewRequest creates a request to the printer
func (p PrinterTarget) NewRequest(op Op) *Request {
	return NewPrinterRequest(op, p.URI, p.Options)
}

// JobTarget addresses requests to a job
type JobTarget struct {
	Printer PrinterTarget // Printer that owns the job
	JobID   int           // job-id
}

// NewRequest creates a request to the job
func (j JobTarget) NewRequest(op Op) *Request {
	return NewJobRequest(op, j.Printer.URI, j.JobID, j.Printer.Options)
}
