/* ipp-wire - IPP wire codec and typed attribute layer
 *
 * Copyright (C) 2020 and up by Alexander Pevzner (pzz@apevzner.com)
 * See LICENSE for license terms and conditions
 *
 * Printer and job objects
 */

package ippclient

import (
	"context"
	"io"

	"github.com/OpenPrinting/ipp-wire/ipp"
)

// Object is a printer or a job, as seen by the client
type Object interface {
	ipp.Target

	// Execute sends the request and returns the response. IPP
	// error statuses are reported as *ipp.StatusError, along
	// with the response.
	Execute(ctx context.Context, rq *ipp.Request,
		doc io.Reader) (*ipp.Response, error)
}

// JobOptions are the parameters of a new job
type JobOptions struct {
	JobName        string                // job-name
	DocumentName   string                // document-name
	DocumentFormat string                // document-format, MIME type
	Copies         int                   // copies, 0 to omit
	Sides          ipp.Sides             // sides, "" to omit
	Media          string                // media, "" to omit
	Fidelity       bool                  // ipp-attribute-fidelity
	Template       func(*ipp.Attributes) // Extra job template attributes
}

// apply adds options to the request
func (opt *JobOptions) apply(rq *ipp.Request) {
	op := rq.Operation()
	if opt.JobName != "" {
		ipp.OperationAttrs.JobName.Set(op, opt.JobName)
	}
	if opt.Fidelity {
		ipp.OperationAttrs.IppAttributeFidelity.Set(op, true)
	}
	if opt.DocumentName != "" {
		ipp.OperationAttrs.DocumentName.Set(op, opt.DocumentName)
	}
	if opt.DocumentFormat != "" {
		ipp.OperationAttrs.DocumentFormat.Set(op, opt.DocumentFormat)
	}

	if opt.Copies == 0 && opt.Sides == "" && opt.Media == "" &&
		opt.Template == nil {
		return
	}

	job := rq.Job()
	if opt.Copies != 0 {
		ipp.JobTemplateAttrs.Copies.Set(job, opt.Copies)
	}
	if opt.Sides != "" {
		ipp.JobTemplateAttrs.Sides.Set(job, opt.Sides)
	}
	if opt.Media != "" {
		ipp.JobTemplateAttrs.Media.Set(job, opt.Media)
	}
	if opt.Template != nil {
		opt.Template(job)
	}
}

// Printer is a remote printer
type Printer struct {
	URI     string          // printer-uri
	Client  *Client         // Client to use
	Auth    *Authentication // Credentials, nil for anonymous
	Version ipp.Version     // Protocol version, 0 for default
	Lang    string          // attributes-natural-language, "" for default
}

// NewPrinter creates a printer object
func NewPrinter(c *Client, uri string, auth *Authentication) *Printer {
	return &Printer{URI: uri, Client: c, Auth: auth}
}

// target returns ipp.PrinterTarget for the next request
func (p *Printer) target() ipp.PrinterTarget {
	return ipp.PrinterTarget{
		URI: p.URI,
		Options: ipp.RequestOptions{
			Version:            p.Version,
			RequestID:          p.Client.NextRequestID(),
			NaturalLanguage:    p.Lang,
			RequestingUserName: p.Auth.userName(),
		},
	}
}

// NewRequest creates a request to the printer
func (p *Printer) NewRequest(op ipp.Op) *ipp.Request {
	return p.target().NewRequest(op)
}

// Execute sends the request to the printer
func (p *Printer) Execute(ctx context.Context, rq *ipp.Request,
	doc io.Reader) (*ipp.Response, error) {
	rsp, err := p.Client.Execute(ctx, rq, p.Auth, doc)
	if err != nil {
		return nil, err
	}
	return rsp, rsp.StatusError()
}

// GetPrinterAttributes queries printer attributes. If attrs is
// empty, the printer returns its default set.
func (p *Printer) GetPrinterAttributes(ctx context.Context,
	attrs ...string) (*ipp.Response, error) {
	rq := p.NewRequest(ipp.OpGetPrinterAttributes)
	ipp.OperationAttrs.RequestedAttributes.Set(rq.Operation(), attrs)
	return p.Execute(ctx, rq, nil)
}

// PrintJob creates a job and sends the single document
func (p *Printer) PrintJob(ctx context.Context, doc io.Reader,
	opt JobOptions) (*Job, *ipp.Response, error) {
	rq := p.NewRequest(ipp.OpPrintJob)
	opt.apply(rq)
	return p.newJob(p.Execute(ctx, rq, doc))
}

// ValidateJob checks job options without creating a job
func (p *Printer) ValidateJob(ctx context.Context,
	opt JobOptions) (*ipp.Response, error) {
	rq := p.NewRequest(ipp.OpValidateJob)
	opt.apply(rq)
	return p.Execute(ctx, rq, nil)
}

// CreateJob creates a job without documents. Documents are added
// with Job.SendDocument.
func (p *Printer) CreateJob(ctx context.Context,
	opt JobOptions) (*Job, *ipp.Response, error) {
	rq := p.NewRequest(ipp.OpCreateJob)
	opt.apply(rq)
	return p.newJob(p.Execute(ctx, rq, nil))
}

// GetJobs lists printer jobs. which is the which-jobs keyword
// ("completed", "not-completed"), "" for default.
func (p *Printer) GetJobs(ctx context.Context, which string,
	attrs ...string) (*ipp.Response, error) {
	rq := p.NewRequest(ipp.OpGetJobs)
	if which != "" {
		ipp.OperationAttrs.WhichJobs.Set(rq.Operation(), which)
	}
	ipp.OperationAttrs.RequestedAttributes.Set(rq.Operation(), attrs)
	return p.Execute(ctx, rq, nil)
}

// Job returns the printer's job object, by job-id
func (p *Printer) Job(id int) *Job {
	return &Job{Printer: p, ID: id}
}

// newJob creates Job from the job creation response
func (p *Printer) newJob(rsp *ipp.Response, err error) (*Job, *ipp.Response, error) {
	if err != nil {
		return nil, rsp, err
	}

	id, ok := ipp.JobDescriptionAttrs.JobID.Get(rsp.Job())
	if !ok {
		return nil, rsp, ErrNoJobID
	}

	return p.Job(id), rsp, nil
}

// Job is a job on a remote printer
type Job struct {
	Printer *Printer // Owner printer
	ID      int      // job-id
}

// NewRequest creates a request to the job
func (j *Job) NewRequest(op ipp.Op) *ipp.Request {
	return ipp.JobTarget{Printer: j.Printer.target(), JobID: j.ID}.
		NewRequest(op)
}

// Execute sends the request to the job
func (j *Job) Execute(ctx context.Context, rq *ipp.Request,
	doc io.Reader) (*ipp.Response, error) {
	return j.Printer.Execute(ctx, rq, doc)
}

// GetJobAttributes queries job attributes
func (j *Job) GetJobAttributes(ctx context.Context,
	attrs ...string) (*ipp.Response, error) {
	rq := j.NewRequest(ipp.OpGetJobAttributes)
	ipp.OperationAttrs.RequestedAttributes.Set(rq.Operation(), attrs)
	return j.Execute(ctx, rq, nil)
}

// CancelJob cancels the job. The message, if not empty, is passed
// to the printer.
func (j *Job) CancelJob(ctx context.Context,
	message string) (*ipp.Response, error) {
	rq := j.NewRequest(ipp.OpCancelJob)
	if message != "" {
		ipp.OperationAttrs.Message.Set(rq.Operation(), message)
	}
	return j.Execute(ctx, rq, nil)
}

// SendDocument adds a document to the job created by CreateJob.
// last must be true for the last document of the job.
func (j *Job) SendDocument(ctx context.Context, doc io.Reader,
	format string, last bool) (*ipp.Response, error) {
	rq := j.NewRequest(ipp.OpSendDocument)
	if format != "" {
		ipp.OperationAttrs.DocumentFormat.Set(rq.Operation(), format)
	}
	ipp.OperationAttrs.LastDocument.Set(rq.Operation(), last)
	return j.Execute(ctx, rq, doc)
}

var (
	_ Object = (*Printer)(nil)
	_ Object = (*Job)(nil)
)
