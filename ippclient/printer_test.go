/* ipp-wire - IPP wire codec and typed attribute layer
 *
 * Copyright (C) 2020 and up by Alexander Pevzner (pzz@apevzner.com)
 * See LICENSE for license terms and conditions
 *
 * Tests for printer and job objects
 */

package ippclient

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/OpenPrinting/ipp-wire/ipp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// jobPrinter replies to job creation requests with job-id 17,
// and to requests for other jobs with client-error-not-found
func jobPrinter(rq *ipp.Request) *ipp.Response {
	rsp := ipp.NewResponse(rq.Version, ipp.StatusOk, rq.RequestID)

	switch rq.Op {
	case ipp.OpPrintJob, ipp.OpCreateJob:
		job := rsp.Groups.Group(ipp.TagJobGroup)
		ipp.JobDescriptionAttrs.JobID.Set(job, 17)
		ipp.JobDescriptionAttrs.JobState.Set(job, ipp.JobStatePending)

	case ipp.OpGetJobAttributes, ipp.OpCancelJob, ipp.OpSendDocument:
		id, _ := ipp.OperationAttrs.JobID.Get(rq.Operation())
		if id != 17 {
			rsp.Status = ipp.StatusErrorNotFound
			ipp.ResponseAttrs.StatusMessage.Set(rsp.Operation(),
				"no such job")
			break
		}

		job := rsp.Groups.Group(ipp.TagJobGroup)
		ipp.JobDescriptionAttrs.JobID.Set(job, 17)
		ipp.JobDescriptionAttrs.JobState.Set(job, ipp.JobStateProcessing)
	}

	return rsp
}

// Test Print-Job and operations on the created job
func TestPrinterPrintJob(t *testing.T) {
	fp := newFakePrinter(t, jobPrinter)
	p := NewPrinter(&Client{}, fp.uri("/ipp/print"),
		&Authentication{Mode: AuthRequestingUser, User: "carol"})

	job, rsp, err := p.PrintJob(context.Background(),
		strings.NewReader("hello, world\n"),
		JobOptions{
			JobName:        "greeting",
			DocumentFormat: "text/plain",
			Copies:         2,
			Sides:          ipp.SidesTwoSidedLongEdge,
			Template: func(attrs *ipp.Attributes) {
				ipp.JobTemplateAttrs.MediaCol.Set(attrs, ipp.MediaA4)
			},
		})
	require.NoError(t, err)
	require.NotNil(t, rsp)
	assert.Equal(t, 17, job.ID)

	ex := fp.last()
	assert.Equal(t, ipp.OpPrintJob, ex.rq.Op)
	assert.Equal(t, uint32(1), ex.rq.RequestID)
	assert.Equal(t, "hello, world\n", string(ex.doc))
	assert.Equal(t, []string{
		"attributes-charset",
		"attributes-natural-language",
		"printer-uri",
		"requesting-user-name",
		"job-name",
		"document-format",
	}, ex.rq.Operation().Names())

	copies, _ := ipp.JobTemplateAttrs.Copies.Get(ex.rq.Job())
	assert.Equal(t, 2, copies)
	sides, _ := ipp.JobTemplateAttrs.Sides.Get(ex.rq.Job())
	assert.Equal(t, ipp.SidesTwoSidedLongEdge, sides)
	media, _ := ipp.JobTemplateAttrs.MediaCol.Get(ex.rq.Job())
	assert.Equal(t, ipp.MediaA4, media)

	// Get-Job-Attributes
	rsp, err = job.GetJobAttributes(context.Background(), "job-state")
	require.NoError(t, err)
	state, _ := ipp.JobDescriptionAttrs.JobState.Get(rsp.Job())
	assert.Equal(t, ipp.JobStateProcessing, state)

	ex = fp.last()
	assert.Equal(t, uint32(2), ex.rq.RequestID)
	assert.Equal(t, []string{
		"attributes-charset",
		"attributes-natural-language",
		"printer-uri",
		"job-id",
		"requesting-user-name",
		"requested-attributes",
	}, ex.rq.Operation().Names())

	// Cancel-Job
	_, err = job.CancelJob(context.Background(), "changed my mind")
	require.NoError(t, err)
	ex = fp.last()
	assert.Equal(t, ipp.OpCancelJob, ex.rq.Op)
	msg, _ := ipp.OperationAttrs.Message.Get(ex.rq.Operation())
	assert.Equal(t, "changed my mind", msg)
}

// Test Create-Job followed by Send-Document
func TestPrinterCreateJob(t *testing.T) {
	fp := newFakePrinter(t, jobPrinter)
	p := NewPrinter(&Client{}, fp.uri("/ipp/print"), nil)
	p.Version = ipp.Version20
	p.Lang = "de"

	job, _, err := p.CreateJob(context.Background(),
		JobOptions{JobName: "two parts"})
	require.NoError(t, err)
	assert.Empty(t, fp.last().doc)
	assert.Nil(t, fp.last().rq.Groups.Lookup(ipp.TagJobGroup))

	_, err = job.SendDocument(context.Background(),
		strings.NewReader("part 1"), "text/plain", true)
	require.NoError(t, err)

	ex := fp.last()
	assert.Equal(t, ipp.OpSendDocument, ex.rq.Op)
	assert.Equal(t, ipp.Version20, ex.rq.Version)
	assert.Equal(t, "part 1", string(ex.doc))

	last, ok := ipp.OperationAttrs.LastDocument.Get(ex.rq.Operation())
	assert.True(t, ok)
	assert.True(t, last)

	lang, _ := ipp.OperationAttrs.AttributesNaturalLanguage.Get(ex.rq.Operation())
	assert.Equal(t, "de", lang)
}

// Test IPP status errors
func TestPrinterStatusError(t *testing.T) {
	fp := newFakePrinter(t, jobPrinter)
	p := NewPrinter(&Client{}, fp.uri("/ipp/print"), nil)

	rsp, err := p.Job(5).CancelJob(context.Background(), "")
	require.Error(t, err)
	require.NotNil(t, rsp)
	assert.Equal(t, ipp.StatusErrorNotFound, rsp.Status)

	var statusErr *ipp.StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, ipp.StatusErrorNotFound, statusErr.Status)
	assert.Equal(t, "no such job", statusErr.Message)

	ex := fp.last()
	assert.False(t, ex.rq.Operation().Has("message"))
}

// Test operations that don't create jobs
func TestPrinterQueries(t *testing.T) {
	fp := newFakePrinter(t, nil)
	p := NewPrinter(&Client{}, fp.uri("/ipp/print"), nil)

	// Validate-Job
	_, err := p.ValidateJob(context.Background(),
		JobOptions{DocumentFormat: "image/pwg-raster", Fidelity: true})
	require.NoError(t, err)
	ex := fp.last()
	assert.Equal(t, ipp.OpValidateJob, ex.rq.Op)
	fidelity, _ := ipp.OperationAttrs.IppAttributeFidelity.Get(ex.rq.Operation())
	assert.True(t, fidelity)

	// Get-Jobs
	_, err = p.GetJobs(context.Background(), "completed", "job-id", "job-state")
	require.NoError(t, err)
	ex = fp.last()
	which, _ := ipp.OperationAttrs.WhichJobs.Get(ex.rq.Operation())
	assert.Equal(t, "completed", which)
	attrs, _ := ipp.OperationAttrs.RequestedAttributes.Get(ex.rq.Operation())
	assert.Equal(t, []string{"job-id", "job-state"}, attrs)

	// Get-Printer-Attributes without requested-attributes
	_, err = p.GetPrinterAttributes(context.Background())
	require.NoError(t, err)
	assert.False(t, fp.last().rq.Operation().Has("requested-attributes"))

	// Job creation without job-id in response
	_, _, err = p.CreateJob(context.Background(), JobOptions{})
	assert.ErrorIs(t, err, ErrNoJobID)
}
