/* ipp-wire - IPP wire codec and typed attribute layer
 *
 * Copyright (C) 2020 and up by Alexander Pevzner (pzz@apevzner.com)
 * See LICENSE for license terms and conditions
 *
 * Tests for ipp-tool commands
 */

package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/OpenPrinting/ipp-wire/ipp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runTool runs ipp-tool with args and returns its output.
// Configuration is taken from conf only, if not empty.
func runTool(t *testing.T, conf string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("IPP_LOG_LEVEL", "")

	if conf == "" {
		conf = filepath.Join(t.TempDir(), "none.conf")
	}

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(append([]string{"--conf", conf, "--log-level", "disabled"},
		args...))

	err := root.Execute()
	return out.String(), err
}

// newTestPrinter starts a printer that names itself name and
// assigns job-id 42 to new jobs. Documents received are
// sent to docs, if not nil.
func newTestPrinter(t *testing.T, name string, docs chan<- []byte) string {
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			d := ipp.NewDecoder(body, ipp.DecoderOptions{})
			rq, err := d.DecodeRequest()
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}

			rsp := ipp.NewResponse(rq.Version, ipp.StatusOk, rq.RequestID)
			switch rq.Op {
			case ipp.OpGetPrinterAttributes:
				printer := rsp.Groups.Group(ipp.TagPrinterGroup)
				desc := &ipp.PrinterDescriptionAttrs
				desc.PrinterName.Set(printer, name)
				desc.PrinterDNSSDName.Set(printer, name+" DNS-SD")
				desc.PrinterState.Set(printer, ipp.PrinterStateIdle)
				desc.PrinterLocation.Set(printer, "lab")

			case ipp.OpPrintJob:
				if docs != nil {
					docs <- d.Remaining()
				}
				job := rsp.Groups.Group(ipp.TagJobGroup)
				ipp.JobDescriptionAttrs.JobID.Set(job, 42)

			case ipp.OpGetJobAttributes:
				job := rsp.Groups.Group(ipp.TagJobGroup)
				id, _ := ipp.OperationAttrs.JobID.Get(rq.Operation())
				ipp.JobDescriptionAttrs.JobID.Set(job, id)
				ipp.JobDescriptionAttrs.JobState.Set(job, ipp.JobStateCompleted)

			case ipp.OpCancelJob:
				rsp.Status = ipp.StatusErrorNotPossible
				ipp.ResponseAttrs.StatusMessage.Set(rsp.Operation(),
					"job already completed")
			}

			data, _ := rsp.EncodeBytes()
			w.Header().Set("Content-Type", ipp.ContentType)
			w.Write(data)
		}))

	t.Cleanup(server.Close)
	return "ipp://" + server.Listener.Addr().String() + "/ipp/print"
}

// Test the "attrs" command
func TestAttrsCmd(t *testing.T) {
	uri1 := newTestPrinter(t, "first", nil)
	uri2 := newTestPrinter(t, "second", nil)

	out, err := runTool(t, "", "attrs", uri1, uri2,
		"--filter", "printer-name", "--filter", "printer-loc*")
	require.NoError(t, err)

	assert.Contains(t, out, "PRINTER "+uri1+"\n")
	assert.Contains(t, out, `name:  "first DNS-SD"`)
	assert.Contains(t, out, "state: idle")
	assert.Contains(t, out, "note=lab")
	assert.Contains(t, out, `ATTR "printer-name" nameWithoutLanguage: second`)
	assert.Contains(t, out, `ATTR "printer-location" textWithoutLanguage: lab`)
	assert.NotContains(t, out, `ATTR "printer-state"`)
	assert.Less(t, bytes.Index([]byte(out), []byte("first")),
		bytes.Index([]byte(out), []byte("second")))
}

// Test the "attrs" command with the configured printer
func TestAttrsCmdConfigured(t *testing.T) {
	uri := newTestPrinter(t, "configured", nil)

	conf := filepath.Join(t.TempDir(), "ipp-tool.conf")
	require.NoError(t, os.WriteFile(conf,
		[]byte("[printer]\nuri = "+uri+"\n"), 0644))

	out, err := runTool(t, conf, "attrs")
	require.NoError(t, err)
	assert.Contains(t, out, `name:  "configured DNS-SD"`)

	_, err = runTool(t, "", "attrs")
	assert.EqualError(t, err, "Printer URI not configured")
}

// Test the "print", "job" and "cancel" commands
func TestJobCmds(t *testing.T) {
	docs := make(chan []byte, 1)
	uri := newTestPrinter(t, "printer", docs)

	file := filepath.Join(t.TempDir(), "hello.txt")
	require.NoError(t, os.WriteFile(file, []byte("hello\n"), 0644))

	out, err := runTool(t, "", "print", uri, file, "--format", "text/plain")
	require.NoError(t, err)
	assert.Equal(t, "job-id: 42\n", out)
	assert.Equal(t, "hello\n", string(<-docs))

	out, err = runTool(t, "", "job", uri, "42")
	require.NoError(t, err)
	assert.Contains(t, out, "GROUP job-attributes-tag\n")
	assert.Contains(t, out, `ATTR "job-state" enum: 9`)

	_, err = runTool(t, "", "job", uri, "forty-two")
	assert.EqualError(t, err, `"forty-two": invalid job-id`)

	_, err = runTool(t, "", "cancel", uri, "42")
	var statusErr *ipp.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, "job already completed", statusErr.Message)
}

// Test the "decode" command
func TestDecodeCmd(t *testing.T) {
	rq := ipp.NewJobRequest(ipp.OpCancelJob, "ipp://h/p", 3,
		ipp.RequestOptions{RequestID: 9})
	data, err := rq.EncodeBytes()
	require.NoError(t, err)

	file := filepath.Join(t.TempDir(), "request.bin")
	require.NoError(t, os.WriteFile(file, append(data, "%PDF-"...), 0644))

	out, err := runTool(t, "", "decode", "--request", file)
	require.NoError(t, err)
	assert.Contains(t, out, "REQUEST-ID 9\n")
	assert.Contains(t, out, "OPERATION Cancel-Job\n")
	assert.Contains(t, out, `ATTR "job-id" integer: 3`)
	assert.Contains(t, out, "5 bytes of document data\n")

	// Truncated message
	require.NoError(t, os.WriteFile(file, data[:len(data)-1], 0644))
	_, err = runTool(t, "", "decode", file)
	assert.ErrorIs(t, err, ipp.ErrMissingEndOfAttributes)
}

// Test the "check" command
func TestCheckCmd(t *testing.T) {
	conf := filepath.Join(t.TempDir(), "ipp-tool.toml")
	require.NoError(t, os.WriteFile(conf, []byte(
		"[printer]\nuri = \"ipps://h/ipp/print\"\nversion = \"2.0\"\n"+
			"[transport]\ntimeout = \"5s\"\n"), 0644))

	out, err := runTool(t, conf, "check")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration files: OK\n")
	assert.Contains(t, out, `printer uri:       "ipps://h/ipp/print"`)
	assert.Contains(t, out, "version:           2.0\n")
	assert.Contains(t, out, "timeout:           5s\n")
	assert.Contains(t, out, "log level:         disabled\n")

	bad := filepath.Join(t.TempDir(), "bad.conf")
	require.NoError(t, os.WriteFile(bad,
		[]byte("[transport]\ntimeout = forever\n"), 0644))
	_, err = runTool(t, bad, "check")
	assert.ErrorContains(t, err, `timeout: "forever": invalid duration`)
}
