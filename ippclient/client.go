/* ipp-wire - IPP wire codec and typed attribute layer
 *
 * Copyright (C) 2020 and up by Alexander Pevzner (pzz@apevzner.com)
 * See LICENSE for license terms and conditions
 *
 * IPP over HTTP client
 */

// Package ippclient sends IPP requests over HTTP and provides
// printer and job objects on a top of it.
package ippclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"sync/atomic"

	"github.com/OpenPrinting/ipp-wire/ipp"
	"github.com/rs/zerolog"
)

// Client executes IPP requests over HTTP
type Client struct {
	HTTP            *http.Client   // nil means http.DefaultClient
	Log             zerolog.Logger // Exchange log
	MaxResponseSize int64          // 0 means DefaultMaxResponseSize

	requestID atomic.Uint32 // Last request-id issued
}

// NewClient creates a client, as configured
func NewClient(conf *Configuration, log zerolog.Logger) *Client {
	return &Client{
		HTTP:            &http.Client{Timeout: conf.Timeout},
		Log:             log,
		MaxResponseSize: conf.MaxResponseSize,
	}
}

// NextRequestID returns the next request-id. IDs start from 1
// and never repeat within the client lifetime.
func (c *Client) NextRequestID() uint32 {
	for {
		id := c.requestID.Add(1)
		if id != 0 {
			return id
		}
	}
}

// Execute sends the request to the printer and returns the response.
//
// The request must be valid for sending (see ipp.Request.TargetURL).
// If doc is not nil, it is sent immediately after the encoded
// request, in the same HTTP body.
//
// Execute modifies rq: unless auth is nil or AuthNone, it sets the
// requesting-user-name operation attribute before encoding.
//
// IPP status is not checked here: error statuses are returned
// as normal responses.
func (c *Client) Execute(ctx context.Context, rq *ipp.Request,
	auth *Authentication, doc io.Reader) (*ipp.Response, error) {

	auth.applyRequest(rq)

	url, err := rq.TargetURL()
	if err != nil {
		return nil, err
	}

	data, err := rq.EncodeBytes()
	if err != nil {
		return nil, err
	}

	var body io.Reader = bytes.NewReader(data)
	if doc != nil {
		body = io.MultiReader(body, doc)
	}

	hrq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, err
	}

	hrq.Header.Set("Content-Type", ipp.ContentType)
	auth.applyHTTP(hrq)

	logHTTPHeader(c.Log, "> HTTP: ", hrq.Method+" "+url, hrq.Header)
	if c.Log.GetLevel() <= zerolog.TraceLevel {
		f := ipp.NewFormatter()
		f.FmtRequest(rq)
		logFormatted(c.Log, "> IPP: ", f)
	}

	hrsp, err := c.httpClient().Do(hrq)
	if err != nil {
		return nil, err
	}
	defer hrsp.Body.Close()

	logHTTPHeader(c.Log, "< HTTP: ", hrsp.Proto+" "+hrsp.Status, hrsp.Header)

	if hrsp.StatusCode != http.StatusOK {
		c.Log.Debug().
			Str("op", rq.Op.String()).
			Str("url", url).
			Int("http_status", hrsp.StatusCode).
			Msg("ipp_exchange")
		return nil, &HTTPError{StatusCode: hrsp.StatusCode, Status: hrsp.Status}
	}

	data, err = c.readBody(hrsp.Body)
	if err != nil {
		return nil, err
	}

	rsp, err := ipp.DecodeResponse(data)
	if err != nil {
		c.Log.Debug().Err(err).Str("url", url).Msg("ipp_decode")
		logDump(c.Log, data)
		return nil, err
	}

	c.Log.Debug().
		Str("op", rq.Op.String()).
		Str("url", url).
		Uint32("request_id", rq.RequestID).
		Str("status", rsp.Status.String()).
		Int("http_status", hrsp.StatusCode).
		Int("bytes", len(data)).
		Msg("ipp_exchange")

	if c.Log.GetLevel() <= zerolog.TraceLevel {
		f := ipp.NewFormatter()
		f.FmtResponse(rsp)
		logFormatted(c.Log, "< IPP: ", f)
	}

	return rsp, nil
}

// readBody reads response body, up to the MaxResponseSize
func (c *Client) readBody(body io.Reader) ([]byte, error) {
	limit := c.MaxResponseSize
	if limit <= 0 {
		limit = DefaultMaxResponseSize
	}

	data, err := io.ReadAll(io.LimitReader(body, limit+1))
	if err != nil {
		return nil, err
	}

	if int64(len(data)) > limit {
		return nil, ErrResponseTooLarge
	}

	return data, nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return http.DefaultClient
}
