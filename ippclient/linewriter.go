/* ipp-wire - IPP wire codec and typed attribute layer
 *
 * Copyright (C) 2020 and up by Alexander Pevzner (pzz@apevzner.com)
 * See LICENSE for license terms and conditions
 *
 * lineWriter turns a byte stream into log lines
 */

package ippclient

import (
	"bytes"
)

// lineWriter implements io.WriteCloser on a top of per-line
// callback. Lines are passed without the trailing '\n'.
//
// Close flushes the last incomplete line, if any.
type lineWriter struct {
	emit func(line string) // Per-line callback
	buf  bytes.Buffer      // Incomplete line
}

// Write implements io.Writer interface
func (lw *lineWriter) Write(text []byte) (int, error) {
	n := len(text)

	for len(text) > 0 {
		l := bytes.IndexByte(text, '\n')
		if l < 0 {
			lw.buf.Write(text)
			break
		}

		lw.buf.Write(text[:l])
		text = text[l+1:]

		lw.emit(lw.buf.String())
		lw.buf.Reset()
	}

	return n, nil
}

// Close implements io.Closer interface
func (lw *lineWriter) Close() error {
	if lw.buf.Len() > 0 {
		lw.emit(lw.buf.String())
		lw.buf.Reset()
	}
	return nil
}
