/* ipp-wire - IPP wire codec and typed attribute layer
 *
 * Copyright (C) 2020 and up by Alexander Pevzner (pzz@apevzner.com)
 * See LICENSE for license terms and conditions
 *
 * Logging
 */

package ippclient

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/OpenPrinting/ipp-wire/ipp"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger creates a logger that writes to out. If console is
// true, output is human-readable, otherwise it is JSON.
func NewLogger(out io.Writer, level zerolog.Level, console bool) zerolog.Logger {
	if console {
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
		}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// ParseLogLevel parses log level name: error, warn, info, debug,
// trace or disabled
func ParseLogLevel(s string) (zerolog.Level, error) {
	switch s = strings.ToLower(strings.TrimSpace(s)); s {
	case "error", "warn", "info", "debug", "trace", "disabled":
		return zerolog.ParseLevel(s)
	}
	return zerolog.NoLevel, fmt.Errorf("invalid log level %q", s)
}

// NewLogger creates logger as configured. The returned io.Closer
// closes the log file, if any.
func (conf *Configuration) NewLogger() (zerolog.Logger, io.Closer) {
	if conf.LogFile == "" {
		return NewLogger(os.Stderr, conf.LogLevel, conf.LogConsole),
			io.NopCloser(nil)
	}

	file := &lumberjack.Logger{
		Filename:   conf.LogFile,
		MaxSize:    LogMaxFileSize,
		MaxBackups: LogMaxBackupFiles,
		Compress:   true,
	}

	return NewLogger(file, conf.LogLevel, false), file
}

// logFormatted writes the formatter output, line by line,
// at the trace level
func logFormatted(log zerolog.Logger, prefix string, f *ipp.Formatter) {
	if log.GetLevel() > zerolog.TraceLevel {
		return
	}

	lw := &lineWriter{emit: func(line string) {
		log.Trace().Msg(prefix + line)
	}}

	f.WriteTo(lw)
	lw.Close()
}

// logHTTPHeader writes HTTP header at the trace level,
// sorted by key. Credentials are never logged.
func logHTTPHeader(log zerolog.Logger, prefix, title string,
	hdr http.Header) {
	if log.GetLevel() > zerolog.TraceLevel {
		return
	}

	keys := make([]string, 0, len(hdr))
	for k := range hdr {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	log.Trace().Msg(prefix + title)
	for _, k := range keys {
		log.Trace().Msgf("%s%s: %s", prefix, k, redactHeader(k, hdr.Get(k)))
	}
}

// redactHeader hides credentials in the Authorization and
// Proxy-Authorization header values, keeping only the scheme
func redactHeader(key, value string) string {
	switch http.CanonicalHeaderKey(key) {
	case "Authorization", "Proxy-Authorization":
		scheme, _, _ := strings.Cut(value, " ")
		return scheme + " ***"
	}
	return value
}

// logDump writes HEX dump of data at the debug level
func logDump(log zerolog.Logger, data []byte) {
	if log.GetLevel() > zerolog.DebugLevel {
		return
	}

	hexDump(data, func(line string) {
		log.Debug().Msg(line)
	})
}

// hexDump formats data as HEX dump, 16 bytes per line:
//
//	0000: 01 01 00 0b:00 00 00 01:01 47 00 12:61 74 74 72 .........G..attr
func hexDump(data []byte, emit func(line string)) {
	var hex, chr strings.Builder

	for off := 0; len(data) > 0; {
		hex.Reset()
		chr.Reset()

		sz := len(data)
		if sz > 16 {
			sz = 16
		}

		i := 0
		for ; i < sz; i++ {
			c := data[i]
			fmt.Fprintf(&hex, "%2.2x", c)
			if i%4 == 3 {
				hex.WriteByte(':')
			} else {
				hex.WriteByte(' ')
			}

			if 0x20 <= c && c < 0x80 {
				chr.WriteByte(c)
			} else {
				chr.WriteByte('.')
			}
		}

		for ; i < 16; i++ {
			hex.WriteString("   ")
		}

		emit(fmt.Sprintf("%4.4x: %s %s", off, hex.String(), chr.String()))

		off += sz
		data = data[sz:]
	}
}
