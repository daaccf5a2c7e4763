/* ipp-wire - IPP wire codec and typed attribute layer
 *
 * Copyright (C) 2020 and up by Alexander Pevzner (pzz@apevzner.com)
 * See LICENSE for license terms and conditions
 *
 * Configuration constants
 */

package ippclient

import (
	"time"
)

const (
	// DefaultTimeout limits the whole HTTP exchange, including
	// document upload
	DefaultTimeout = 30 * time.Second

	// DefaultMaxResponseSize limits the size of IPP response body
	DefaultMaxResponseSize = 1024 * 1024

	// LogMaxFileSize is the log file size, in megabytes, that
	// triggers rotation
	LogMaxFileSize = 1

	// LogMaxBackupFiles is the count of rotated log files preserved
	LogMaxBackupFiles = 5

	// EnvLogLevel names the environment variable that overrides
	// the configured log level
	EnvLogLevel = "IPP_LOG_LEVEL"
)
