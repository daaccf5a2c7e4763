/* ipp-wire - IPP wire codec and typed attribute layer
 *
 * Copyright (C) 2020 and up by Alexander Pevzner (pzz@apevzner.com)
 * See LICENSE for license terms and conditions
 *
 * IPP operation codes
 */

package ipp

import (
	"fmt"
)

// Op is an IPP operation-id (RFC 8011, 5.4.15)
type Op uint16

// Operation codes
const (
	OpPrintJob             Op = 0x0002 // Print-Job
	OpPrintURI             Op = 0x0003 // Print-URI
	OpValidateJob          Op = 0x0004 // Validate-Job
	OpCreateJob            Op = 0x0005 // Create-Job
	OpSendDocument         Op = 0x0006 // Send-Document
	OpSendURI              Op = 0x0007 // Send-URI
	OpCancelJob            Op = 0x0008 // Cancel-Job
	OpGetJobAttributes     Op = 0x0009 // Get-Job-Attributes
	OpGetJobs              Op = 0x000a // Get-Jobs
	OpGetPrinterAttributes Op = 0x000b // Get-Printer-Attributes
	OpHoldJob              Op = 0x000c // Hold-Job
	OpReleaseJob           Op = 0x000d // Release-Job
	OpRestartJob           Op = 0x000e // Restart-Job
	OpPausePrinter         Op = 0x0010 // Pause-Printer
	OpResumePrinter        Op = 0x0011 // Resume-Printer
	OpPurgeJobs            Op = 0x0012 // Purge-Jobs
	OpSetPrinterAttributes Op = 0x0013 // Set-Printer-Attributes
	OpSetJobAttributes     Op = 0x0014 // Set-Job-Attributes
	OpGetPrinterSupported  Op = 0x0015 // Get-Printer-Supported-Values
	OpCancelCurrentJob     Op = 0x002d // Cancel-Current-Job
	OpCancelJobs           Op = 0x0038 // Cancel-Jobs
	OpCancelMyJobs         Op = 0x0039 // Cancel-My-Jobs
	OpCloseJob             Op = 0x003b // Close-Job
	OpIdentifyPrinter      Op = 0x003c // Identify-Printer
	OpValidateDocument     Op = 0x003d // Validate-Document
)

var opNames = map[Op]string{
	OpPrintJob:             "Print-Job",
	OpPrintURI:             "Print-URI",
	OpValidateJob:          "Validate-Job",
	OpCreateJob:            "Create-Job",
	OpSendDocument:         "Send-Document",
	OpSendURI:              "Send-URI",
	OpCancelJob:            "Cancel-Job",
	OpGetJobAttributes:     "Get-Job-Attributes",
	OpGetJobs:              "Get-Jobs",
	OpGetPrinterAttributes: "Get-Printer-Attributes",
	OpHoldJob:              "Hold-Job",
	OpReleaseJob:           "Release-Job",
	OpRestartJob:           "Restart-Job",
	OpPausePrinter:         "Pause-Printer",
	OpResumePrinter:        "Resume-Printer",
	OpPurgeJobs:            "Purge-Jobs",
	OpSetPrinterAttributes: "Set-Printer-Attributes",
	OpSetJobAttributes:     "Set-Job-Attributes",
	OpGetPrinterSupported:  "Get-Printer-Supported-Values",
	OpCancelCurrentJob:     "Cancel-Current-Job",
	OpCancelJobs:           "Cancel-Jobs",
	OpCancelMyJobs:         "Cancel-My-Jobs",
	OpCloseJob:             "Close-Job",
	OpIdentifyPrinter:      "Identify-Printer",
	OpValidateDocument:     "Validate-Document",
}

// String returns the operation name, or its hex code if unknown
func (op Op) String() string {
	if s, ok := opNames[op]; ok {
		return s
	}
	return fmt.Sprintf("0x%4.4x", uint16(op))
}

// JobTargeted reports whether operation is addressed to a job,
// so its request carries job-id after printer-uri.
func (op Op) JobTargeted() bool {
	switch op {
	case OpSendDocument, OpSendURI, OpCancelJob, OpGetJobAttributes,
		OpHoldJob, OpReleaseJob, OpRestartJob, OpSetJobAttributes,
		OpCloseJob:
		return true
	}
	return false
}
