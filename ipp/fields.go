/* ipp-wire - IPP wire codec and typed attribute layer
 *
 * Copyright (C) 2020 and up by Alexander Pevzner (pzz@apevzner.com)
 * See LICENSE for license terms and conditions
 *
 * Attribute descriptor tables
 */

package ipp

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Orientation is the orientation-requested enum
type Orientation int32

// Orientations
const (
	OrientationPortrait         Orientation = 3
	OrientationLandscape        Orientation = 4
	OrientationReverseLandscape Orientation = 5
	OrientationReversePortrait  Orientation = 6
)

// String returns orientation keyword
func (o Orientation) String() string {
	switch o {
	case OrientationPortrait:
		return "portrait"
	case OrientationLandscape:
		return "landscape"
	case OrientationReverseLandscape:
		return "reverse-landscape"
	case OrientationReversePortrait:
		return "reverse-portrait"
	}
	return fmt.Sprintf("orientation-%d", int32(o))
}

// PrintQuality is the print-quality enum
type PrintQuality int32

// Print qualities
const (
	PrintQualityDraft  PrintQuality = 3
	PrintQualityNormal PrintQuality = 4
	PrintQualityHigh   PrintQuality = 5
)

// String returns print quality keyword
func (q PrintQuality) String() string {
	switch q {
	case PrintQualityDraft:
		return "draft"
	case PrintQualityNormal:
		return "normal"
	case PrintQualityHigh:
		return "high"
	}
	return fmt.Sprintf("quality-%d", int32(q))
}

// Sides is the sides keyword
type Sides string

// Sides keywords
const (
	SidesOneSided          Sides = "one-sided"
	SidesTwoSidedLongEdge  Sides = "two-sided-long-edge"
	SidesTwoSidedShortEdge Sides = "two-sided-short-edge"
)

// JobState is the job-state enum
type JobState int32

// Job states
const (
	JobStatePending           JobState = 3
	JobStatePendingHeld       JobState = 4
	JobStateProcessing        JobState = 5
	JobStateProcessingStopped JobState = 6
	JobStateCanceled          JobState = 7
	JobStateAborted           JobState = 8
	JobStateCompleted         JobState = 9
)

// String returns job state keyword
func (s JobState) String() string {
	switch s {
	case JobStatePending:
		return "pending"
	case JobStatePendingHeld:
		return "pending-held"
	case JobStateProcessing:
		return "processing"
	case JobStateProcessingStopped:
		return "processing-stopped"
	case JobStateCanceled:
		return "canceled"
	case JobStateAborted:
		return "aborted"
	case JobStateCompleted:
		return "completed"
	}
	return fmt.Sprintf("job-state-%d", int32(s))
}

// Terminal reports whether job will not change state anymore
func (s JobState) Terminal() bool {
	return s >= JobStateCanceled && s <= JobStateCompleted
}

// PrinterState is the printer-state enum
type PrinterState int32

// Printer states
const (
	PrinterStateIdle       PrinterState = 3
	PrinterStateProcessing PrinterState = 4
	PrinterStateStopped    PrinterState = 5
)

// String returns printer state keyword
func (s PrinterState) String() string {
	switch s {
	case PrinterStateIdle:
		return "idle"
	case PrinterStateProcessing:
		return "processing"
	case PrinterStateStopped:
		return "stopped"
	}
	return fmt.Sprintf("printer-state-%d", int32(s))
}

// OperationAttrs describes attributes of the request operation group
var OperationAttrs = struct {
	AttributesCharset         Field[string]
	AttributesNaturalLanguage Field[string]
	PrinterURI                Field[string]
	JobURI                    Field[string]
	JobID                     Field[int]
	DocumentURI               Field[string]
	RequestingUserName        Field[string]
	JobName                   Field[string]
	DocumentName              Field[string]
	DocumentFormat            Field[string]
	RequestedAttributes       Field[[]string]
	IppAttributeFidelity      Field[bool]
	Compression               Field[string]
	Message                   Field[string]
	WhichJobs                 Field[string]
	MyJobs                    Field[bool]
	Limit                     Field[int]
	LastDocument              Field[bool]
}{
	AttributesCharset:         NewField("attributes-charset", ConvCharset),
	AttributesNaturalLanguage: NewField("attributes-natural-language", ConvNaturalLanguage),
	PrinterURI:                NewField("printer-uri", ConvURI),
	JobURI:                    NewField("job-uri", ConvURI),
	JobID:                     NewField("job-id", ConvInteger),
	DocumentURI:               NewField("document-uri", ConvURI),
	RequestingUserName:        NewField("requesting-user-name", ConvName),
	JobName:                   NewField("job-name", ConvName),
	DocumentName:              NewField("document-name", ConvName),
	DocumentFormat:            NewField("document-format", ConvMimeMediaType),
	RequestedAttributes:       NewSetField("requested-attributes", ConvKeyword),
	IppAttributeFidelity:      NewField("ipp-attribute-fidelity", ConvBoolean),
	Compression:               NewField("compression", ConvKeyword),
	Message:                   NewField("message", ConvText),
	WhichJobs:                 NewField("which-jobs", ConvKeyword),
	MyJobs:                    NewField("my-jobs", ConvBoolean),
	Limit:                     NewField("limit", ConvInteger),
	LastDocument:              NewField("last-document", ConvBoolean),
}

// ResponseAttrs describes attributes of the response operation group
var ResponseAttrs = struct {
	AttributesCharset         Field[string]
	AttributesNaturalLanguage Field[string]
	StatusMessage             Field[string]
	DetailedStatusMessage     Field[string]
}{
	AttributesCharset:         NewField("attributes-charset", ConvCharset),
	AttributesNaturalLanguage: NewField("attributes-natural-language", ConvNaturalLanguage),
	StatusMessage:             NewField("status-message", ConvText),
	DetailedStatusMessage:     NewField("detailed-status-message", ConvText),
}

// JobTemplateAttrs describes job template attributes of the job group
var JobTemplateAttrs = struct {
	Copies               Field[int]
	OrientationRequested Field[Orientation]
	PrintQuality         Field[PrintQuality]
	Sides                Field[Sides]
	JobPriority          Field[int]
	JobHoldUntil         Field[string]
	NumberUp             Field[int]
	Media                Field[string]
	MediaCol             Field[MediaSize]
	PrinterResolution    Field[Resolution]
	PageRanges           Field[[]Range]
}{
	Copies:               NewField("copies", ConvInteger),
	OrientationRequested: NewField("orientation-requested", ConvEnumOf[Orientation]()),
	PrintQuality:         NewField("print-quality", ConvEnumOf[PrintQuality]()),
	Sides:                NewField("sides", ConvKeywordOf[Sides]()),
	JobPriority:          NewField("job-priority", ConvInteger),
	JobHoldUntil:         NewField("job-hold-until", ConvKeywordOf[string]()),
	NumberUp:             NewField("number-up", ConvInteger),
	Media:                NewField("media", ConvKeywordOf[string]()),
	MediaCol:             NewField("media-col", ConvMediaCol),
	PrinterResolution:    NewField("printer-resolution", ConvResolution),
	PageRanges:           NewSetField("page-ranges", ConvRange),
}

// JobDescriptionAttrs describes job description and status attributes
var JobDescriptionAttrs = struct {
	JobURI             Field[string]
	JobID              Field[int]
	JobUUID            Field[uuid.UUID]
	JobName            Field[string]
	JobOriginatingUser Field[string]
	JobState           Field[JobState]
	JobStateMessage    Field[string]
	JobStateReasons    Field[[]string]
	DateTimeAtCreation Field[time.Time]
	DateTimeCompleted  Field[time.Time]
}{
	JobURI:             NewField("job-uri", ConvURI),
	JobID:              NewField("job-id", ConvInteger),
	JobUUID:            NewField("job-uuid", ConvUUID),
	JobName:            NewField("job-name", ConvName),
	JobOriginatingUser: NewField("job-originating-user-name", ConvName),
	JobState:           NewField("job-state", ConvEnumOf[JobState]()),
	JobStateMessage:    NewField("job-state-message", ConvText),
	JobStateReasons:    NewSetField("job-state-reasons", ConvKeyword),
	DateTimeAtCreation: NewField("date-time-at-creation", ConvDateTime),
	DateTimeCompleted:  NewField("date-time-at-completed", ConvDateTime),
}

// PrinterDescriptionAttrs describes printer description and status
// attributes
var PrinterDescriptionAttrs = struct {
	PrinterName                Field[string]
	PrinterState               Field[PrinterState]
	PrinterStateMessage        Field[string]
	PrinterStateReasons        Field[[]string]
	PrinterIsAcceptingJobs     Field[bool]
	QueuedJobCount             Field[int]
	PrinterInfo                Field[string]
	PrinterLocation            Field[string]
	PrinterMakeAndModel        Field[string]
	PrinterMoreInfo            Field[string]
	PrinterURISupported        Field[[]string]
	URISecuritySupported       Field[[]string]
	URIAuthenticationSupported Field[[]string]
	DocumentFormatSupported    Field[[]string]
	ColorSupported             Field[bool]
	SidesSupported             Field[[]Sides]
	PrinterUUID                Field[uuid.UUID]
	MediaSizeSupported         Field[[]MediaSize]
	PrinterResolutionSupported Field[[]Resolution]
	PrinterDNSSDName           Field[string]
	PrinterDeviceID            Field[string]
	PrinterKind                Field[[]string]
	URFSupported               Field[[]string]
	MopriaCertified            Field[string]
	PrinterCurrentTime         Field[time.Time]
}{
	PrinterName:                NewField("printer-name", ConvName),
	PrinterState:               NewField("printer-state", ConvEnumOf[PrinterState]()),
	PrinterStateMessage:        NewField("printer-state-message", ConvText),
	PrinterStateReasons:        NewSetField("printer-state-reasons", ConvKeyword),
	PrinterIsAcceptingJobs:     NewField("printer-is-accepting-jobs", ConvBoolean),
	QueuedJobCount:             NewField("queued-job-count", ConvInteger),
	PrinterInfo:                NewField("printer-info", ConvText),
	PrinterLocation:            NewField("printer-location", ConvText),
	PrinterMakeAndModel:        NewField("printer-make-and-model", ConvText),
	PrinterMoreInfo:            NewField("printer-more-info", ConvURI),
	PrinterURISupported:        NewSetField("printer-uri-supported", ConvURI),
	URISecuritySupported:       NewSetField("uri-security-supported", ConvKeyword),
	URIAuthenticationSupported: NewSetField("uri-authentication-supported", ConvKeyword),
	DocumentFormatSupported:    NewSetField("document-format-supported", ConvMimeMediaType),
	ColorSupported:             NewField("color-supported", ConvBoolean),
	SidesSupported:             NewSetField("sides-supported", ConvKeywordOf[Sides]()),
	PrinterUUID:                NewField("printer-uuid", ConvUUID),
	MediaSizeSupported:         NewSetField("media-size-supported", ConvMediaSize),
	PrinterResolutionSupported: NewSetField("printer-resolution-supported", ConvResolution),
	PrinterDNSSDName:           NewField("printer-dns-sd-name", ConvName),
	PrinterDeviceID:            NewField("printer-device-id", ConvText),
	PrinterKind:                NewSetField("printer-kind", ConvKeyword),
	URFSupported:               NewSetField("urf-supported", ConvKeyword),
	MopriaCertified:            NewField("mopria-certified", ConvText),
	PrinterCurrentTime:         NewField("printer-current-time", ConvDateTime),
}
