/* ipp-wire - IPP wire codec and typed attribute layer
 *
 * Copyright (C) 2020 and up by Alexander Pevzner (pzz@apevzner.com)
 * See LICENSE for license terms and conditions
 *
 * IPP Tags
 */

package ipp

import (
	"fmt"
)

// Tag is a single byte of the binary message that introduces either
// an attribute group (delimiter tags, 0x00-0x0f) or an attribute value
// (value tags, 0x10-0xff).
type Tag uint8

// Delimiter tags
const (
	TagZero             Tag = 0x00 // Reserved, treated as raw group
	TagOperationGroup   Tag = 0x01 // Operation attributes
	TagJobGroup         Tag = 0x02 // Job attributes
	TagEnd              Tag = 0x03 // End-of-attributes
	TagPrinterGroup     Tag = 0x04 // Printer attributes
	TagUnsupportedGroup Tag = 0x05 // Unsupported attributes
)

// Value tags
const (
	TagUnsupportedValue Tag = 0x10 // Out-of-band: unsupported
	TagUnknown          Tag = 0x12 // Out-of-band: unknown
	TagNoValue          Tag = 0x13 // Out-of-band: no-value
	TagInteger          Tag = 0x21 // integer
	TagBoolean          Tag = 0x22 // boolean
	TagEnum             Tag = 0x23 // enum
	TagString           Tag = 0x30 // octetString
	TagDateTime         Tag = 0x31 // dateTime
	TagResolution       Tag = 0x32 // resolution
	TagRange            Tag = 0x33 // rangeOfInteger
	TagBeginCollection  Tag = 0x34 // begCollection
	TagTextLang         Tag = 0x35 // textWithLanguage
	TagNameLang         Tag = 0x36 // nameWithLanguage
	TagEndCollection    Tag = 0x37 // endCollection
	TagText             Tag = 0x41 // textWithoutLanguage
	TagName             Tag = 0x42 // nameWithoutLanguage
	TagKeyword          Tag = 0x44 // keyword
	TagURI              Tag = 0x45 // uri
	TagURIScheme        Tag = 0x46 // uriScheme
	TagCharset          Tag = 0x47 // charset
	TagLanguage         Tag = 0x48 // naturalLanguage
	TagMimeType         Tag = 0x49 // mimeMediaType
	TagMemberName       Tag = 0x4a // memberAttrName
)

// IsDelimiter returns true for delimiter tags (0x00-0x0f)
func (tag Tag) IsDelimiter() bool {
	return tag < 0x10
}

// IsGroup returns true for delimiter tags that start an attribute
// group, i.e. every delimiter except TagEnd.
//
// Unrecognized group tags are not an error: the group is kept
// with its raw tag.
func (tag Tag) IsGroup() bool {
	return tag.IsDelimiter() && tag != TagEnd
}

// IsValue returns true for value tags (0x10-0xff)
func (tag Tag) IsValue() bool {
	return !tag.IsDelimiter()
}

// IsOutOfBand returns true for tags in the out-of-band range (0x10-0x1f)
func (tag Tag) IsOutOfBand() bool {
	return tag >= 0x10 && tag < 0x20
}

// IsKnown returns true if tag has a dedicated Value type.
// Unknown value tags decode into UnknownTag.
func (tag Tag) IsKnown() bool {
	return tagNames[tag] != ""
}

// String returns a tag name, as defined by RFC 8010
func (tag Tag) String() string {
	if s := tagNames[tag]; s != "" {
		return s
	}

	if tag.IsDelimiter() {
		return fmt.Sprintf("group-0x%2.2x", uint8(tag))
	}

	return fmt.Sprintf("0x%2.2x", uint8(tag))
}

var tagNames = [256]string{
	TagOperationGroup:   "operation-attributes-tag",
	TagJobGroup:         "job-attributes-tag",
	TagEnd:              "end-of-attributes-tag",
	TagPrinterGroup:     "printer-attributes-tag",
	TagUnsupportedGroup: "unsupported-attributes-tag",
	TagUnsupportedValue: "unsupported",
	TagUnknown:          "unknown",
	TagNoValue:          "no-value",
	TagInteger:          "integer",
	TagBoolean:          "boolean",
	TagEnum:             "enum",
	TagString:           "octetString",
	TagDateTime:         "dateTime",
	TagResolution:       "resolution",
	TagRange:            "rangeOfInteger",
	TagBeginCollection:  "collection",
	TagTextLang:         "textWithLanguage",
	TagNameLang:         "nameWithLanguage",
	TagEndCollection:    "endCollection",
	TagText:             "textWithoutLanguage",
	TagName:             "nameWithoutLanguage",
	TagKeyword:          "keyword",
	TagURI:              "uri",
	TagURIScheme:        "uriScheme",
	TagCharset:          "charset",
	TagLanguage:         "naturalLanguage",
	TagMimeType:         "mimeMediaType",
	TagMemberName:       "memberAttrName",
}
