/* ipp-wire - IPP wire codec and typed attribute layer
 *
 * Copyright (C) 2020 and up by Alexander Pevzner (pzz@apevzner.com)
 * See LICENSE for license terms and conditions
 *
 * Values for message attributes
 */

package ipp

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strconv"
	"time"
	"unicode"
	"unicode/utf8"
)

// Value is a single value of an attribute.
//
// Each concrete type reports the Tag it is encoded with, so the
// set of implementations is the set of IPP value syntaxes this
// package understands, plus UnknownTag for everything else.
type Value interface {
	Tag() Tag       // Value tag
	String() string // Human-readable form
	encode() []byte // Wire form, without the length prefix
}

// ValueEqual performs deep comparison of two values.
//
// Two values are equal if they have the same type and content.
// Collections are compared member by member, in order.
func ValueEqual(v1, v2 Value) bool {
	switch v1 := v1.(type) {
	case nil:
		return v2 == nil
	case OctetString:
		v2, ok := v2.(OctetString)
		return ok && bytes.Equal(v1, v2)
	case UnknownTag:
		v2, ok := v2.(UnknownTag)
		return ok && v1.T == v2.T && bytes.Equal(v1.Data, v2.Data)
	case Collection:
		v2, ok := v2.(Collection)
		return ok && v1.Attributes.Equal(v2.Attributes)
	}

	return v1 == v2
}

// ----- Out-of-band values -----

// Unsupported is the out-of-band "unsupported" value
type Unsupported struct{}

// Unknown is the out-of-band "unknown" value
type Unknown struct{}

// NoValue is the out-of-band "no-value" value
type NoValue struct{}

// Tag returns TagUnsupportedValue
func (Unsupported) Tag() Tag { return TagUnsupportedValue }

// Tag returns TagUnknown
func (Unknown) Tag() Tag { return TagUnknown }

// Tag returns TagNoValue
func (NoValue) Tag() Tag { return TagNoValue }

func (Unsupported) String() string { return "unsupported" }
func (Unknown) String() string     { return "unknown" }
func (NoValue) String() string     { return "no-value" }

func (Unsupported) encode() []byte { return nil }
func (Unknown) encode() []byte     { return nil }
func (NoValue) encode() []byte     { return nil }

// ----- Integers -----

// Integer is the "integer" value
type Integer int32

// Enum is the "enum" value
type Enum int32

// Boolean is the "boolean" value
type Boolean bool

// Tag returns TagInteger
func (Integer) Tag() Tag { return TagInteger }

// Tag returns TagEnum
func (Enum) Tag() Tag { return TagEnum }

// Tag returns TagBoolean
func (Boolean) Tag() Tag { return TagBoolean }

func (v Integer) String() string { return strconv.Itoa(int(v)) }
func (v Enum) String() string    { return strconv.Itoa(int(v)) }
func (v Boolean) String() string { return strconv.FormatBool(bool(v)) }

func (v Integer) encode() []byte { return binary.BigEndian.AppendUint32(nil, uint32(v)) }
func (v Enum) encode() []byte    { return binary.BigEndian.AppendUint32(nil, uint32(v)) }

func (v Boolean) encode() []byte {
	if v {
		return []byte{1}
	}
	return []byte{0}
}

// ----- Strings -----

// Text is the "textWithoutLanguage" value
type Text string

// Name is the "nameWithoutLanguage" value
type Name string

// Keyword is the "keyword" value
type Keyword string

// URI is the "uri" value
type URI string

// URIScheme is the "uriScheme" value
type URIScheme string

// Charset is the "charset" value
type Charset string

// NaturalLanguage is the "naturalLanguage" value
type NaturalLanguage string

// MimeMediaType is the "mimeMediaType" value
type MimeMediaType string

func (Text) Tag() Tag            { return TagText }
func (Name) Tag() Tag            { return TagName }
func (Keyword) Tag() Tag         { return TagKeyword }
func (URI) Tag() Tag             { return TagURI }
func (URIScheme) Tag() Tag       { return TagURIScheme }
func (Charset) Tag() Tag         { return TagCharset }
func (NaturalLanguage) Tag() Tag { return TagLanguage }
func (MimeMediaType) Tag() Tag   { return TagMimeType }

func (v Text) String() string            { return string(v) }
func (v Name) String() string            { return string(v) }
func (v Keyword) String() string         { return string(v) }
func (v URI) String() string             { return string(v) }
func (v URIScheme) String() string       { return string(v) }
func (v Charset) String() string         { return string(v) }
func (v NaturalLanguage) String() string { return string(v) }
func (v MimeMediaType) String() string   { return string(v) }

func (v Text) encode() []byte            { return []byte(v) }
func (v Name) encode() []byte            { return []byte(v) }
func (v Keyword) encode() []byte         { return []byte(v) }
func (v URI) encode() []byte             { return []byte(v) }
func (v URIScheme) encode() []byte       { return []byte(v) }
func (v Charset) encode() []byte         { return []byte(v) }
func (v NaturalLanguage) encode() []byte { return []byte(v) }
func (v MimeMediaType) encode() []byte   { return []byte(v) }

// TextWithLang is the "textWithLanguage" value
type TextWithLang struct {
	Lang, Text string
}

// NameWithLang is the "nameWithLanguage" value
type NameWithLang struct {
	Lang, Name string
}

// Tag returns TagTextLang
func (TextWithLang) Tag() Tag { return TagTextLang }

// Tag returns TagNameLang
func (NameWithLang) Tag() Tag { return TagNameLang }

func (v TextWithLang) String() string { return v.Text + " [" + v.Lang + "]" }
func (v NameWithLang) String() string { return v.Name + " [" + v.Lang + "]" }

func (v TextWithLang) encode() []byte { return encodeWithLang(v.Lang, v.Text) }
func (v NameWithLang) encode() []byte { return encodeWithLang(v.Lang, v.Name) }

// Wire format:
//
//	2 bytes:  len(lang)
//	variable: lang
//	2 bytes:  len(text)
//	variable: text
func encodeWithLang(lang, text string) []byte {
	data := make([]byte, 0, 4+len(lang)+len(text))
	data = binary.BigEndian.AppendUint16(data, uint16(len(lang)))
	data = append(data, lang...)
	data = binary.BigEndian.AppendUint16(data, uint16(len(text)))
	data = append(data, text...)
	return data
}

func decodeWithLang(data []byte) (lang, text string, err error) {
	var n int

	if len(data) < 2 {
		goto TRUNCATED
	}
	n = int(binary.BigEndian.Uint16(data))
	data = data[2:]
	if len(data) < n+2 {
		goto TRUNCATED
	}
	lang, data = string(data[:n]), data[n:]

	n = int(binary.BigEndian.Uint16(data))
	data = data[2:]
	if len(data) < n {
		goto TRUNCATED
	}
	text, data = string(data[:n]), data[n:]

	if len(data) != 0 {
		return "", "", fmt.Errorf("%d extra bytes after text", len(data))
	}

	return lang, text, nil

TRUNCATED:
	return "", "", fmt.Errorf("language-tagged string truncated")
}

// ----- Octet string -----

// OctetString is the "octetString" value
type OctetString []byte

// Tag returns TagString
func (OctetString) Tag() Tag { return TagString }

// String returns the value as quoted text, if it is printable,
// or in hex otherwise.
func (v OctetString) String() string {
	if utf8.Valid(v) {
		printable := true
		for _, c := range string(v) {
			if !unicode.IsPrint(c) {
				printable = false
				break
			}
		}
		if printable {
			return strconv.Quote(string(v))
		}
	}
	return fmt.Sprintf("<%x>", []byte(v))
}

func (v OctetString) encode() []byte { return []byte(v) }

// ----- Date and time -----

// DateTime is the "dateTime" value, in the RFC 2579 DateAndTime layout.
//
// Decoding never validates field ranges, so every 11-byte payload
// survives a decode/encode cycle. Use Time to get a checked time.Time.
type DateTime struct {
	Year         int16
	Month        int8 // 1...12
	Day          int8 // 1...31
	Hour         int8 // 0...23
	Minute       int8 // 0...59
	Second       int8 // 0...60 (60 for leap second)
	Decisecond   int8 // 0...9
	UTCDirection uint8
	UTCHours     int8 // 0...14
	UTCMinutes   int8 // 0...59
}

// MakeDateTime converts time.Time into DateTime.
// Precision is truncated to deciseconds.
func MakeDateTime(t time.Time) DateTime {
	_, offset := t.Zone()
	dir := uint8('+')
	if offset < 0 {
		dir = '-'
		offset = -offset
	}

	return DateTime{
		Year:         int16(t.Year()),
		Month:        int8(t.Month()),
		Day:          int8(t.Day()),
		Hour:         int8(t.Hour()),
		Minute:       int8(t.Minute()),
		Second:       int8(t.Second()),
		Decisecond:   int8(t.Nanosecond() / 100000000),
		UTCDirection: dir,
		UTCHours:     int8(offset / 3600),
		UTCMinutes:   int8((offset / 60) % 60),
	}
}

// Time converts DateTime into time.Time, checking every field
func (v DateTime) Time() (time.Time, error) {
	switch {
	case v.Month < 1 || v.Month > 12:
		return time.Time{}, fmt.Errorf("bad month %d", v.Month)
	case v.Day < 1 || v.Day > 31:
		return time.Time{}, fmt.Errorf("bad day %d", v.Day)
	case v.Hour < 0 || v.Hour > 23:
		return time.Time{}, fmt.Errorf("bad hours %d", v.Hour)
	case v.Minute < 0 || v.Minute > 59:
		return time.Time{}, fmt.Errorf("bad minutes %d", v.Minute)
	case v.Second < 0 || v.Second > 60:
		return time.Time{}, fmt.Errorf("bad seconds %d", v.Second)
	case v.Decisecond < 0 || v.Decisecond > 9:
		return time.Time{}, fmt.Errorf("bad deciseconds %d", v.Decisecond)
	case v.UTCDirection != '+' && v.UTCDirection != '-':
		return time.Time{}, fmt.Errorf("bad UTC sign 0x%2.2x", v.UTCDirection)
	case v.UTCHours < 0 || v.UTCHours > 14:
		return time.Time{}, fmt.Errorf("bad UTC hours %d", v.UTCHours)
	case v.UTCMinutes < 0 || v.UTCMinutes > 59:
		return time.Time{}, fmt.Errorf("bad UTC minutes %d", v.UTCMinutes)
	}

	offset := int(v.UTCHours)*3600 + int(v.UTCMinutes)*60
	if v.UTCDirection == '-' {
		offset = -offset
	}

	return time.Date(int(v.Year), time.Month(v.Month), int(v.Day),
		int(v.Hour), int(v.Minute), int(v.Second),
		int(v.Decisecond)*100000000,
		time.FixedZone("", offset)), nil
}

// Tag returns TagDateTime
func (DateTime) Tag() Tag { return TagDateTime }

// String formats DateTime in ISO 8601-like layout
func (v DateTime) String() string {
	return fmt.Sprintf("%4.4d-%2.2d-%2.2dT%2.2d:%2.2d:%2.2d.%d%c%2.2d%2.2d",
		v.Year, v.Month, v.Day, v.Hour, v.Minute, v.Second,
		v.Decisecond, rune(v.UTCDirection), v.UTCHours, v.UTCMinutes)
}

// Wire format:
//
//	2 bytes: year
//	1 byte each: month, day, hour, minute, second, deciseconds,
//	             UTC direction, UTC hours, UTC minutes
func (v DateTime) encode() []byte {
	return []byte{
		byte(uint16(v.Year) >> 8), byte(v.Year),
		byte(v.Month), byte(v.Day),
		byte(v.Hour), byte(v.Minute), byte(v.Second), byte(v.Decisecond),
		v.UTCDirection, byte(v.UTCHours), byte(v.UTCMinutes),
	}
}

// ----- Resolution -----

// Units are resolution units
type Units int8

// Resolution units
const (
	UnitsDpi  Units = 3 // Dots per inch
	UnitsDpcm Units = 4 // Dots per cm
)

// String returns the unit suffix
func (u Units) String() string {
	switch u {
	case UnitsDpi:
		return "dpi"
	case UnitsDpcm:
		return "dpcm"
	}
	return fmt.Sprintf("units-%d", int8(u))
}

// Resolution is the "resolution" value
type Resolution struct {
	CrossFeed, Feed int32 // Cross-feed and feed direction resolution
	Units           Units
}

// Tag returns TagResolution
func (Resolution) Tag() Tag { return TagResolution }

func (v Resolution) String() string {
	return fmt.Sprintf("%dx%d%s", v.CrossFeed, v.Feed, v.Units)
}

func (v Resolution) encode() []byte {
	data := make([]byte, 0, 9)
	data = binary.BigEndian.AppendUint32(data, uint32(v.CrossFeed))
	data = binary.BigEndian.AppendUint32(data, uint32(v.Feed))
	return append(data, byte(v.Units))
}

// ----- Range -----

// Range is the "rangeOfInteger" value, a closed interval
type Range struct {
	Lower, Upper int32
}

// Tag returns TagRange
func (Range) Tag() Tag { return TagRange }

func (v Range) String() string {
	return fmt.Sprintf("%d-%d", v.Lower, v.Upper)
}

func (v Range) encode() []byte {
	data := make([]byte, 0, 8)
	data = binary.BigEndian.AppendUint32(data, uint32(v.Lower))
	return binary.BigEndian.AppendUint32(data, uint32(v.Upper))
}

// ----- Collection -----

// Collection is the "collection" value: a nested container of
// member attributes, typed exactly like a group's attributes.
type Collection struct {
	*Attributes
}

// NewCollection returns an empty Collection
func NewCollection() Collection {
	return Collection{NewAttributes()}
}

// Tag returns TagBeginCollection
func (Collection) Tag() Tag { return TagBeginCollection }

// String returns a one-line form of the collection
func (v Collection) String() string {
	return "{" + v.Attributes.String() + "}"
}

// Collection members are written by the encoder, and the
// begCollection value itself is always empty.
func (Collection) encode() []byte { return nil }

// ----- Unknown tag -----

// UnknownTag keeps a value whose tag has no dedicated type, so
// messages from newer IPP versions survive a decode/encode cycle.
type UnknownTag struct {
	T    Tag
	Data []byte
}

// Tag returns the raw tag
func (v UnknownTag) Tag() Tag { return v.T }

func (v UnknownTag) String() string {
	return fmt.Sprintf("%s:<%x>", v.T, v.Data)
}

func (v UnknownTag) encode() []byte { return v.Data }

// ----- Decoding -----

// decodeValue decodes a value payload of the given tag.
//
// Begin-collection is returned as an empty Collection; the decoder
// fills it from the subsequent member entries.
func decodeValue(tag Tag, data []byte) (Value, error) {
	checkLen := func(n int) error {
		if len(data) != n {
			return fmt.Errorf("%s: value length %d, expected %d",
				tag, len(data), n)
		}
		return nil
	}

	switch tag {
	case TagUnsupportedValue:
		return Unsupported{}, nil
	case TagUnknown:
		return Unknown{}, nil
	case TagNoValue:
		return NoValue{}, nil

	case TagInteger, TagEnum:
		if err := checkLen(4); err != nil {
			return nil, err
		}
		v := int32(binary.BigEndian.Uint32(data))
		if tag == TagEnum {
			return Enum(v), nil
		}
		return Integer(v), nil

	case TagBoolean:
		if err := checkLen(1); err != nil {
			return nil, err
		}
		return Boolean(data[0] != 0), nil

	case TagString:
		return OctetString(append([]byte(nil), data...)), nil

	case TagDateTime:
		if err := checkLen(11); err != nil {
			return nil, err
		}
		return DateTime{
			Year:         int16(binary.BigEndian.Uint16(data)),
			Month:        int8(data[2]),
			Day:          int8(data[3]),
			Hour:         int8(data[4]),
			Minute:       int8(data[5]),
			Second:       int8(data[6]),
			Decisecond:   int8(data[7]),
			UTCDirection: data[8],
			UTCHours:     int8(data[9]),
			UTCMinutes:   int8(data[10]),
		}, nil

	case TagResolution:
		if err := checkLen(9); err != nil {
			return nil, err
		}
		return Resolution{
			CrossFeed: int32(binary.BigEndian.Uint32(data)),
			Feed:      int32(binary.BigEndian.Uint32(data[4:])),
			Units:     Units(data[8]),
		}, nil

	case TagRange:
		if err := checkLen(8); err != nil {
			return nil, err
		}
		return Range{
			Lower: int32(binary.BigEndian.Uint32(data)),
			Upper: int32(binary.BigEndian.Uint32(data[4:])),
		}, nil

	case TagBeginCollection:
		return NewCollection(), nil

	case TagTextLang, TagNameLang:
		lang, text, err := decodeWithLang(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %s", tag, err)
		}
		if tag == TagTextLang {
			return TextWithLang{Lang: lang, Text: text}, nil
		}
		return NameWithLang{Lang: lang, Name: text}, nil

	case TagText:
		return Text(data), nil
	case TagName:
		return Name(data), nil
	case TagKeyword:
		return Keyword(data), nil
	case TagURI:
		return URI(data), nil
	case TagURIScheme:
		return URIScheme(data), nil
	case TagCharset:
		return Charset(data), nil
	case TagLanguage:
		return NaturalLanguage(data), nil
	case TagMimeType:
		return MimeMediaType(data), nil
	}

	return UnknownTag{T: tag, Data: append([]byte(nil), data...)}, nil
}
