/* ipp-wire - IPP wire codec and typed attribute layer
 *
 * Copyright (C) 2020 and up by Alexander Pevzner (pzz@apevzner.com)
 * See LICENSE for license terms and conditions
 *
 * Tests for message decoder
 */

package ipp

import (
	"encoding/hex"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// decodeErrors maps error names used in testdata to errors
var decodeErrors = map[string]error{
	"malformed-header":          ErrMalformedHeader,
	"unexpected-value-tag":      ErrUnexpectedValueTag,
	"unexpected-delimiter-tag":  ErrUnexpectedDelimiterTag,
	"missing-end-of-attributes": ErrMissingEndOfAttributes,
	"missing-end-of-collection": ErrMissingEndOfCollection,
	"invalid-collection-syntax": ErrInvalidCollectionSyntax,
	"malformed-value":           ErrMalformedValue,
}

// malformedMessage is a single entry of testdata/malformed.yaml
type malformedMessage struct {
	Name   string `yaml:"name"`
	Hex    string `yaml:"hex"`
	Error  string `yaml:"error"`
	Offset *int   `yaml:"offset"`
}

// mustHex decodes hex string, ignoring white space
func mustHex(t *testing.T, s string) []byte {
	data, err := hex.DecodeString(strings.Join(strings.Fields(s), ""))
	require.NoError(t, err)
	return data
}

// Test decoding of malformed messages
func TestDecodeMalformed(t *testing.T) {
	raw, err := os.ReadFile("testdata/malformed.yaml")
	require.NoError(t, err)

	var tests []malformedMessage
	require.NoError(t, yaml.Unmarshal(raw, &tests))
	require.NotEmpty(t, tests)

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			expected, ok := decodeErrors[test.Error]
			require.True(t, ok, "unknown error %q", test.Error)

			rq, err := DecodeRequest(mustHex(t, test.Hex))
			assert.Nil(t, rq)
			require.ErrorIs(t, err, expected)

			var derr *DecodeError
			require.True(t, errors.As(err, &derr))
			if test.Offset != nil {
				assert.Equal(t, *test.Offset, derr.Offset, "%s", err)
			}
		})
	}
}

// Test that zero-length name continues the previous attribute
func TestDecodeNameSentinel(t *testing.T) {
	data := wireMessage(Version11, uint16(StatusOk), 3,
		[]byte{byte(TagPrinterGroup)},
		wireEntry(TagKeyword, "printer-kind", []byte("document")),
		wireEntry(TagKeyword, "", []byte("envelope")),
		wireEntry(TagKeyword, "", []byte("")),
		[]byte{byte(TagEnd)},
	)

	rsp, err := DecodeResponse(data)
	require.NoError(t, err)

	printer := rsp.Printer()
	require.Equal(t, 1, printer.Len())
	assert.False(t, printer.Has(""))

	attr, _ := printer.Get("printer-kind")
	assert.Equal(t, []Value{Keyword("document"), Keyword("envelope"),
		Keyword("")}, attr.Values())
}

// Test that unknown groups and value tags are preserved
func TestDecodeUnknown(t *testing.T) {
	data := wireMessage(Version20, uint16(OpGetJobs), 5,
		[]byte{0x0f},
		wireEntry(0xff, "vendor-thing", []byte{1, 2, 3}),
		wireEntry(0x11, "vendor-default", nil),
		wireEntry(0x15, "vendor-state", []byte{1, 2, 3}),
		[]byte{byte(TagEnd)},
	)

	rq, err := DecodeRequest(data)
	require.NoError(t, err)

	require.Len(t, rq.Groups, 1)
	assert.Equal(t, Tag(0x0f), rq.Groups[0].Tag)
	assert.Equal(t, "group-0x0f", rq.Groups[0].Tag.String())

	attr, _ := rq.Groups[0].Attrs.Get("vendor-thing")
	assert.Equal(t, UnknownTag{T: 0xff, Data: []byte{1, 2, 3}}, attr.Value)

	attr, _ = rq.Groups[0].Attrs.Get("vendor-state")
	assert.Equal(t, UnknownTag{T: 0x15, Data: []byte{1, 2, 3}}, attr.Value)

	data2, err := rq.EncodeBytes()
	require.NoError(t, err)
	assert.Equal(t, data, data2)

	rq2, err := DecodeRequest(data2)
	require.NoError(t, err)
	assert.True(t, rq.Equal(rq2))
}

// Test repeated groups and Remaining
func TestDecodeRepeatedGroupsAndDocument(t *testing.T) {
	job := func(id byte) []byte {
		return append([]byte{byte(TagJobGroup)},
			wireEntry(TagInteger, "job-id", []byte{0, 0, 0, id})...)
	}

	data := wireMessage(Version11, uint16(StatusOk), 9,
		job(1), job(2), job(3),
		[]byte{byte(TagEnd)},
		[]byte("%PDF-1.7"),
	)

	d := NewDecoder(data, DecoderOptions{})
	rsp, err := d.DecodeResponse()
	require.NoError(t, err)

	jobs := rsp.Groups.All(TagJobGroup)
	require.Len(t, jobs, 3)
	for i, attrs := range jobs {
		id, ok := JobDescriptionAttrs.JobID.Get(attrs)
		assert.True(t, ok)
		assert.Equal(t, i+1, id)
	}

	assert.Equal(t, []byte("%PDF-1.7"), d.Remaining())
}

// Test workaround for named attributes inside collections
func TestDecodeWorkarounds(t *testing.T) {
	data := wireMessage(Version11, uint16(StatusOk), 1,
		[]byte{byte(TagPrinterGroup)},
		wireEntry(TagBeginCollection, "media-size", nil),
		wireEntry(TagInteger, "x-dimension", []byte{0, 0, 0x52, 0x08}),
		wireEntry(TagInteger, "y-dimension", []byte{0, 0, 0x74, 0x04}),
		wireEntry(TagEndCollection, "", nil),
		[]byte{byte(TagEnd)},
	)

	_, err := DecodeResponse(data)
	require.ErrorIs(t, err, ErrInvalidCollectionSyntax)

	rsp, err := NewDecoder(data, DecoderOptions{EnableWorkarounds: true}).
		DecodeResponse()
	require.NoError(t, err)

	attr, _ := rsp.Printer().Get("media-size")
	size, ok := ConvMediaSize.FromValue(attr.Value)
	require.True(t, ok)
	assert.Equal(t, MediaA4, size)
}

// Test collection nesting limit
func TestDecodeCollectionDepth(t *testing.T) {
	var parts [][]byte
	parts = append(parts, []byte{byte(TagPrinterGroup)},
		wireEntry(TagBeginCollection, "c", nil))
	for i := 0; i < 3; i++ {
		parts = append(parts,
			wireEntry(TagMemberName, "", []byte("c")),
			wireEntry(TagBeginCollection, "", nil))
	}
	for i := 0; i < 4; i++ {
		parts = append(parts, wireEntry(TagEndCollection, "", nil))
	}
	parts = append(parts, []byte{byte(TagEnd)})

	data := wireMessage(Version11, 0, 1, parts...)

	_, err := NewDecoder(data, DecoderOptions{MaxCollectionDepth: 4}).
		DecodeResponse()
	assert.NoError(t, err)

	_, err = NewDecoder(data, DecoderOptions{MaxCollectionDepth: 3}).
		DecodeResponse()
	assert.ErrorIs(t, err, ErrInvalidCollectionSyntax)
}

// Test that DecodeError text includes offset
func TestDecodeErrorText(t *testing.T) {
	_, err := DecodeRequest([]byte{1, 1, 0, 11, 0, 0, 0, 1})
	require.Error(t, err)
	assert.Equal(t, "Missing end-of-attributes tag at 0x8", err.Error())
}
