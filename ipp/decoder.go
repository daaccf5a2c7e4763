/* ipp-wire - IPP wire codec and typed attribute layer
 *
 * Copyright (C) 2020 and up by Alexander Pevzner (pzz@apevzner.com)
 * See LICENSE for license terms and conditions
 *
 * IPP Message decoder
 */

package ipp

import (
	"encoding/binary"
	"fmt"
)

// DefaultMaxCollectionDepth limits nesting of collections when
// DecoderOptions.MaxCollectionDepth is not set
const DefaultMaxCollectionDepth = 64

// DecoderOptions represents message decoder options
type DecoderOptions struct {
	// EnableWorkarounds, if set to true, enables workarounds
	// for messages that violate the protocol:
	//   - some devices (Pantum M7300FDW, for one) use named
	//     attributes within a collection instead of
	//     memberAttrName entries. The name is taken as the
	//     member name.
	EnableWorkarounds bool

	// MaxCollectionDepth limits nesting of collections.
	// Zero means DefaultMaxCollectionDepth.
	MaxCollectionDepth int
}

// Decoder decodes a single message from a byte buffer.
//
// Decoder keeps no state shared with other decoders, so independent
// buffers may be decoded concurrently.
type Decoder struct {
	data []byte         // Input buffer
	off  int            // Current offset
	opt  DecoderOptions // Options
}

// NewDecoder creates a Decoder over data
func NewDecoder(data []byte, opt DecoderOptions) *Decoder {
	if opt.MaxCollectionDepth <= 0 {
		opt.MaxCollectionDepth = DefaultMaxCollectionDepth
	}
	return &Decoder{data: data, opt: opt}
}

// DecodeRequest decodes the buffer as a request
func (d *Decoder) DecodeRequest() (*Request, error) {
	ver, code, id, groups, err := d.decode()
	if err != nil {
		return nil, err
	}

	return &Request{Version: ver, Op: Op(code), RequestID: id,
		Groups: groups}, nil
}

// DecodeResponse decodes the buffer as a response
func (d *Decoder) DecodeResponse() (*Response, error) {
	ver, code, id, groups, err := d.decode()
	if err != nil {
		return nil, err
	}

	return &Response{Version: ver, Status: Status(code), RequestID: id,
		Groups: groups}, nil
}

// Remaining returns bytes that follow the end-of-attributes tag of
// the decoded message. For Print-Job and Send-Document requests this
// is the document data.
func (d *Decoder) Remaining() []byte {
	return d.data[d.off:]
}

// decode decodes the message. Requests and responses share the
// layout, only the meaning of code differs.
func (d *Decoder) decode() (ver Version, code uint16, id uint32,
	groups Groups, err error) {
	// Wire format:
	//
	//   2 bytes:  Version
	//   2 bytes:  Code (Operation or Status)
	//   4 bytes:  RequestID
	//   variable: attribute groups
	//   1 byte:   TagEnd
	d.off = 0
	if len(d.data) < 8 {
		err = d.fail(len(d.data), ErrMalformedHeader, 0,
			fmt.Sprintf("message truncated (%d bytes)", len(d.data)))
		return
	}

	ver = Version(binary.BigEndian.Uint16(d.data[0:]))
	code = binary.BigEndian.Uint16(d.data[2:])
	id = binary.BigEndian.Uint32(d.data[4:])
	d.off = 8

	groups, err = d.decodeGroups()
	return
}

// decodeGroups decodes attribute groups up to and including the
// end-of-attributes tag
func (d *Decoder) decodeGroups() (Groups, error) {
	var groups Groups

	for {
		if d.off >= len(d.data) {
			return nil, d.fail(d.off, ErrMissingEndOfAttributes, 0, "")
		}

		tag := Tag(d.data[d.off])
		if !tag.IsDelimiter() {
			return nil, d.fail(d.off, ErrUnexpectedDelimiterTag, tag,
				fmt.Sprintf("%s where group expected", tag))
		}

		d.off++
		if tag == TagEnd {
			return groups, nil
		}

		err := d.decodeGroupAttributes(groups.Append(tag))
		if err != nil {
			return nil, err
		}
	}
}

// decodeGroupAttributes decodes attributes of a single group. It stops
// without consuming anything at the next delimiter tag or at the end
// of buffer.
func (d *Decoder) decodeGroupAttributes(attrs *Attributes) error {
	for d.off < len(d.data) && Tag(d.data[d.off]).IsValue() {
		off := d.off
		tag, name, data, err := d.decodeEntry()
		if err != nil {
			return err
		}

		var v Value
		switch tag {
		case TagEndCollection, TagMemberName:
			return d.fail(off, ErrUnexpectedValueTag, tag,
				fmt.Sprintf("%s outside of collection", tag))

		case TagBeginCollection:
			v, err = d.decodeCollection(1)
		default:
			v, err = d.decodeValue(off, tag, data)
		}

		if err != nil {
			return err
		}

		if err = attrs.push(name, v); err != nil {
			return d.fail(off, ErrUnexpectedValueTag, tag, err.Error())
		}
	}

	return nil
}

// decodeCollection decodes collection members that follow the
// begCollection entry, up to and including the endCollection entry.
//
// Wire format:
//
//	ATTR: Tag = TagMemberName, name = "",     - member name  \
//	      value = name of the next member                     |
//	                                                          | repeated for
//	ATTR: Tag = any value tag, name = "",     - repeated for  | each member
//	      value = member value                  multi-value  /
//	                                            members
//	ATTR: Tag = TagEndCollection, name = "",
//	      value is empty
func (d *Decoder) decodeCollection(depth int) (Collection, error) {
	collection := NewCollection()
	memberName := ""

	if depth > d.opt.MaxCollectionDepth {
		return collection, d.fail(d.off, ErrInvalidCollectionSyntax,
			TagBeginCollection,
			fmt.Sprintf("nesting deeper than %d", d.opt.MaxCollectionDepth))
	}

	for {
		if d.off >= len(d.data) {
			return collection, d.fail(d.off, ErrMissingEndOfCollection, 0, "")
		}

		off := d.off
		if tag := Tag(d.data[off]); tag.IsDelimiter() {
			return collection, d.fail(off, ErrMissingEndOfCollection, tag,
				fmt.Sprintf("%s inside collection", tag))
		}

		tag, name, data, err := d.decodeEntry()
		if err != nil {
			return collection, err
		}

		switch tag {
		case TagEndCollection:
			if memberName != "" {
				return collection, d.fail(off, ErrInvalidCollectionSyntax, tag,
					fmt.Sprintf("member %q without value", memberName))
			}
			return collection, nil

		case TagMemberName:
			if memberName != "" {
				return collection, d.fail(off, ErrInvalidCollectionSyntax, tag,
					fmt.Sprintf("member %q without value", memberName))
			}

			memberName = string(data)
			if memberName == "" {
				return collection, d.fail(off, ErrInvalidCollectionSyntax, tag,
					"empty member name")
			}
			continue
		}

		if name != "" {
			if !d.opt.EnableWorkarounds || memberName != "" {
				return collection, d.fail(off, ErrInvalidCollectionSyntax, tag,
					fmt.Sprintf("named attribute %q inside collection", name))
			}
			memberName = name
		}

		var v Value
		if tag == TagBeginCollection {
			v, err = d.decodeCollection(depth + 1)
		} else {
			v, err = d.decodeValue(off, tag, data)
		}

		if err != nil {
			return collection, err
		}

		if err = collection.push(memberName, v); err != nil {
			return collection, d.fail(off, ErrInvalidCollectionSyntax, tag,
				fmt.Sprintf("%s value without member name", tag))
		}
		memberName = ""
	}
}

// decodeEntry decodes a single (tag, name, value) entry.
//
// Wire format:
//
//	1   byte:   Tag
//	2+N bytes:  Name length (2 bytes) + name string
//	2+N bytes:  Value length (2 bytes) + value bytes
//
// Zero-length name means "next value of the previous attribute",
// so the returned name is empty in this case.
func (d *Decoder) decodeEntry() (tag Tag, name string, data []byte, err error) {
	off := d.off
	tag = Tag(d.data[d.off])
	d.off++

	var raw []byte
	raw, err = d.decodeBytes()
	if err == nil {
		name = string(raw)
		data, err = d.decodeBytes()
	}

	if err != nil {
		err = d.fail(off, ErrMalformedValue, tag, err.Error())
	}

	return
}

// decodeBytes decodes a length-prefixed byte sequence
func (d *Decoder) decodeBytes() ([]byte, error) {
	if len(d.data)-d.off < 2 {
		return nil, fmt.Errorf("length truncated at 0x%x", d.off)
	}

	n := int(binary.BigEndian.Uint16(d.data[d.off:]))
	d.off += 2

	if len(d.data)-d.off < n {
		return nil, fmt.Errorf("%d bytes announced, %d available",
			n, len(d.data)-d.off)
	}

	data := d.data[d.off : d.off+n]
	d.off += n
	return data, nil
}

// decodeValue decodes value payload of entry at off
func (d *Decoder) decodeValue(off int, tag Tag, data []byte) (Value, error) {
	v, err := decodeValue(tag, data)
	if err != nil {
		return nil, d.fail(off, ErrMalformedValue, tag, err.Error())
	}
	return v, nil
}

// fail creates a DecodeError
func (d *Decoder) fail(off int, err error, tag Tag, context string) error {
	return &DecodeError{Err: err, Offset: off, Tag: tag, Context: context}
}
