/* ipp-wire - IPP wire codec and typed attribute layer
 *
 * Copyright (C) 2020 and up by Alexander Pevzner (pzz@apevzner.com)
 * See LICENSE for license terms and conditions
 *
 * IPP protocol messages
 */

package ipp

import (
	"fmt"
	"io"
)

// ContentType is the HTTP content type of IPP messages
const ContentType = "application/ipp"

// Version is the protocol version: major and minor numbers,
// packed into a single 16-bit word
type Version uint16

// Protocol versions
const (
	Version10 Version = 0x0100
	Version11 Version = 0x0101
	Version20 Version = 0x0200
)

// DefaultVersion is the version used by builders
const DefaultVersion = Version11

// MakeVersion makes version from major and minor parts
func MakeVersion(major, minor uint8) Version {
	return Version(major)<<8 | Version(minor)
}

// Major returns a major part of version
func (v Version) Major() uint8 {
	return uint8(v >> 8)
}

// Minor returns a minor part of version
func (v Version) Minor() uint8 {
	return uint8(v)
}

// String converts version to string (i.e., "1.1")
func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major(), v.Minor())
}

// Request is a client request
type Request struct {
	Version   Version // Protocol version
	Op        Op      // Operation
	RequestID uint32  // Echoed back in the response
	Groups    Groups  // Attribute groups, in wire order
}

// Response is a server response
type Response struct {
	Version   Version // Protocol version
	Status    Status  // Status code
	RequestID uint32  // Copied from the request
	Groups    Groups  // Attribute groups, in wire order
}

// Operation returns the operation attributes, creating the group
// if it doesn't exist
func (r *Request) Operation() *Attributes {
	return r.Groups.Group(TagOperationGroup)
}

// Job returns the job attributes, creating the group if it
// doesn't exist
func (r *Request) Job() *Attributes {
	return r.Groups.Group(TagJobGroup)
}

// Encode writes request to w
func (r *Request) Encode(w io.Writer) error {
	data, err := r.EncodeBytes()
	if err == nil {
		_, err = w.Write(data)
	}
	return err
}

// EncodeBytes encodes request to a byte slice
func (r *Request) EncodeBytes() ([]byte, error) {
	me := messageEncoder{}
	err := me.encode(r.Version, uint16(r.Op), r.RequestID, r.Groups)
	return me.out, err
}

// Equal checks that two requests are equal
func (r *Request) Equal(r2 *Request) bool {
	return r.Version == r2.Version &&
		r.Op == r2.Op &&
		r.RequestID == r2.RequestID &&
		r.Groups.Equal(r2.Groups)
}

// DeepCopy returns a deep copy of the request
func (r *Request) DeepCopy() *Request {
	cp := *r
	cp.Groups = r.Groups.DeepCopy()
	return &cp
}

// Operation returns the operation attributes, or nil
func (r *Response) Operation() *Attributes {
	return r.Groups.Lookup(TagOperationGroup)
}

// Job returns the first job group's attributes, or nil
func (r *Response) Job() *Attributes {
	return r.Groups.Lookup(TagJobGroup)
}

// Printer returns the first printer group's attributes, or nil
func (r *Response) Printer() *Attributes {
	return r.Groups.Lookup(TagPrinterGroup)
}

// Unsupported returns the unsupported attributes, or nil
func (r *Response) Unsupported() *Attributes {
	return r.Groups.Lookup(TagUnsupportedGroup)
}

// StatusError returns *StatusError if response status belongs
// to an error class, nil otherwise
func (r *Response) StatusError() error {
	if !r.Status.IsError() {
		return nil
	}

	msg, _ := ResponseAttrs.StatusMessage.Get(r.Operation())
	return &StatusError{Status: r.Status, Message: msg}
}

// Encode writes response to w
func (r *Response) Encode(w io.Writer) error {
	data, err := r.EncodeBytes()
	if err == nil {
		_, err = w.Write(data)
	}
	return err
}

// EncodeBytes encodes response to a byte slice
func (r *Response) EncodeBytes() ([]byte, error) {
	me := messageEncoder{}
	err := me.encode(r.Version, uint16(r.Status), r.RequestID, r.Groups)
	return me.out, err
}

// Equal checks that two responses are equal
func (r *Response) Equal(r2 *Response) bool {
	return r.Version == r2.Version &&
		r.Status == r2.Status &&
		r.RequestID == r2.RequestID &&
		r.Groups.Equal(r2.Groups)
}

// DeepCopy returns a deep copy of the response
func (r *Response) DeepCopy() *Response {
	cp := *r
	cp.Groups = r.Groups.DeepCopy()
	return &cp
}

// DecodeRequest decodes a request from bytes. Bytes following the
// end-of-attributes tag (the document, if any) are ignored; use
// Decoder to get them.
func DecodeRequest(data []byte) (*Request, error) {
	return NewDecoder(data, DecoderOptions{}).DecodeRequest()
}

// DecodeResponse decodes a response from bytes
func DecodeResponse(data []byte) (*Response, error) {
	return NewDecoder(data, DecoderOptions{}).DecodeResponse()
}
