/* ipp-wire - IPP wire codec and typed attribute layer
 *
 * Copyright (C) 2020 and up by Alexander Pevzner (pzz@apevzner.com)
 * See LICENSE for license terms and conditions
 *
 * IPP formatter (pretty-printer)
 */

package ipp

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// FormatterIndentShift is the number of spaces per indentation level
const FormatterIndentShift = 4

// Formatter formats messages, groups and attributes for
// pretty-printing:
//
//	{
//	    REQUEST-ID 1
//	    VERSION 1.1
//	    OPERATION Get-Printer-Attributes
//
//	    GROUP operation-attributes-tag
//	    ATTR "attributes-charset" charset: utf-8
//	    ...
//	}
type Formatter struct {
	indent int          // Indentation level
	filter NameFilter   // Top-level attributes filter
	buf    bytes.Buffer // Output buffer
}

// NewFormatter returns a new Formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

// SetFilter limits output to the top-level attributes selected by
// filter. Collection members are not filtered.
func (f *Formatter) SetFilter(filter NameFilter) {
	f.filter = filter
}

// Reset resets the formatter
func (f *Formatter) Reset() {
	f.buf.Reset()
	f.indent = 0
}

// String returns formatted text
func (f *Formatter) String() string {
	return f.buf.String()
}

// WriteTo writes formatted text to w
func (f *Formatter) WriteTo(w io.Writer) (int64, error) {
	return f.buf.WriteTo(w)
}

// Printf writes a line, indented and with a newline at the end
func (f *Formatter) Printf(format string, args ...interface{}) {
	s := fmt.Sprintf(format, args...)
	for _, line := range strings.Split(s, "\n") {
		if line != "" {
			f.doIndent()
		}
		f.buf.WriteString(line)
		f.buf.WriteByte('\n')
	}
}

// FmtRequest formats a request
func (f *Formatter) FmtRequest(rq *Request) {
	f.fmtMessage(rq.RequestID, rq.Version, "OPERATION "+rq.Op.String(),
		rq.Groups)
}

// FmtResponse formats a response
func (f *Formatter) FmtResponse(rsp *Response) {
	f.fmtMessage(rsp.RequestID, rsp.Version, "STATUS "+rsp.Status.String(),
		rsp.Groups)
}

func (f *Formatter) fmtMessage(id uint32, ver Version, code string,
	groups Groups) {
	f.Printf("{")
	f.indent++

	f.Printf("REQUEST-ID %d", id)
	f.Printf("VERSION %s", ver)
	f.Printf("%s", code)

	for _, g := range groups {
		f.Printf("")
		f.FmtGroup(g)
	}

	f.indent--
	f.Printf("}")
}

// FmtGroup formats a single group
func (f *Formatter) FmtGroup(g Group) {
	f.Printf("GROUP %s", g.Tag)
	f.FmtAttributes(g.Attrs)
}

// FmtAttributes formats attributes selected by the filter
func (f *Formatter) FmtAttributes(attrs *Attributes) {
	attrs.Range(func(name string, attr Attribute) bool {
		if f.filter.Match(name) {
			f.fmtAttributeOrMember(name, attr, false)
		}
		return true
	})
}

func (f *Formatter) fmtAttributeOrMember(name string, attr Attribute,
	member bool) {
	buf := &f.buf

	f.doIndent()
	if member {
		fmt.Fprintf(buf, "MEMBER %q", name)
	} else {
		fmt.Fprintf(buf, "ATTR %q", name)
	}

	tag := TagZero
	for _, v := range attr.Values() {
		if v.Tag() != tag {
			tag = v.Tag()
			fmt.Fprintf(buf, " %s:", tag)
		}

		col, ok := v.(Collection)
		if !ok {
			fmt.Fprintf(buf, " %s", v)
			continue
		}

		buf.WriteString(" {\n")
		f.indent++
		col.Range(func(name string, attr Attribute) bool {
			f.fmtAttributeOrMember(name, attr, true)
			return true
		})
		f.indent--
		f.doIndent()
		buf.WriteString("}")
	}

	buf.WriteByte('\n')
}

func (f *Formatter) doIndent() {
	f.buf.WriteString(strings.Repeat(" ", FormatterIndentShift*f.indent))
}
