/* ipp-wire - IPP wire codec and typed attribute layer
 *
 * Copyright (C) 2020 and up by Alexander Pevzner (pzz@apevzner.com)
 * See LICENSE for license terms and conditions
 *
 * Message attributes
 */

package ipp

import (
	"errors"
	"strings"

	"github.com/elliotchance/orderedmap/v3"
)

// Attribute is a named attribute value: the primary value plus
// the optional additional values of a multi-valued attribute.
// The name is the key under which Attribute is stored in Attributes.
type Attribute struct {
	Value      Value   // Primary value
	Additional []Value // Additional values, in wire order
}

// MakeAttribute makes an Attribute with one or more values
func MakeAttribute(v Value, more ...Value) Attribute {
	attr := Attribute{Value: v}
	if len(more) != 0 {
		attr.Additional = append([]Value(nil), more...)
	}
	return attr
}

// IsSet reports whether Attribute has a primary value
func (a Attribute) IsSet() bool {
	return a.Value != nil
}

// Values returns primary value followed by additional values.
// It is never empty for an Attribute that IsSet.
func (a Attribute) Values() []Value {
	if a.Value == nil {
		return nil
	}

	vals := make([]Value, 0, 1+len(a.Additional))
	vals = append(vals, a.Value)
	return append(vals, a.Additional...)
}

// Add appends a value. The first value added to an empty
// Attribute becomes the primary value.
func (a *Attribute) Add(v Value) {
	if a.Value == nil {
		a.Value = v
	} else {
		a.Additional = append(a.Additional, v)
	}
}

// Equal checks that two attributes have equal values, in order
func (a Attribute) Equal(a2 Attribute) bool {
	if len(a.Additional) != len(a2.Additional) ||
		!ValueEqual(a.Value, a2.Value) {
		return false
	}

	for i := range a.Additional {
		if !ValueEqual(a.Additional[i], a2.Additional[i]) {
			return false
		}
	}

	return true
}

// DeepCopy returns a copy that shares nothing mutable with the
// original, collections included.
func (a Attribute) DeepCopy() Attribute {
	cp := Attribute{Value: deepCopyValue(a.Value)}
	if a.Additional != nil {
		cp.Additional = make([]Value, len(a.Additional))
		for i, v := range a.Additional {
			cp.Additional[i] = deepCopyValue(v)
		}
	}
	return cp
}

func deepCopyValue(v Value) Value {
	switch v := v.(type) {
	case Collection:
		return Collection{v.Attributes.DeepCopy()}
	case OctetString:
		return append(OctetString(nil), v...)
	case UnknownTag:
		return UnknownTag{T: v.T, Data: append([]byte(nil), v.Data...)}
	}
	return v
}

// Attributes is an ordered, name-keyed container of attributes.
// It holds the attributes of a group as well as the members of
// a collection.
//
// Names are unique: setting an existing name replaces its value
// but keeps its original position.
//
// The zero value is an empty container ready to use. All read
// methods accept a nil *Attributes as an empty container.
type Attributes struct {
	m    *orderedmap.OrderedMap[string, Attribute]
	last string // Most recently introduced name, for push
}

// NewAttributes returns an empty Attributes
func NewAttributes() *Attributes {
	return &Attributes{}
}

// init creates the underlying map on first write
func (attrs *Attributes) init() {
	if attrs.m == nil {
		attrs.m = orderedmap.NewOrderedMap[string, Attribute]()
	}
}

// Len returns number of attributes
func (attrs *Attributes) Len() int {
	if attrs == nil || attrs.m == nil {
		return 0
	}
	return attrs.m.Len()
}

// Get returns attribute by name
func (attrs *Attributes) Get(name string) (Attribute, bool) {
	if attrs == nil || attrs.m == nil {
		return Attribute{}, false
	}
	return attrs.m.Get(name)
}

// Has reports whether attribute exists
func (attrs *Attributes) Has(name string) bool {
	_, found := attrs.Get(name)
	return found
}

// Set stores attribute under the name. Setting an Attribute that
// is not IsSet removes the name.
func (attrs *Attributes) Set(name string, attr Attribute) {
	if !attr.IsSet() {
		attrs.Delete(name)
		return
	}

	attrs.init()
	attrs.m.Set(name, attr)
}

// Add appends values to the named attribute, creating it
// at the end of the container if it doesn't exist yet.
func (attrs *Attributes) Add(name string, v Value, more ...Value) {
	attr, _ := attrs.Get(name)
	attr.Add(v)
	for _, v2 := range more {
		attr.Add(v2)
	}
	attrs.Set(name, attr)
}

// Delete removes attribute by name. It returns true if
// the attribute existed.
func (attrs *Attributes) Delete(name string) bool {
	if attrs == nil || attrs.m == nil {
		return false
	}
	if attrs.last == name {
		attrs.last = ""
	}
	return attrs.m.Delete(name)
}

// Names returns attribute names, in order
func (attrs *Attributes) Names() []string {
	names := make([]string, 0, attrs.Len())
	attrs.Range(func(name string, _ Attribute) bool {
		names = append(names, name)
		return true
	})
	return names
}

// Range calls f for each attribute, in order, until f returns false
func (attrs *Attributes) Range(f func(name string, attr Attribute) bool) {
	if attrs == nil || attrs.m == nil {
		return
	}

	for el := attrs.m.Front(); el != nil; el = el.Next() {
		if !f(el.Key, el.Value) {
			return
		}
	}
}

// At returns attribute at the given position
func (attrs *Attributes) At(i int) (name string, attr Attribute, ok bool) {
	if i < 0 || i >= attrs.Len() {
		return "", Attribute{}, false
	}

	el := attrs.m.Front()
	for ; i > 0; i-- {
		el = el.Next()
	}

	return el.Key, el.Value, true
}

// Equal checks that two containers hold equal attributes
// in the same order.
func (attrs *Attributes) Equal(attrs2 *Attributes) bool {
	if attrs.Len() != attrs2.Len() {
		return false
	}

	if attrs.Len() == 0 {
		return true
	}

	el1, el2 := attrs.m.Front(), attrs2.m.Front()
	for el1 != nil {
		if el1.Key != el2.Key || !el1.Value.Equal(el2.Value) {
			return false
		}
		el1, el2 = el1.Next(), el2.Next()
	}

	return true
}

// DeepCopy returns a deep copy of the container
func (attrs *Attributes) DeepCopy() *Attributes {
	cp := NewAttributes()
	attrs.Range(func(name string, attr Attribute) bool {
		cp.Set(name, attr.DeepCopy())
		return true
	})
	return cp
}

// String returns a one-line form of the container
func (attrs *Attributes) String() string {
	var sb strings.Builder
	attrs.Range(func(name string, attr Attribute) bool {
		if sb.Len() != 0 {
			sb.WriteByte(' ')
		}

		sb.WriteString(name)
		sb.WriteByte('=')
		for i, v := range attr.Values() {
			if i != 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(v.String())
		}
		return true
	})
	return sb.String()
}

// errNoPrecedingAttribute reported by push for a nameless value
// that has nothing to continue
var errNoPrecedingAttribute = errors.New("additional value without preceding attribute")

// push adds a decoded (name, value) entry using the wire rules:
// a named entry introduces the attribute, a nameless one appends
// to the most recently introduced attribute.
func (attrs *Attributes) push(name string, v Value) error {
	if name == "" {
		attr, found := attrs.Get(attrs.last)
		if attrs.last == "" || !found {
			return errNoPrecedingAttribute
		}
		attr.Add(v)
		attrs.m.Set(attrs.last, attr)
		return nil
	}

	attrs.Set(name, MakeAttribute(v))
	attrs.last = name
	return nil
}
