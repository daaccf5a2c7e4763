/* ipp-wire - IPP wire codec and typed attribute layer
 *
 * Copyright (C) 2020 and up by Alexander Pevzner (pzz@apevzner.com)
 * See LICENSE for license terms and conditions
 *
 * Tests for attributes container
 */

package ipp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test that additional values are kept in order
func TestAttributeValues(t *testing.T) {
	attr := MakeAttribute(Keyword("a"), Keyword("b"), Keyword("c"))
	attr.Add(Keyword("d"))

	vals := attr.Values()
	require.Len(t, vals, 4)
	assert.Equal(t, []Value{Keyword("a"), Keyword("b"), Keyword("c"),
		Keyword("d")}, vals)

	var empty Attribute
	assert.False(t, empty.IsSet())
	assert.Nil(t, empty.Values())

	empty.Add(Integer(1))
	assert.True(t, empty.IsSet())
	assert.Empty(t, empty.Additional)
}

// Test container order and replacement rules
func TestAttributesOrder(t *testing.T) {
	attrs := NewAttributes()
	attrs.Add("one", Integer(1))
	attrs.Add("two", Integer(2))
	attrs.Add("three", Integer(3))
	assert.Equal(t, []string{"one", "two", "three"}, attrs.Names())

	// Set of existing name keeps position
	attrs.Set("one", MakeAttribute(Integer(10)))
	assert.Equal(t, []string{"one", "two", "three"}, attrs.Names())

	attr, found := attrs.Get("one")
	require.True(t, found)
	assert.Equal(t, Integer(10), attr.Value)

	// Add to existing name appends values
	attrs.Add("two", Integer(20), Integer(200))
	attr, _ = attrs.Get("two")
	assert.Equal(t, []Value{Integer(2), Integer(20), Integer(200)},
		attr.Values())

	name, attr, ok := attrs.At(2)
	require.True(t, ok)
	assert.Equal(t, "three", name)
	assert.Equal(t, Integer(3), attr.Value)

	_, _, ok = attrs.At(3)
	assert.False(t, ok)

	assert.True(t, attrs.Delete("two"))
	assert.False(t, attrs.Delete("two"))
	assert.Equal(t, []string{"one", "three"}, attrs.Names())

	// Set of unset Attribute removes
	attrs.Set("one", Attribute{})
	assert.Equal(t, []string{"three"}, attrs.Names())
}

// Test that nil and zero containers are usable for reading
func TestAttributesNil(t *testing.T) {
	var attrs *Attributes

	assert.Equal(t, 0, attrs.Len())
	assert.False(t, attrs.Has("x"))
	assert.Empty(t, attrs.Names())
	assert.False(t, attrs.Delete("x"))
	assert.True(t, attrs.Equal(NewAttributes()))
	assert.Equal(t, "", attrs.String())

	var zero Attributes
	zero.Add("x", Boolean(true))
	assert.True(t, zero.Has("x"))
}

// Test the decoder's push rule
func TestAttributesPush(t *testing.T) {
	attrs := NewAttributes()

	err := attrs.push("", Keyword("orphan"))
	assert.ErrorIs(t, err, errNoPrecedingAttribute)

	require.NoError(t, attrs.push("a", Integer(1)))
	require.NoError(t, attrs.push("", Integer(2)))
	require.NoError(t, attrs.push("b", Integer(3)))
	require.NoError(t, attrs.push("", Integer(4)))

	// Duplicate name: last wins, position kept
	require.NoError(t, attrs.push("a", Integer(5)))
	require.NoError(t, attrs.push("", Integer(6)))

	assert.Equal(t, []string{"a", "b"}, attrs.Names())

	a, _ := attrs.Get("a")
	b, _ := attrs.Get("b")
	assert.Equal(t, []Value{Integer(5), Integer(6)}, a.Values())
	assert.Equal(t, []Value{Integer(3), Integer(4)}, b.Values())
}

// Test Equal and DeepCopy
func TestAttributesDeepCopy(t *testing.T) {
	inner := NewCollection()
	inner.Add("x-dimension", Integer(21000))

	attrs := NewAttributes()
	attrs.Add("media-size", inner)
	attrs.Add("data", OctetString("abc"))

	cp := attrs.DeepCopy()
	require.True(t, attrs.Equal(cp))

	inner.Add("y-dimension", Integer(29700))
	assert.False(t, attrs.Equal(cp))

	attr, _ := cp.Get("media-size")
	assert.Equal(t, 1, attr.Value.(Collection).Len())

	// Order matters
	a1, a2 := NewAttributes(), NewAttributes()
	a1.Add("a", Integer(1))
	a1.Add("b", Integer(2))
	a2.Add("b", Integer(2))
	a2.Add("a", Integer(1))
	assert.False(t, a1.Equal(a2))
}

// Test ValueEqual
func TestValueEqual(t *testing.T) {
	assert.True(t, ValueEqual(OctetString("a"), OctetString("a")))
	assert.False(t, ValueEqual(OctetString("a"), OctetString("b")))
	assert.False(t, ValueEqual(Integer(1), Enum(1)))
	assert.False(t, ValueEqual(Text("a"), Name("a")))
	assert.True(t, ValueEqual(UnknownTag{0x7f, []byte{1}},
		UnknownTag{0x7f, []byte{1}}))
	assert.False(t, ValueEqual(UnknownTag{0x7f, []byte{1}},
		UnknownTag{0x7e, []byte{1}}))
	assert.True(t, ValueEqual(nil, nil))
	assert.False(t, ValueEqual(nil, Integer(0)))
}
