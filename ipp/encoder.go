/* ipp-wire - IPP wire codec and typed attribute layer
 *
 * Copyright (C) 2020 and up by Alexander Pevzner (pzz@apevzner.com)
 * See LICENSE for license terms and conditions
 *
 * IPP Message encoder
 */

package ipp

import (
	"encoding/binary"
	"fmt"
	"math"
)

// messageEncoder represents Message encoder
type messageEncoder struct {
	out []byte // Output buffer
}

// Encode the message
func (me *messageEncoder) encode(ver Version, code uint16, id uint32,
	groups Groups) error {
	// Wire format:
	//
	//   2 bytes:  Version
	//   2 bytes:  Code (Operation or Status)
	//   4 bytes:  RequestID
	//   variable: attribute groups
	//   1 byte:   TagEnd
	me.out = binary.BigEndian.AppendUint16(me.out, uint16(ver))
	me.out = binary.BigEndian.AppendUint16(me.out, code)
	me.out = binary.BigEndian.AppendUint32(me.out, id)

	for _, g := range groups {
		if !g.Tag.IsGroup() {
			return fmt.Errorf("%w: %s used as group tag",
				ErrInvalidData, g.Tag)
		}

		me.out = append(me.out, byte(g.Tag))

		var err error
		g.Attrs.Range(func(name string, attr Attribute) bool {
			err = me.encodeAttr(name, attr)
			return err == nil
		})

		if err != nil {
			return err
		}
	}

	me.out = append(me.out, byte(TagEnd))
	return nil
}

// encodeAttr encodes attribute. The first value carries the name,
// each additional value comes without name.
func (me *messageEncoder) encodeAttr(name string, attr Attribute) error {
	if name == "" {
		return fmt.Errorf("%w: attribute without name", ErrInvalidData)
	}

	if !attr.IsSet() {
		return fmt.Errorf("%w: attribute %q without value",
			ErrInvalidData, name)
	}

	for _, v := range attr.Values() {
		err := me.encodeValue(name, v)
		if err != nil {
			return fmt.Errorf("%q: %w", name, err)
		}
		name = ""
	}

	return nil
}

// encodeValue encodes a single value entry
//
// Wire format:
//
//	1 byte:   Tag
//	2 bytes:  len(Name)
//	variable: name
//	2 bytes:  len(Value)
//	variable  Value
func (me *messageEncoder) encodeValue(name string, v Value) error {
	if v == nil {
		return fmt.Errorf("%w: nil value", ErrInvalidData)
	}

	tag := v.Tag()
	if tag.IsDelimiter() || tag == TagEndCollection || tag == TagMemberName {
		return fmt.Errorf("%w: tag %s cannot be used with value",
			ErrInvalidData, tag)
	}

	// Out-of-band values never carry a payload. UnknownTag keeps its
	// raw bytes even in the out-of-band range.
	var data []byte
	if _, raw := v.(UnknownTag); raw || !tag.IsOutOfBand() {
		data = v.encode()
	}

	err := me.encodeEntry(tag, name, data)
	if err != nil {
		return err
	}

	if collection, ok := v.(Collection); ok {
		return me.encodeCollection(collection)
	}

	return nil
}

// encodeCollection encodes collection members that follow the
// begCollection entry
func (me *messageEncoder) encodeCollection(collection Collection) error {
	var err error

	collection.Range(func(name string, attr Attribute) bool {
		if name == "" {
			err = fmt.Errorf("%w: collection member without name",
				ErrInvalidData)
			return false
		}

		if !attr.IsSet() {
			err = fmt.Errorf("%w: collection member %q without value",
				ErrInvalidData, name)
			return false
		}

		err = me.encodeEntry(TagMemberName, "", []byte(name))
		for _, v := range attr.Values() {
			if err != nil {
				break
			}
			err = me.encodeValue("", v)
		}

		return err == nil
	})

	if err != nil {
		return err
	}

	return me.encodeEntry(TagEndCollection, "", nil)
}

// encodeEntry writes tag, length-prefixed name and length-prefixed value
func (me *messageEncoder) encodeEntry(tag Tag, name string, data []byte) error {
	if len(name) > math.MaxUint16 || len(data) > math.MaxUint16 {
		return fmt.Errorf("%w: %s exceeds %d bytes",
			ErrValueTooLong, tag, math.MaxUint16)
	}

	me.out = append(me.out, byte(tag))
	me.out = binary.BigEndian.AppendUint16(me.out, uint16(len(name)))
	me.out = append(me.out, name...)
	me.out = binary.BigEndian.AppendUint16(me.out, uint16(len(data)))
	me.out = append(me.out, data...)

	return nil
}
