/* ipp-wire - IPP wire codec and typed attribute layer
 *
 * Copyright (C) 2020 and up by Alexander Pevzner (pzz@apevzner.com)
 * See LICENSE for license terms and conditions
 *
 * Typed access to attributes
 */

package ipp

import (
	"time"

	"github.com/google/uuid"
)

// Converter converts between a single Value and a Go type T.
// FromValue returns false if the Value has a different syntax.
type Converter[T any] struct {
	FromValue func(Value) (T, bool)
	ToValue   func(T) Value
}

// Syntax converts between a whole Attribute and a Go type T.
// Set returns false if v has no wire representation (e.g., an
// empty set), which means "remove the attribute".
type Syntax[T any] struct {
	Get func(attr Attribute) (T, bool)
	Set func(v T) (Attribute, bool)
}

// One makes a single-valued Syntax. Only the primary value is
// converted.
func One[T any](c Converter[T]) Syntax[T] {
	return Syntax[T]{
		Get: func(attr Attribute) (T, bool) {
			if !attr.IsSet() {
				var zero T
				return zero, false
			}
			return c.FromValue(attr.Value)
		},
		Set: func(v T) (Attribute, bool) {
			return MakeAttribute(c.ToValue(v)), true
		},
	}
}

// SetOf makes a multi-valued Syntax that maps every value of the
// attribute, primary and additional, with c. Values c cannot
// convert are skipped.
func SetOf[T any](c Converter[T]) Syntax[[]T] {
	return Syntax[[]T]{
		Get: func(attr Attribute) ([]T, bool) {
			var out []T
			for _, v := range attr.Values() {
				if x, ok := c.FromValue(v); ok {
					out = append(out, x)
				}
			}
			return out, len(out) != 0
		},
		Set: func(vals []T) (Attribute, bool) {
			var attr Attribute
			for _, x := range vals {
				attr.Add(c.ToValue(x))
			}
			return attr, attr.IsSet()
		},
	}
}

// Field binds an attribute name to its Syntax
type Field[T any] struct {
	Name   string
	Syntax Syntax[T]
}

// NewField makes a single-valued Field
func NewField[T any](name string, c Converter[T]) Field[T] {
	return Field[T]{Name: name, Syntax: One(c)}
}

// NewSetField makes a multi-valued Field
func NewSetField[T any](name string, c Converter[T]) Field[[]T] {
	return Field[[]T]{Name: name, Syntax: SetOf(c)}
}

// Get returns the field value. It returns false if attribute is
// missing or has an unexpected syntax.
func (f Field[T]) Get(attrs *Attributes) (T, bool) {
	attr, found := attrs.Get(f.Name)
	if !found {
		var zero T
		return zero, false
	}
	return f.Syntax.Get(attr)
}

// Set stores the field value
func (f Field[T]) Set(attrs *Attributes, v T) {
	attr, ok := f.Syntax.Set(v)
	if !ok {
		attrs.Delete(f.Name)
		return
	}
	attrs.Set(f.Name, attr)
}

// SetPtr stores *v, or removes the attribute if v is nil
func (f Field[T]) SetPtr(attrs *Attributes, v *T) {
	if v == nil {
		f.Clear(attrs)
		return
	}
	f.Set(attrs, *v)
}

// Clear removes the attribute
func (f Field[T]) Clear(attrs *Attributes) {
	attrs.Delete(f.Name)
}

// stringOf makes Converter for one of the plain string syntaxes
func stringOf[V interface {
	~string
	Value
}]() Converter[string] {
	return Converter[string]{
		FromValue: func(v Value) (string, bool) {
			s, ok := v.(V)
			return string(s), ok
		},
		ToValue: func(s string) Value { return V(s) },
	}
}

// Converters for the basic syntaxes
var (
	ConvCharset         = stringOf[Charset]()
	ConvNaturalLanguage = stringOf[NaturalLanguage]()
	ConvMimeMediaType   = stringOf[MimeMediaType]()
	ConvURI             = stringOf[URI]()
	ConvURIScheme       = stringOf[URIScheme]()
	ConvKeyword         = stringOf[Keyword]()

	// ConvName accepts name with and without language,
	// and writes name without language
	ConvName = Converter[string]{
		FromValue: func(v Value) (string, bool) {
			switch v := v.(type) {
			case Name:
				return string(v), true
			case NameWithLang:
				return v.Name, true
			}
			return "", false
		},
		ToValue: func(s string) Value { return Name(s) },
	}

	// ConvText accepts text with and without language,
	// and writes text without language
	ConvText = Converter[string]{
		FromValue: func(v Value) (string, bool) {
			switch v := v.(type) {
			case Text:
				return string(v), true
			case TextWithLang:
				return v.Text, true
			}
			return "", false
		},
		ToValue: func(s string) Value { return Text(s) },
	}

	// ConvInteger accepts integer and enum, and writes integer
	ConvInteger = Converter[int]{
		FromValue: func(v Value) (int, bool) {
			switch v := v.(type) {
			case Integer:
				return int(v), true
			case Enum:
				return int(v), true
			}
			return 0, false
		},
		ToValue: func(i int) Value { return Integer(int32(i)) },
	}

	ConvBoolean = Converter[bool]{
		FromValue: func(v Value) (bool, bool) {
			b, ok := v.(Boolean)
			return bool(b), ok
		},
		ToValue: func(b bool) Value { return Boolean(b) },
	}

	ConvRange = Converter[Range]{
		FromValue: func(v Value) (Range, bool) {
			r, ok := v.(Range)
			return r, ok
		},
		ToValue: func(r Range) Value { return r },
	}

	ConvResolution = Converter[Resolution]{
		FromValue: func(v Value) (Resolution, bool) {
			r, ok := v.(Resolution)
			return r, ok
		},
		ToValue: func(r Resolution) Value { return r },
	}

	// ConvDateTime fails on dateTime values with out-of-range fields
	ConvDateTime = Converter[time.Time]{
		FromValue: func(v Value) (time.Time, bool) {
			dt, ok := v.(DateTime)
			if !ok {
				return time.Time{}, false
			}
			t, err := dt.Time()
			return t, err == nil
		},
		ToValue: func(t time.Time) Value { return MakeDateTime(t) },
	}

	// ConvUUID maps "urn:uuid:..." URIs (printer-uuid, job-uuid)
	ConvUUID = Converter[uuid.UUID]{
		FromValue: func(v Value) (uuid.UUID, bool) {
			s, ok := v.(URI)
			if !ok {
				return uuid.Nil, false
			}
			u, err := uuid.Parse(string(s))
			return u, err == nil
		},
		ToValue: func(u uuid.UUID) Value { return URI(u.URN()) },
	}
)

// ConvKeywordOf makes Converter for a keyword-valued Go type.
// Names are accepted too, as some keyword attributes allow
// "type3 keyword | name" values.
func ConvKeywordOf[T ~string]() Converter[T] {
	return Converter[T]{
		FromValue: func(v Value) (T, bool) {
			switch v := v.(type) {
			case Keyword:
				return T(v), true
			case Name:
				return T(v), true
			}
			return "", false
		},
		ToValue: func(k T) Value { return Keyword(k) },
	}
}

// ConvEnumOf makes Converter for an enum-valued Go type.
// Integers are accepted too.
func ConvEnumOf[T ~int32]() Converter[T] {
	return Converter[T]{
		FromValue: func(v Value) (T, bool) {
			switch v := v.(type) {
			case Enum:
				return T(v), true
			case Integer:
				return T(v), true
			}
			return 0, false
		},
		ToValue: func(e T) Value { return Enum(e) },
	}
}
