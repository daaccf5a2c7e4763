/* ipp-wire - IPP wire codec and typed attribute layer
 *
 * Copyright (C) 2020 and up by Alexander Pevzner (pzz@apevzner.com)
 * See LICENSE for license terms and conditions
 *
 * Attribute name filtering
 */

package ipp

// NameFilter selects attributes by name, using glob-style patterns:
//
//	?   - matches exactly one character
//	*   - matches any sequence of characters
//	\C  - matches character C
//	C   - matches character C (C is not *, ? or \)
//
// A name is selected if it matches any of patterns. An empty
// NameFilter selects everything.
type NameFilter []string

// Match reports whether name is selected by the filter
func (filter NameFilter) Match(name string) bool {
	if len(filter) == 0 {
		return true
	}

	for _, pattern := range filter {
		if globMatch(name, pattern) {
			return true
		}
	}

	return false
}

// Select returns a new container with the attributes of attrs
// selected by the filter. Values are shared, not copied.
func (filter NameFilter) Select(attrs *Attributes) *Attributes {
	selected := NewAttributes()
	attrs.Range(func(name string, attr Attribute) bool {
		if filter.Match(name) {
			selected.Set(name, attr)
		}
		return true
	})
	return selected
}

// globMatch matches str against glob-style pattern
func globMatch(str, pattern string) bool {
	for str != "" && pattern != "" {
		p := pattern[0]
		pattern = pattern[1:]

		switch p {
		case '*':
			for pattern != "" && pattern[0] == '*' {
				pattern = pattern[1:]
			}

			if pattern == "" {
				return true
			}

			for i := 0; i < len(str); i++ {
				if globMatch(str[i:], pattern) {
					return true
				}
			}
			return false

		case '?':
			str = str[1:]

		case '\\':
			if pattern == "" {
				return false
			}
			p, pattern = pattern[0], pattern[1:]
			fallthrough

		default:
			if str[0] != p {
				return false
			}
			str = str[1:]
		}
	}

	for pattern != "" && pattern[0] == '*' {
		pattern = pattern[1:]
	}

	return str == "" && pattern == ""
}
