/* ipp-wire - IPP wire codec and typed attribute layer
 *
 * Copyright (C) 2020 and up by Alexander Pevzner (pzz@apevzner.com)
 * See LICENSE for license terms and conditions
 *
 * Groups of attributes
 */

package ipp

// Group is an attribute group. Tag is the group's delimiter tag,
// which may be a tag with no assigned meaning: such groups are kept
// verbatim.
type Group struct {
	Tag   Tag
	Attrs *Attributes
}

// Equal checks that two groups are equal
func (g Group) Equal(g2 Group) bool {
	return g.Tag == g2.Tag && g.Attrs.Equal(g2.Attrs)
}

// Groups is the ordered sequence of attribute groups of a message.
// The same tag may appear more than once (for example, one job group
// per job in a Get-Jobs response).
type Groups []Group

// Lookup returns attributes of the first group with the given tag,
// or nil if there is no such group.
func (groups Groups) Lookup(tag Tag) *Attributes {
	for _, g := range groups {
		if g.Tag == tag {
			return g.Attrs
		}
	}
	return nil
}

// All returns attributes of every group with the given tag
func (groups Groups) All(tag Tag) []*Attributes {
	var all []*Attributes
	for _, g := range groups {
		if g.Tag == tag {
			all = append(all, g.Attrs)
		}
	}
	return all
}

// Group returns attributes of the first group with the given tag,
// appending a new empty group if there is none. The returned
// container is owned by groups, so changes made through it are
// visible in the message.
func (groups *Groups) Group(tag Tag) *Attributes {
	if attrs := groups.Lookup(tag); attrs != nil {
		return attrs
	}

	return groups.Append(tag)
}

// Append unconditionally appends a new empty group and returns its
// attributes
func (groups *Groups) Append(tag Tag) *Attributes {
	attrs := NewAttributes()
	*groups = append(*groups, Group{Tag: tag, Attrs: attrs})
	return attrs
}

// Equal checks that two sequences of groups are equal
func (groups Groups) Equal(groups2 Groups) bool {
	if len(groups) != len(groups2) {
		return false
	}

	for i := range groups {
		if !groups[i].Equal(groups2[i]) {
			return false
		}
	}

	return true
}

// DeepCopy returns a deep copy of groups
func (groups Groups) DeepCopy() Groups {
	if groups == nil {
		return nil
	}

	cp := make(Groups, len(groups))
	for i, g := range groups {
		cp[i] = Group{Tag: g.Tag, Attrs: g.Attrs.DeepCopy()}
	}
	return cp
}
