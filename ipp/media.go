/* ipp-wire - IPP wire codec and typed attribute layer
 *
 * Copyright (C) 2020 and up by Alexander Pevzner (pzz@apevzner.com)
 * See LICENSE for license terms and conditions
 *
 * Media sizes
 */

package ipp

// MediaSize is a media size, in IPP units (1/100 mm).
// On the wire it is the "media-size" collection with
// "x-dimension" and "y-dimension" members.
type MediaSize struct {
	Width, Height int // x-dimension and y-dimension
}

// Standard media sizes
//
//	               US name      US inches   US mm           ISO mm
//	"legal-A4"     A, Legal     8.5 x 14    215.9 x 355.6   A4: 210 x 297
//	"tabloid-A3"   B, Tabloid   11 x 17     279.4 x 431.8   A3: 297 x 420
//	"isoC-A2"      C            17 × 22     431.8 × 558.8   A2: 420 x 594
var (
	MediaLegal   = MediaSize{21590, 35560}
	MediaA4      = MediaSize{21000, 29700}
	MediaTabloid = MediaSize{27940, 43180}
	MediaA3      = MediaSize{29700, 42000}
	MediaC       = MediaSize{43180, 55880}
	MediaA2      = MediaSize{42000, 59400}
)

// Less reports whether m fits into m2 and is smaller in at
// least one dimension
func (m MediaSize) Less(m2 MediaSize) bool {
	return (m.Width < m2.Width && m.Height <= m2.Height) ||
		(m.Height < m2.Height && m.Width <= m2.Width)
}

// Classify returns the Bonjour "PaperMax" class of the size:
// ">isoC-A2", "isoC-A2", "tabloid-A3", "legal-A4" or "<legal-A4"
func (m MediaSize) Classify() string {
	switch {
	case MediaC.Less(m) || MediaA2.Less(m):
		return ">isoC-A2"

	case !m.Less(MediaC) || !m.Less(MediaA2):
		return "isoC-A2"

	case !m.Less(MediaTabloid) || !m.Less(MediaA3):
		return "tabloid-A3"

	case !m.Less(MediaLegal) || !m.Less(MediaA4):
		return "legal-A4"
	}

	return "<legal-A4"
}

// MediaSizeMax returns the largest of sizes, by width then height
func MediaSizeMax(sizes []MediaSize) (MediaSize, bool) {
	if len(sizes) == 0 {
		return MediaSize{}, false
	}

	largest := sizes[0]
	for _, m := range sizes[1:] {
		if m.Width > largest.Width ||
			(m.Width == largest.Width && m.Height > largest.Height) {
			largest = m
		}
	}

	return largest, true
}

// ConvMediaSize converts the "media-size" collection. Collections
// with x-dimension or y-dimension given as a range are not sizes
// and don't convert.
var ConvMediaSize = Converter[MediaSize]{
	FromValue: func(v Value) (MediaSize, bool) {
		col, ok := v.(Collection)
		if !ok {
			return MediaSize{}, false
		}

		x, okx := mediaDimensionX.Get(col.Attributes)
		y, oky := mediaDimensionY.Get(col.Attributes)
		return MediaSize{x, y}, okx && oky
	},
	ToValue: func(m MediaSize) Value {
		col := NewCollection()
		mediaDimensionX.Set(col.Attributes, m.Width)
		mediaDimensionY.Set(col.Attributes, m.Height)
		return col
	},
}

// ConvMediaCol converts the "media-col" collection, using its
// "media-size" member
var ConvMediaCol = Converter[MediaSize]{
	FromValue: func(v Value) (MediaSize, bool) {
		col, ok := v.(Collection)
		if !ok {
			return MediaSize{}, false
		}
		return mediaColSize.Get(col.Attributes)
	},
	ToValue: func(m MediaSize) Value {
		col := NewCollection()
		mediaColSize.Set(col.Attributes, m)
		return col
	},
}

var (
	mediaDimensionX = NewField("x-dimension", convDimension)
	mediaDimensionY = NewField("y-dimension", convDimension)
	mediaColSize    = NewField("media-size", ConvMediaSize)
)

// convDimension accepts integers only
var convDimension = Converter[int]{
	FromValue: func(v Value) (int, bool) {
		i, ok := v.(Integer)
		return int(i), ok
	},
	ToValue: func(i int) Value { return Integer(int32(i)) },
}
