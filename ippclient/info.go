/* ipp-wire - IPP wire codec and typed attribute layer
 *
 * Copyright (C) 2020 and up by Alexander Pevzner (pzz@apevzner.com)
 * See LICENSE for license terms and conditions
 *
 * Printer summary
 */

package ippclient

import (
	"net/url"
	"strings"

	"github.com/OpenPrinting/ipp-wire/ipp"
	"github.com/google/uuid"
)

// PrinterInfo summarizes printer attributes, in the form suitable
// for display and DNS-SD TXT records
type PrinterInfo struct {
	DNSSDName       string           // Printer name for DNS-SD
	MakeAndModel    string           // printer-make-and-model
	UUID            uuid.UUID        // printer-uuid, uuid.Nil if unknown
	Location        string           // printer-location
	State           ipp.PrinterState // printer-state, 0 if unknown
	Color           string           // "T", "F" or "" if unknown
	Duplex          string           // "T", "F" or "" if unknown
	PDL             []string         // document-format-supported
	URF             []string         // URF capabilities
	Kind            []string         // printer-kind
	PaperMax        string           // Largest media class
	MopriaCertified string           // mopria-certified
	ResourcePath    string           // Resource path, without leading "/"
}

// DecodePrinterInfo builds PrinterInfo from printer attributes of
// the Get-Printer-Attributes response.
//
// This is where information comes from:
//
//	DNSSDName:    "printer-dns-sd-name" with fallback to
//	              "printer-info" and "printer-make-and-model"
//	URF:          "urf-supported" with fallback to "printer-device-id"
//	Duplex:       search "sides-supported" for keywords with
//	              prefix "one" or "two"
//	PaperMax:     class of the largest "media-size-supported"
//	ResourcePath: path of the first "printer-uri-supported"
//
// If printer attributes are split between several groups, the
// first occurrence of each attribute wins.
func DecodePrinterInfo(rsp *ipp.Response) PrinterInfo {
	attrs := mergePrinterGroups(rsp)
	desc := &ipp.PrinterDescriptionAttrs

	var info PrinterInfo

	info.DNSSDName = firstString(attrs, desc.PrinterDNSSDName,
		desc.PrinterInfo, desc.PrinterMakeAndModel)
	info.MakeAndModel, _ = desc.PrinterMakeAndModel.Get(attrs)
	info.UUID, _ = desc.PrinterUUID.Get(attrs)
	info.Location, _ = desc.PrinterLocation.Get(attrs)
	info.State, _ = desc.PrinterState.Get(attrs)
	info.PDL, _ = desc.DocumentFormatSupported.Get(attrs)
	info.Kind, _ = desc.PrinterKind.Get(attrs)
	info.MopriaCertified, _ = desc.MopriaCertified.Get(attrs)

	if color, ok := desc.ColorSupported.Get(attrs); ok {
		info.Color = boolTF(color)
	}

	if sides, ok := desc.SidesSupported.Get(attrs); ok {
		info.Duplex = decodeDuplex(sides)
	}

	var ok bool
	if info.URF, ok = desc.URFSupported.Get(attrs); !ok {
		devid, _ := desc.PrinterDeviceID.Get(attrs)
		if urf := parseDeviceID(devid)["URF"]; urf != "" {
			info.URF = strings.Split(urf, ",")
		}
	}

	if sizes, ok := desc.MediaSizeSupported.Get(attrs); ok {
		largest, _ := ipp.MediaSizeMax(sizes)
		info.PaperMax = largest.Classify()
	}

	if uris, ok := desc.PrinterURISupported.Get(attrs); ok {
		if u, err := url.Parse(uris[0]); err == nil {
			info.ResourcePath = strings.TrimPrefix(u.Path, "/")
		}
	}

	return info
}

// TxtItem is a single key=value item of the TXT record
type TxtItem struct {
	Key, Value string
}

// Txt returns the "_ipp._tcp" TXT record for the printer.
// Empty optional items are omitted.
func (info *PrinterInfo) Txt() []TxtItem {
	var txt []TxtItem
	add := func(key, value string) {
		txt = append(txt, TxtItem{key, value})
	}
	addNotEmpty := func(key, value string) {
		if value != "" {
			add(key, value)
		}
	}

	id := ""
	if info.UUID != uuid.Nil {
		id = info.UUID.String()
	}

	product := ""
	if info.MakeAndModel != "" {
		product = "(" + info.MakeAndModel + ")"
	}

	add("air", "none")
	addNotEmpty("mopria-certified", info.MopriaCertified)
	add("rp", info.ResourcePath)
	addNotEmpty("kind", strings.Join(info.Kind, ","))
	addNotEmpty("PaperMax", info.PaperMax)
	addNotEmpty("URF", strings.Join(info.URF, ","))
	addNotEmpty("UUID", id)
	addNotEmpty("Color", info.Color)
	addNotEmpty("Duplex", info.Duplex)
	add("note", info.Location)
	addNotEmpty("ty", info.MakeAndModel)
	addNotEmpty("product", product)
	addNotEmpty("pdl", strings.Join(info.PDL, ","))
	add("txtvers", "1")

	return txt
}

// mergePrinterGroups merges all printer groups of the response
// into a single container. First occurrence wins.
func mergePrinterGroups(rsp *ipp.Response) *ipp.Attributes {
	merged := ipp.NewAttributes()
	for _, attrs := range rsp.Groups.All(ipp.TagPrinterGroup) {
		attrs.Range(func(name string, attr ipp.Attribute) bool {
			if !merged.Has(name) {
				merged.Set(name, attr)
			}
			return true
		})
	}
	return merged
}

// firstString returns the first non-empty string field
func firstString(attrs *ipp.Attributes, fields ...ipp.Field[string]) string {
	for _, f := range fields {
		if s, _ := f.Get(attrs); s != "" {
			return s
		}
	}
	return ""
}

// parseDeviceID parses IEEE 1284 device ID:
// "MFG:HP;MDL:LaserJet;URF:W8,SRGB24;"
func parseDeviceID(devid string) map[string]string {
	fields := make(map[string]string)
	for _, id := range strings.Split(devid, ";") {
		keyval := strings.SplitN(id, ":", 2)
		if len(keyval) == 2 {
			fields[strings.TrimSpace(keyval[0])] = keyval[1]
		}
	}
	return fields
}

// decodeDuplex returns "T" if printer supports two-sided
// printing, "F" if not and "" if it can't tell
func decodeDuplex(sides []ipp.Sides) string {
	one, two := false, false
	for _, s := range sides {
		switch {
		case strings.HasPrefix(string(s), "one"):
			one = true
		case strings.HasPrefix(string(s), "two"):
			two = true
		}
	}

	switch {
	case two:
		return "T"
	case one:
		return "F"
	}

	return ""
}

// boolTF returns "T" for true and "F" for false
func boolTF(b bool) string {
	if b {
		return "T"
	}
	return "F"
}
