package text

import (
	"encoding/binary"
	"strings"

	"golang.org/x/image/font/sfnt"
)

// Weight bounds of the OS/2 usWeightClass field as used by the catalog.
const (
	MinWeight     = 100
	MaxWeight     = 900
	DefaultWeight = 400
)

// nameIDTypographicFamily is the "preferred family" name record.
const nameIDTypographicFamily sfnt.NameID = 16

// Description is the catalog identity of a font: its canonical family name,
// numeric weight class and italic flag.
type Description struct {
	Family string
	Weight int
	Italic bool
}

// describe reads the family name from the name table and weight/style
// from the OS/2 and head tables.
func describe(f *sfnt.Font, data []byte) Description {
	var buf sfnt.Buffer

	d := Description{Weight: DefaultWeight}

	if name, err := f.Name(&buf, nameIDTypographicFamily); err == nil && strings.TrimSpace(name) != "" {
		d.Family = strings.TrimSpace(name)
	} else if name, err := f.Name(&buf, sfnt.NameIDFamily); err == nil && strings.TrimSpace(name) != "" {
		d.Family = strings.TrimSpace(name)
	} else if name, err := f.Name(&buf, sfnt.NameIDFull); err == nil {
		d.Family = strings.TrimSpace(name)
	}
	if d.Family == "" {
		d.Family = "Unknown Font"
	}

	italicKnown := false
	if os2, ok := findTable(data, "OS/2"); ok {
		if len(os2) >= 6 {
			d.Weight = normalizeWeightClass(int(binary.BigEndian.Uint16(os2[4:6])))
		}
		if len(os2) >= 64 {
			// fsSelection bit 0: ITALIC.
			d.Italic = binary.BigEndian.Uint16(os2[62:64])&0x0001 != 0
			italicKnown = true
		}
	}
	if !italicKnown {
		if head, ok := findTable(data, "head"); ok && len(head) >= 46 {
			// macStyle bit 1: italic.
			d.Italic = binary.BigEndian.Uint16(head[44:46])&0x0002 != 0
			italicKnown = true
		}
	}
	if !italicKnown {
		if sub, err := f.Name(&buf, sfnt.NameIDSubfamily); err == nil {
			sub = strings.ToLower(sub)
			d.Italic = strings.Contains(sub, "italic") || strings.Contains(sub, "oblique")
		}
	}

	return d
}

// normalizeWeightClass maps raw usWeightClass values into 100..900.
// Some legacy fonts store 1..9 instead of 100..900.
func normalizeWeightClass(w int) int {
	if w > 0 && w < 10 {
		w *= 100
	}
	return ClampWeight(w)
}

// ClampWeight bounds w to the 100..900 weight range. Zero maps to the
// regular weight.
func ClampWeight(w int) int {
	switch {
	case w == 0:
		return DefaultWeight
	case w < MinWeight:
		return MinWeight
	case w > MaxWeight:
		return MaxWeight
	}
	return w
}

// findTable locates a table in the sfnt table directory.
// It returns false for font collections and malformed directories.
func findTable(data []byte, tag string) ([]byte, bool) {
	if len(data) < 12 {
		return nil, false
	}
	numTables := int(binary.BigEndian.Uint16(data[4:6]))
	for i := 0; i < numTables; i++ {
		rec := 12 + 16*i
		if rec+16 > len(data) {
			return nil, false
		}
		if string(data[rec:rec+4]) != tag {
			continue
		}
		offset := int(binary.BigEndian.Uint32(data[rec+8 : rec+12]))
		length := int(binary.BigEndian.Uint32(data[rec+12 : rec+16]))
		if offset < 0 || length < 0 || offset+length > len(data) {
			return nil, false
		}
		return data[offset : offset+length], true
	}
	return nil, false
}
