// Package fontload loads OpenType fonts used for checking emoji coverage.
package fontload

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/image/font/sfnt"
)

// ScalableFont is a parsed scalable font with its original bytes and an SFNT view.
type ScalableFont struct {
	Fontname string
	Filepath string
	Binary   []byte
	SFNT     *sfnt.Font
}

// LoadOpenTypeFont loads an OpenType font (TTF or OTF) from a file.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, err
	}
	f, err := ParseOpenTypeFont(bytez)
	if err != nil {
		return nil, fmt.Errorf("font %s: %w", filepath.Base(fontfile), err)
	}
	f.Filepath = fontfile
	if f.Fontname == "" {
		f.Fontname = filepath.Base(fontfile)
	}
	return f, nil
}

// ParseOpenTypeFont parses an OpenType font (TTF or OTF) from memory.
// Fonts without a full name entry are accepted, with an empty Fontname.
func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes}
	f.SFNT, err = sfnt.Parse(f.Binary)
	if err != nil {
		return nil, err
	}
	if name, err := f.SFNT.Name(nil, sfnt.NameIDFull); err == nil {
		f.Fontname = name
	}
	return f, nil
}

// GlyphCount returns the number of glyphs in f.
func (f *ScalableFont) GlyphCount() int {
	return f.SFNT.NumGlyphs()
}
