package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Body     FontName = "body"
	Button   FontName = "button"
	Title    FontName = "title"
	Headline FontName = "headline"
	Initials FontName = "initials"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadDefaults loads the page faces from the embedded Go fonts.
func LoadDefaults() error {
	if err := LoadFontWithSize(Body, goregular.TTF, 18); err != nil {
		return err
	}
	if err := LoadFontWithSize(Button, gobold.TTF, 16); err != nil {
		return err
	}
	if err := LoadFontWithSize(Title, gobold.TTF, 30); err != nil {
		return err
	}
	if err := LoadFontWithSize(Headline, gobold.TTF, 44); err != nil {
		return err
	}
	return LoadFontWithSize(Initials, gobold.TTF, 64)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size, Hinting: font.HintingFull})
	return nil
}

// Loaded reports whether name has been loaded. Renderers skip text when it has not.
func Loaded(name FontName) bool {
	_, ok := fonts[name]
	return ok
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
