package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
)

type FontName string

const (
	Body  FontName = "body"
	Title FontName = "title"
	Hero  FontName = "hero"
	Stat  FontName = "stat"
	Small FontName = "small"
)

// Face returns the font as an ebiten text face.
func (f FontName) Face() text.Face {
	face, ok := faces[f]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", f))
	}
	return face
}

var faces = map[FontName]text.Face{}

func LoadFont(name FontName, ttf []byte) error {
	return LoadFontWithSize(name, ttf, 16)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	face := truetype.NewFace(fontData, &truetype.Options{Size: size, Hinting: font.HintingFull})
	faces[name] = text.NewGoXFace(face)
	return nil
}

// Loaded reports whether every named font is available.
func Loaded(names ...FontName) bool {
	for _, n := range names {
		if _, ok := faces[n]; !ok {
			return false
		}
	}
	return true
}
