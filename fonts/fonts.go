package fonts

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
)

type FontName string

const (
	HUD   FontName = "hud"
	Bold  FontName = "bold"
	Title FontName = "title"
	Small FontName = "small"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadDefaults registers the Go fonts bundled with x/image. Faces that fail
// to parse fall back to the fixed 7x13 bitmap face.
func LoadDefaults() {
	LoadFontWithSize(HUD, gomono.TTF, 14)
	LoadFontWithSize(Small, gomono.TTF, 11)
	LoadFontWithSize(Bold, gobold.TTF, 20)
	LoadFontWithSize(Title, gobold.TTF, 40)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) {
	parsed, err := opentype.Parse(ttf)
	if err != nil {
		fonts[name] = basicfont.Face7x13
		return
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		fonts[name] = basicfont.Face7x13
		return
	}
	fonts[name] = face
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
