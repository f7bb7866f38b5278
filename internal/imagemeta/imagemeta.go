package imagemeta

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"

	"github.com/ctasbihas/portfolio/internal/blog"
	"github.com/ctasbihas/portfolio/internal/project"
	"github.com/fogleman/gg"
	"github.com/nfnt/resize"
	"github.com/pkg/errors"
)

const (
	Width  = 1200
	Height = 628
	// MinWidth is the smallest width Encode scales down to.
	MinWidth = 200
)

var (
	backgroundColor = color.RGBA{R: 15, G: 23, B: 42, A: 255}
	accentColor     = color.RGBA{R: 56, G: 189, B: 248, A: 255}
	mainTextColor   = color.RGBA{R: 241, G: 245, B: 249, A: 255}
)

// GenerateImageForBlog draws the social preview card of a post.
func GenerateImageForBlog(b blog.Blog, siteName string) image.Image {
	return GenerateCard(b.Title, fmt.Sprintf("%s | %s", siteName, b.AuthorName()))
}

func GenerateImageForProject(p project.Showcase) image.Image {
	return GenerateCard(p.Title, strings.Join(p.Technologies, ", "))
}

// GenerateCard draws title wrapped in large text above a single footer line.
func GenerateCard(title, footer string) image.Image {
	dc := gg.NewContext(Width, Height)
	dc.SetColor(backgroundColor)
	dc.Clear()
	dc.SetColor(accentColor)
	dc.DrawRectangle(0, Height-24, Width, 24)
	dc.Fill()

	// the default face is 7x13 pixels, text is drawn in scaled space
	textMargin := 20.0
	dc.Push()
	dc.Scale(4, 4)
	dc.SetColor(mainTextColor)
	dc.DrawStringWrapped(title, textMargin, textMargin, 0, 0, Width/4-2*textMargin, 1.4, gg.AlignLeft)
	dc.Pop()

	dc.Push()
	dc.Scale(2, 2)
	dc.SetColor(accentColor)
	dc.DrawString(footer, textMargin*2, (Height-60)/2)
	dc.Pop()

	return dc.Image()
}

// Encode writes img as png, scaled down to width when width is below the full size.
func Encode(w io.Writer, img image.Image, width uint) error {
	if width > 0 && width < Width {
		if width < MinWidth {
			width = MinWidth
		}
		img = resize.Resize(width, 0, img, resize.Bilinear)
	}
	if err := png.Encode(w, img); err != nil {
		return errors.Wrap(err, "encode preview image")
	}
	return nil
}
