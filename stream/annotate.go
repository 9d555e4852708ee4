package stream

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var (
	registrationColor = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	recognitionColor  = color.RGBA{R: 0, G: 255, B: 0, A: 255}
)

const rectThickness = 2

func toRGBA(img image.Image) *image.RGBA {
	canvas := image.NewRGBA(img.Bounds())
	draw.Draw(canvas, canvas.Bounds(), img, img.Bounds().Min, draw.Src)
	return canvas
}

// drawRect draws the border of r onto the canvas.
func drawRect(canvas *image.RGBA, r image.Rectangle, col color.Color) {
	r = r.Intersect(canvas.Bounds())
	for t := 0; t < rectThickness; t++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			canvas.Set(x, r.Min.Y+t, col)
			canvas.Set(x, r.Max.Y-1-t, col)
		}
		for y := r.Min.Y; y < r.Max.Y; y++ {
			canvas.Set(r.Min.X+t, y, col)
			canvas.Set(r.Max.X-1-t, y, col)
		}
	}
}

// drawLabel prints text just above the given point, like the usual
// "name above the bounding box" overlay.
func drawLabel(canvas *image.RGBA, text string, x, y int, col color.Color) {
	if y < basicfont.Face7x13.Height {
		y = basicfont.Face7x13.Height
	}
	drawer := &font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	drawer.DrawString(text)
}

// cropFace copies the region r out of the frame.
func cropFace(img image.Image, r image.Rectangle) image.Image {
	r = r.Intersect(img.Bounds())
	crop := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(crop, crop.Bounds(), img, r.Min, draw.Src)
	return crop
}
