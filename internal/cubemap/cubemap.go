// Package cubemap loads and normalises the six faces of a sky cubemap so
// they can be uploaded as square RGBA images of one size.
package cubemap

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"golang.org/x/image/draw"
)

// FaceCount is the number of faces in +X, -X, +Y, -Y, +Z, -Z order.
const FaceCount = 6

// ErrFaceSize is returned when no face size can be determined.
var ErrFaceSize = errors.New("cubemap: invalid face size")

// Faces holds decoded, equally sized face images.
type Faces struct {
	Size   int
	Images [FaceCount]*image.RGBA
}

// Load decodes the face files and resamples them to size x size. A size
// of zero uses the width of the first face.
func Load(paths [FaceCount]string, size int) (*Faces, error) {
	var imgs [FaceCount]image.Image
	for i, path := range paths {
		img, err := decodeFile(path)
		if err != nil {
			return nil, fmt.Errorf("cubemap face %d: %w", i, err)
		}
		imgs[i] = img
	}
	return FromImages(imgs, size)
}

// FromImages normalises already decoded faces.
func FromImages(imgs [FaceCount]image.Image, size int) (*Faces, error) {
	if size == 0 && imgs[0] != nil {
		size = imgs[0].Bounds().Dx()
	}
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrFaceSize, size)
	}

	faces := &Faces{Size: size}
	for i, img := range imgs {
		if img == nil {
			return nil, fmt.Errorf("cubemap face %d: missing image", i)
		}
		faces.Images[i] = Normalize(img, size)
	}
	return faces, nil
}

// Normalize returns img as an RGBA image of size x size with its origin at
// zero. Images of the right size are copied, others are resampled.
func Normalize(img image.Image, size int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	b := img.Bounds()
	if b.Dx() == size && b.Dy() == size {
		draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
		return dst
	}
	draw.BiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}
