package app

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"

	"github.com/google/uuid"
	"github.com/nfnt/resize"

	"monastery_tours/internal/domain"
)

// Previewer turns an uploaded image into a bounded JPEG preview.
type Previewer struct {
	Size    uint
	Quality int
}

func NewPreviewer(size int) Previewer {
	if size <= 0 {
		size = 640
	}
	return Previewer{Size: uint(size), Quality: 85}
}

func (p Previewer) Preview(r io.Reader) (domain.Photo, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return domain.Photo{}, fmt.Errorf("decode upload: %w", domain.ErrUnsupportedType)
	}
	thumb := resize.Thumbnail(p.Size, p.Size, img, resize.Lanczos3)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, thumb, &jpeg.Options{Quality: p.Quality}); err != nil {
		return domain.Photo{}, fmt.Errorf("encode preview: %w", err)
	}
	b := thumb.Bounds()
	return domain.Photo{
		ID:          uuid.NewString(),
		ContentType: "image/jpeg",
		Width:       b.Dx(),
		Height:      b.Dy(),
		Data:        buf.Bytes(),
	}, nil
}

// MediaURL is the display reference handed out for a stored photo.
func MediaURL(id string) string { return "/v1/media/" + id }
