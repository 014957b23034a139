// ABOUTME: Downscales oversized images before they are sent inline
// ABOUTME: CatmullRom scaling via golang.org/x/image/draw; output is re-encoded as PNG

package imgprep

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	// Register decoders for the formats Sniff recognizes.
	_ "image/gif"
	_ "image/jpeg"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	ilog "github.com/mauromedda/iterm2-go/internal/log"
)

// Result is the payload to send and what was done to it.
type Result struct {
	Data     []byte
	Size     Size
	MIME     string
	Resized  bool
	Original Size
}

// Prepare returns data unchanged unless it is a recognized image with an
// edge longer than maxDim, in which case it is scaled to fit and
// re-encoded as PNG. Payloads whose header cannot be read pass through
// untouched; the terminal decides what to do with them. maxDim <= 0
// disables scaling without looking at the data.
func Prepare(data []byte, maxDim int) (Result, error) {
	if maxDim <= 0 {
		return Result{Data: data}, nil
	}

	size, mime, err := Sniff(data)
	if err != nil {
		ilog.Debug("imgprep: sending %s unchanged: %v", mime, err)
		return Result{Data: data, MIME: mime}, nil
	}

	res := Result{Data: data, Size: size, MIME: mime, Original: size}
	if size.Width <= maxDim && size.Height <= maxDim {
		return res, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Result{}, fmt.Errorf("decoding image: %w", err)
	}

	target := fit(size, maxDim)
	dst := image.NewRGBA(image.Rect(0, 0, target.Width, target.Height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return Result{}, fmt.Errorf("encoding PNG: %w", err)
	}

	res.Data = buf.Bytes()
	res.Size = target
	res.MIME = "image/png"
	res.Resized = true
	return res, nil
}

// fit scales s so its longer edge is maxDim, keeping the aspect ratio.
func fit(s Size, maxDim int) Size {
	var out Size
	if s.Width >= s.Height {
		out = Size{Width: maxDim, Height: s.Height * maxDim / s.Width}
	} else {
		out = Size{Width: s.Width * maxDim / s.Height, Height: maxDim}
	}
	out.Width = max(out.Width, 1)
	out.Height = max(out.Height, 1)
	return out
}
