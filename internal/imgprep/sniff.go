// ABOUTME: Image size sniffing from header bytes without a full decode
// ABOUTME: Recognizes PNG, JPEG, GIF, and WebP (VP8, VP8L, VP8X)

package imgprep

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrUnknownFormat is returned for payloads that are not a recognized image.
var ErrUnknownFormat = errors.New("unrecognized image format")

// Size is an image's pixel width and height.
type Size struct {
	Width  int
	Height int
}

// Sniff reads the pixel size from the image header along with a MIME type.
func Sniff(data []byte) (Size, string, error) {
	switch {
	case len(data) >= 24 && string(data[:8]) == "\x89PNG\r\n\x1a\n":
		// IHDR: width and height are big-endian uint32 at 16 and 20.
		return Size{
			Width:  int(binary.BigEndian.Uint32(data[16:20])),
			Height: int(binary.BigEndian.Uint32(data[20:24])),
		}, "image/png", nil
	case len(data) >= 4 && data[0] == 0xFF && data[1] == 0xD8:
		s, err := sniffJPEG(data)
		return s, "image/jpeg", err
	case len(data) >= 10 && (string(data[:6]) == "GIF87a" || string(data[:6]) == "GIF89a"):
		return Size{
			Width:  int(binary.LittleEndian.Uint16(data[6:8])),
			Height: int(binary.LittleEndian.Uint16(data[8:10])),
		}, "image/gif", nil
	case len(data) >= 16 && string(data[0:4]) == "RIFF" && string(data[8:12]) == "WEBP":
		s, err := sniffWebP(data)
		return s, "image/webp", err
	default:
		return Size{}, "application/octet-stream", ErrUnknownFormat
	}
}

// sniffJPEG walks segments until a SOF0-SOF2 marker.
func sniffJPEG(data []byte) (Size, error) {
	i := 2
	for i+3 < len(data) {
		if data[i] != 0xFF {
			i++
			continue
		}
		marker := data[i+1]
		if marker >= 0xC0 && marker <= 0xC2 {
			if i+9 > len(data) {
				return Size{}, fmt.Errorf("JPEG SOF truncated")
			}
			return Size{
				Height: int(binary.BigEndian.Uint16(data[i+5 : i+7])),
				Width:  int(binary.BigEndian.Uint16(data[i+7 : i+9])),
			}, nil
		}
		segLen := int(binary.BigEndian.Uint16(data[i+2 : i+4]))
		if segLen < 2 {
			break
		}
		i += 2 + segLen
	}
	return Size{}, fmt.Errorf("JPEG SOF marker not found")
}

func sniffWebP(data []byte) (Size, error) {
	switch chunk := string(data[12:16]); chunk {
	case "VP8 ":
		if len(data) < 30 {
			return Size{}, fmt.Errorf("WebP VP8 data too short")
		}
		return Size{
			Width:  int(binary.LittleEndian.Uint16(data[26:28])) & 0x3FFF,
			Height: int(binary.LittleEndian.Uint16(data[28:30])) & 0x3FFF,
		}, nil
	case "VP8L":
		if len(data) < 25 {
			return Size{}, fmt.Errorf("WebP VP8L data too short")
		}
		bits := binary.LittleEndian.Uint32(data[21:25])
		return Size{
			Width:  int(bits&0x3FFF) + 1,
			Height: int((bits>>14)&0x3FFF) + 1,
		}, nil
	case "VP8X":
		if len(data) < 30 {
			return Size{}, fmt.Errorf("WebP VP8X data too short")
		}
		return Size{
			Width:  (int(data[24]) | int(data[25])<<8 | int(data[26])<<16) + 1,
			Height: (int(data[27]) | int(data[28])<<8 | int(data[29])<<16) + 1,
		}, nil
	default:
		return Size{}, fmt.Errorf("unknown WebP chunk %q", chunk)
	}
}
