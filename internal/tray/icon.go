package tray

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"image/png"
)

const iconSize = 32

var (
	activeColor   = color.RGBA{R: 0x50, G: 0xFA, B: 0x7B, A: 0xFF} // Dracula green
	inactiveColor = color.RGBA{R: 0x62, G: 0x72, B: 0xA4, A: 0xFF} // Dracula comment
	ringColor     = color.RGBA{R: 0x28, G: 0x2A, B: 0x36, A: 0xFF}
)

// Icon returns the tray icon as an ICO file holding a single PNG image.
// The active icon is a filled disc; the inactive one is a hollow ring.
func Icon(active bool) ([]byte, error) {
	img := drawIcon(active)

	var pngBuf bytes.Buffer
	if err := png.Encode(&pngBuf, img); err != nil {
		return nil, fmt.Errorf("encode icon: %w", err)
	}
	return wrapICO(pngBuf.Bytes(), iconSize), nil
}

func drawIcon(active bool) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, iconSize, iconSize))
	center := float64(iconSize-1) / 2
	outer := float64(iconSize)/2 - 1
	inner := outer - 4

	fill := inactiveColor
	if active {
		fill = activeColor
	}

	for y := 0; y < iconSize; y++ {
		for x := 0; x < iconSize; x++ {
			dx := float64(x) - center
			dy := float64(y) - center
			d2 := dx*dx + dy*dy
			switch {
			case d2 > outer*outer:
				// transparent
			case d2 > inner*inner:
				img.SetRGBA(x, y, fill)
			case active:
				img.SetRGBA(x, y, fill)
			default:
				img.SetRGBA(x, y, ringColor)
			}
		}
	}
	return img
}

// wrapICO prefixes PNG data with an ICONDIR and a single ICONDIRENTRY.
func wrapICO(pngData []byte, size int) []byte {
	const headerLen = 6 + 16

	var buf bytes.Buffer
	buf.Grow(headerLen + len(pngData))

	dim := byte(size)
	if size >= 256 {
		dim = 0
	}

	le := binary.LittleEndian
	_ = binary.Write(&buf, le, uint16(0)) // reserved
	_ = binary.Write(&buf, le, uint16(1)) // type: icon
	_ = binary.Write(&buf, le, uint16(1)) // image count

	buf.WriteByte(dim)                     // width
	buf.WriteByte(dim)                     // height
	buf.WriteByte(0)                       // palette size
	buf.WriteByte(0)                       // reserved
	_ = binary.Write(&buf, le, uint16(1))  // color planes
	_ = binary.Write(&buf, le, uint16(32)) // bits per pixel
	_ = binary.Write(&buf, le, uint32(len(pngData)))
	_ = binary.Write(&buf, le, uint32(headerLen))

	buf.Write(pngData)
	return buf.Bytes()
}
