// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package qr renders text as QR codes, either as PNG images or as
// block characters for a terminal.
package qr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

var (
	ErrEmpty        = errors.New("no text to encode")
	ErrUnknownLevel = errors.New("unknown error correction level")
	ErrSize         = errors.New("image size out of range")
)

// Image sizes accepted by PNG, in pixels.
const (
	MinSize     = 64
	MaxSize     = 2048
	DefaultSize = 256
)

// Level is an error correction level: L, M, Q, or H.
type Level string

const (
	Low     Level = "L"
	Medium  Level = "M"
	High    Level = "Q"
	Highest Level = "H"
)

var levels = map[Level]qrcode.RecoveryLevel{
	Low:     qrcode.Low,
	Medium:  qrcode.Medium,
	High:    qrcode.High,
	Highest: qrcode.Highest,
}

func encode(text string, level Level) (*qrcode.QRCode, error) {
	if text == "" {
		return nil, ErrEmpty
	}
	if level == "" {
		level = Medium
	}
	rl, ok := levels[Level(strings.ToUpper(string(level)))]
	if !ok {
		return nil, fmt.Errorf("%q: %w", level, ErrUnknownLevel)
	}
	q, err := qrcode.New(text, rl)
	if err != nil {
		return nil, fmt.Errorf("encoding QR code: %w", err)
	}
	return q, nil
}

// PNG returns text as a square PNG image of size pixels.
func PNG(text string, level Level, size int) ([]byte, error) {
	if size < MinSize || size > MaxSize {
		return nil, fmt.Errorf("%d px (want %d-%d): %w", size, MinSize, MaxSize, ErrSize)
	}
	q, err := encode(text, level)
	if err != nil {
		return nil, err
	}
	return q.PNG(size)
}

// Terminal returns text as a QR code drawn with half-block characters.
// Inverse swaps dark and light modules for light-on-dark terminals.
func Terminal(text string, level Level, inverse bool) (string, error) {
	q, err := encode(text, level)
	if err != nil {
		return "", err
	}
	bits := q.Bitmap()

	var b strings.Builder
	for y := 0; y < len(bits); y += 2 {
		for x := range bits[y] {
			top := bits[y][x] != inverse
			bottom := inverse
			if y+1 < len(bits) {
				bottom = bits[y+1][x] != inverse
			}
			switch {
			case top && bottom:
				b.WriteRune('█')
			case top:
				b.WriteRune('▀')
			case bottom:
				b.WriteRune('▄')
			default:
				b.WriteRune(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String(), nil
}
