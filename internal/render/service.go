package render

import (
	"bytes"
	"fmt"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

// Service renders score values into PNG images for the picture commands.
// It is pure presentation: the score comes in as a plain value and no
// state is read or written.
type Service struct{}

// New creates a new render service
func New() *Service {
	return &Service{}
}

// ScoreCard renders the dark-background score card sent for /pic_farosat
func (s *Service) ScoreCard(name string, score int64) ([]byte, error) {
	dc := gg.NewContext(500, 300)
	dc.SetRGB255(30, 40, 80)
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)

	dc.SetRGB255(255, 255, 0)
	dc.DrawString(name, 20, 60)

	dc.SetRGB255(255, 255, 255)
	dc.DrawString(fmt.Sprintf("Farosat: %d gram", score), 20, 130)

	return encodePNG(dc)
}

// Certificate renders the parchment certificate sent for /mycertificate
func (s *Service) Certificate(name string, score int64) ([]byte, error) {
	dc := gg.NewContext(600, 400)
	dc.SetRGB255(220, 200, 160)
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)

	dc.SetRGB255(0, 0, 0)
	dc.DrawString("SERTIFIKAT", 50, 110)
	dc.DrawString(name, 50, 190)
	dc.DrawString(fmt.Sprintf("Farosat: %d gram", score), 50, 260)

	return encodePNG(dc)
}

func encodePNG(dc *gg.Context) ([]byte, error) {
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
