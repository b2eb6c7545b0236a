package state

import (
	. "github.com/redexp/familychart/types"
)

type SpotData struct {
	Id       int    `json:"id" validate:"gte=0"`
	Text     string `json:"text"`
	Position Pos    `json:"position"`
}

// Spot is a free text label anchored at its centre.
type Spot struct {
	SpotData

	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (s *Spot) Clone() *Spot {
	clone := *s
	return &clone
}

// Rect returns the label box at scale 1.
func (s *Spot) Rect() Rect {
	return Rect{
		X:      s.Position.X - s.Width/2,
		Y:      s.Position.Y - s.Height/2,
		Width:  s.Width,
		Height: s.Height,
	}
}

// Contains reports whether pos hits the label drawn at the given zoom scale.
// Spot labels keep a constant on-screen size, so the model box shrinks as scale grows.
func (s *Spot) Contains(pos Pos, scale float64) bool {
	if scale <= 0 {
		scale = 1
	}

	halfW := s.Width / scale / 2
	halfH := s.Height / scale / 2

	return s.Position.X-halfW <= pos.X && pos.X <= s.Position.X+halfW &&
		s.Position.Y-halfH <= pos.Y && pos.Y <= s.Position.Y+halfH
}

func (s *Spot) addOffset(offset Pos, spotOffset int) {
	s.Id += spotOffset
	s.Position = s.Position.Add(offset)
}
