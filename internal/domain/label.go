package domain

import "fmt"

type LabelPosition string

const (
	LabelTop   LabelPosition = "top"
	LabelLeft  LabelPosition = "left"
	LabelRight LabelPosition = "right"
)

// DefaultLabelPosition is used when a tier does not specify one.
const DefaultLabelPosition = LabelLeft

// ValidLabelPositions is the canonical set of accepted label position strings.
var ValidLabelPositions = map[string]bool{
	"top": true, "left": true, "right": true,
}

// OrDefault returns p, or DefaultLabelPosition when p is unset.
func (p LabelPosition) OrDefault() LabelPosition {
	if p == "" {
		return DefaultLabelPosition
	}
	return p
}

// ParseLabelPosition accepts "", "top", "left" or "right" (case-sensitive).
// The empty string yields the zero value, which renders as the default.
func ParseLabelPosition(s string) (LabelPosition, error) {
	if s == "" {
		return "", nil
	}
	if !ValidLabelPositions[s] {
		return "", fmt.Errorf("invalid label position %q (expected top, left or right)", s)
	}
	return LabelPosition(s), nil
}
