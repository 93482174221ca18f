package models

import (
	"fmt"
	"strings"
)

// RotationDirection selects which way a 90 degree rotation turns.
type RotationDirection string

const (
	Clockwise     RotationDirection = "clockwise"
	Anticlockwise RotationDirection = "anticlockwise"
)

// ParseDirection resolves a direction string (case-insensitive, with the
// common cw/acw/ccw synonyms) to its canonical form.
func ParseDirection(s string) (RotationDirection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "clockwise", "cw":
		return Clockwise, nil
	case "anticlockwise", "counterclockwise", "acw", "ccw":
		return Anticlockwise, nil
	default:
		return "", fmt.Errorf("invalid direction: %s (use clockwise or anticlockwise)", s)
	}
}

// CompressionLevel is one of the three structural-compression presets.
type CompressionLevel string

const (
	CompressionLow    CompressionLevel = "low"
	CompressionMedium CompressionLevel = "medium"
	CompressionHigh   CompressionLevel = "high"
)

// ParseCompressionLevel resolves a preset name, case-insensitively.
func ParseCompressionLevel(s string) (CompressionLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return CompressionLow, nil
	case "medium":
		return CompressionMedium, nil
	case "high":
		return CompressionHigh, nil
	default:
		return "", fmt.Errorf("invalid compression level: %s (use low, medium, or high)", s)
	}
}
