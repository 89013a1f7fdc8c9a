// internal/services/colors.go
package services

import "strings"

// defaultHexCode is used when a color name has no table entry.
const defaultHexCode = "#808080"

var colorHexCodes = map[string]string{
	"white":  "#FFFFFF",
	"black":  "#000000",
	"red":    "#FF0000",
	"blue":   "#0000FF",
	"green":  "#008000",
	"yellow": "#FFFF00",
	"orange": "#FFA500",
	"purple": "#800080",
	"pink":   "#FFC0CB",
	"brown":  "#A52A2A",
	"gray":   "#808080",
	"grey":   "#808080",
	"navy":   "#000080",
	"beige":  "#F5F5DC",
	"silver": "#C0C0C0",
}

// HexForColor maps a color name to its display hex code, case-insensitively.
func HexForColor(name string) string {
	if hex, ok := colorHexCodes[strings.ToLower(strings.TrimSpace(name))]; ok {
		return hex
	}
	return defaultHexCode
}
