package board

import (
	"math/rand"

	"github.com/WahpiTrex/Draw2Gather/drawing"
)

// Cursor palette for generated identities.
var identityColors = []drawing.RGB{
	{R: 0xFF, G: 0x6B, B: 0x6B},
	{R: 0x4E, G: 0xCD, B: 0xC4},
	{R: 0x45, G: 0xB7, B: 0xD1},
	{R: 0x96, G: 0xCE, B: 0xB4},
	{R: 0xFF, G: 0xEA, B: 0xA7},
	{R: 0xDD, G: 0xA0, B: 0xDD},
	{R: 0x98, G: 0xD8, B: 0xC8},
	{R: 0xF7, G: 0xDC, B: 0x6F},
	{R: 0xBB, G: 0x8F, B: 0xCE},
	{R: 0x85, G: 0xC1, B: 0xE9},
	{R: 0xF8, G: 0xB5, B: 0x00},
	{R: 0xFF, G: 0x8C, B: 0x00},
}

var (
	identityAdjectives = []string{"Happy", "Cheerful", "Swift", "Creative", "Colorful", "Cute", "Bright", "Playful"}
	identityNouns      = []string{"Brush", "Pencil", "Paint", "Line", "Dot", "Star", "Cloud", "Rainbow"}
)

// RandomIdentity generates a display name and cursor color for a fresh
// connection; users can override the name when joining a room.
func RandomIdentity() (string, drawing.RGB) {
	name := identityAdjectives[rand.Intn(len(identityAdjectives))] + " " + identityNouns[rand.Intn(len(identityNouns))]
	return name, identityColors[rand.Intn(len(identityColors))]
}
