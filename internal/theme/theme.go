package theme

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Base palette
var (
	ColorLavender = lipgloss.Color("#9f99d1")
	ColorSkyBlue  = lipgloss.Color("#86bada")
	ColorMauve    = lipgloss.Color("#dbaad7")
	ColorPeach    = lipgloss.Color("#f6bcb0")
	ColorGold     = lipgloss.Color("#ffe3b3")
	ColorError    = lipgloss.Color("#f07070")
)

// Background tones (dark theme)
var (
	ColorCardBg     = lipgloss.Color("#232438")
	ColorElevatedBg = lipgloss.Color("#2a2b42")
	ColorOverlayBg  = lipgloss.Color("#111122")
	ColorBorder     = lipgloss.Color("#3a3b52")
	ColorMutedText  = lipgloss.Color("#6b6d8a")
	ColorBodyText   = lipgloss.Color("#c8cad8")
	ColorBrightText = lipgloss.Color("#ecedf5")
)

// TitleGradient is the stop list the animated title cycles through.
var TitleGradient = []string{
	"#86bada",
	"#9f99d1",
	"#dbaad7",
	"#f6bcb0",
	"#ffe3b3",
}

// LerpColor interpolates between two hex colors.
func LerpColor(from, to string, t float64) string {
	r1, g1, b1 := HexToRGB(from)
	r2, g2, b2 := HexToRGB(to)

	r := uint8(float64(r1) + t*(float64(r2)-float64(r1)))
	g := uint8(float64(g1) + t*(float64(g2)-float64(g1)))
	b := uint8(float64(b1) + t*(float64(b2)-float64(b1)))

	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func HexToRGB(hex string) (uint8, uint8, uint8) {
	hex = strings.TrimPrefix(hex, "#")
	var r, g, b uint8
	fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
	return r, g, b
}

// GradientText colors text from fromHex to toHex, one rune at a time.
func GradientText(text, fromHex, toHex string) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(len(text) * 20) // ANSI escapes per rune
	style := lipgloss.NewStyle()
	for i, r := range runes {
		t := float64(i) / float64(max(len(runes)-1, 1))
		sb.WriteString(style.Foreground(lipgloss.Color(LerpColor(fromHex, toHex, t))).Render(string(r)))
	}
	return sb.String()
}

// AnimatedGradientText slides a narrow window of TitleGradient across text.
// tick advances once per UI blink; a full cycle takes 100 ticks.
// Optional bg sets a background color on each rune.
func AnimatedGradientText(text string, tick uint, bg ...lipgloss.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}

	stops := TitleGradient
	window := 1.5 / float64(len(stops))

	phase := float64(tick) * 0.01
	phase -= math.Floor(phase)

	var sb strings.Builder
	sb.Grow(len(text) * 20)
	base := lipgloss.NewStyle()
	if len(bg) > 0 {
		base = base.Background(bg[0])
	}
	for i, r := range runes {
		t := phase + float64(i)/float64(max(len(runes)-1, 1))*window
		t -= math.Floor(t)
		sb.WriteString(base.Foreground(lipgloss.Color(wrapGradient(t, stops))).Render(string(r)))
	}
	return sb.String()
}

// wrapGradient interpolates through stops, wrapping from last to first.
func wrapGradient(t float64, stops []string) string {
	n := len(stops)
	pos := (t - math.Floor(t)) * float64(n)
	idx := int(pos) % n
	return LerpColor(stops[idx], stops[(idx+1)%n], pos-math.Floor(pos))
}

// Common styles
var (
	CardStyle = lipgloss.NewStyle().
			Background(ColorCardBg).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorBrightText).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMutedText)

	BodyStyle = lipgloss.NewStyle().
			Foreground(ColorBodyText)

	PendingStyle = lipgloss.NewStyle().
			Foreground(ColorLavender).
			Italic(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)
)
