package svg

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

func fallback(value, defaultValue string) string {
	if strings.TrimSpace(value) == "" {
		return defaultValue
	}
	return value
}

func bounds(series []float64) (float64, float64) {
	minVal := series[0]
	maxVal := series[0]
	for _, v := range series[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	return minVal, maxVal
}

// paddedBounds widens [min,max] by a tenth of its span so points do not sit
// on the frame.
func paddedBounds(series []float64) (float64, float64) {
	minVal, maxVal := bounds(series)
	if almostEqual(minVal, maxVal) {
		return minVal - 1, maxVal + 1
	}
	pad := (maxVal - minVal) / 10
	return minVal - pad, maxVal + pad
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func makeID(base, suffix string) string {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			return r
		}
		if r == '-' || r == '_' {
			return r
		}
		return '-'
	}, strings.ToLower(strings.TrimSpace(base)))
	cleaned = strings.Trim(cleaned, "-")
	if cleaned == "" {
		cleaned = "chart"
	}
	return fmt.Sprintf("%s-%s", cleaned, suffix)
}

// FormatValue renders a tick or cell value with grouping and an optional suffix.
func FormatValue(v float64, suffix string) string {
	if almostEqual(v, math.Round(v)) {
		return printer.Sprintf("%.0f", v) + suffix
	}
	return printer.Sprintf("%.1f", v) + suffix
}

// parseHex reads #rgb or #rrggbb. ok is false for anything else.
func parseHex(color string) (r, g, b uint8, ok bool) {
	color = strings.TrimPrefix(strings.TrimSpace(color), "#")
	if len(color) == 3 {
		color = string([]byte{color[0], color[0], color[1], color[1], color[2], color[2]})
	}
	if len(color) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(color, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), true
}

// mix interpolates two hex colors. Non-hex inputs return low or high unchanged.
func mix(low, high string, t float64) string {
	if t <= 0 {
		return low
	}
	if t >= 1 {
		return high
	}
	r1, g1, b1, ok1 := parseHex(low)
	r2, g2, b2, ok2 := parseHex(high)
	if !ok1 || !ok2 {
		if t < 0.5 {
			return low
		}
		return high
	}
	lerp := func(a, b uint8) uint8 {
		return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
	}
	return fmt.Sprintf("#%02x%02x%02x", lerp(r1, r2), lerp(g1, g2), lerp(b1, b2))
}
