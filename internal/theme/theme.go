// Package theme resolves named color palettes used by the dashboard charts.
//
// A palette maps CSS variable names (for example "--emerald") to color
// values. Charts never depend on a palette being complete: every lookup goes
// through a Token carrying a fixed fallback literal.
package theme

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Well-known variable names exposed by the bundled palettes.
const (
	VarEmerald  = "--emerald"
	VarPurpleBG = "--purple-bg"
	VarText     = "--text"
	VarGrid     = "--grid"
)

// DefaultName is the palette used when no theme is requested.
const DefaultName = "emerald"

// ErrUnknownTheme is returned when a requested palette is not registered.
var ErrUnknownTheme = errors.New("theme: unknown theme")

// Theme is the active visual theme as seen by chart initializers.
type Theme interface {
	Color(name string) (string, bool)
}

// Palette is a named set of color variables.
type Palette struct {
	Name   string            `yaml:"name"`
	Colors map[string]string `yaml:"colors"`
}

// Color looks up a variable. Blank values count as missing.
func (p *Palette) Color(name string) (string, bool) {
	if p == nil || p.Colors == nil {
		return "", false
	}
	value, ok := p.Colors[normalizeVar(name)]
	if !ok || strings.TrimSpace(value) == "" {
		return "", false
	}
	return strings.TrimSpace(value), true
}

// CSS renders the palette as a :root custom property block.
func (p *Palette) CSS() string {
	if p == nil || len(p.Colors) == 0 {
		return ""
	}
	names := make([]string, 0, len(p.Colors))
	for name := range p.Colors {
		names = append(names, name)
	}
	sort.Strings(names)
	var b strings.Builder
	b.WriteString(":root {")
	for _, name := range names {
		value := strings.TrimSpace(p.Colors[name])
		if value == "" {
			continue
		}
		b.WriteString(fmt.Sprintf(" %s: %s;", name, value))
	}
	b.WriteString(" }")
	return b.String()
}

// Token is a named color with a literal fallback.
type Token struct {
	Name     string
	Fallback string
}

// Resolve returns the theme value for the token, or its fallback.
// Nothing is cached; every call consults the theme again.
func (t Token) Resolve(th Theme) string {
	if th == nil {
		return t.Fallback
	}
	if value, ok := th.Color(t.Name); ok {
		return value
	}
	return t.Fallback
}

func normalizeVar(name string) string {
	name = strings.TrimSpace(name)
	if name == "" || strings.HasPrefix(name, "--") {
		return name
	}
	return "--" + name
}
