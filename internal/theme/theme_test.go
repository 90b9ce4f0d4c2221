package theme

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deckstats/deckstats/web"
)

func TestTokenResolve(t *testing.T) {
	accent := Token{Name: VarEmerald, Fallback: "#10b981"}

	p := &Palette{Name: "x", Colors: map[string]string{VarEmerald: "#00ff00"}}
	assert.Equal(t, "#00ff00", accent.Resolve(p))

	empty := &Palette{Name: "y", Colors: map[string]string{VarEmerald: "   "}}
	assert.Equal(t, "#10b981", accent.Resolve(empty), "blank values fall back")

	assert.Equal(t, "#10b981", accent.Resolve(&Palette{Name: "z"}))
	assert.Equal(t, "#10b981", accent.Resolve(nil))
}

func TestPaletteColorAcceptsBareNames(t *testing.T) {
	p := &Palette{Colors: map[string]string{"--purple-bg": "#1e1b4b"}}
	value, ok := p.Color("purple-bg")
	assert.True(t, ok)
	assert.Equal(t, "#1e1b4b", value)
}

func TestRegistryLoadsBundledPalettes(t *testing.T) {
	reg := NewRegistry("")
	require.NoError(t, reg.LoadFS(web.Themes, "themes"))

	assert.Equal(t, []string{"emerald", "midnight"}, reg.Names())

	p, err := reg.Lookup("")
	require.NoError(t, err)
	assert.Equal(t, DefaultName, p.Name)
	value, ok := p.Color(VarEmerald)
	assert.True(t, ok)
	assert.Equal(t, "#10b981", value)

	midnight, err := reg.Lookup("Midnight")
	require.NoError(t, err)
	_, ok = midnight.Color(VarGrid)
	assert.False(t, ok, "midnight leaves the grid color to the fallback")
}

func TestRegistryUnknownTheme(t *testing.T) {
	reg := NewRegistry("")
	_, err := reg.Lookup("neon")
	assert.True(t, errors.Is(err, ErrUnknownTheme))
	assert.False(t, reg.Has("neon"))
}

func TestRegistryMergesOverrideFile(t *testing.T) {
	reg := NewRegistry("")
	require.NoError(t, reg.LoadFS(web.Themes, "themes"))

	dir := t.TempDir()
	file := filepath.Join(dir, "override.yaml")
	content := "name: emerald\ncolors:\n  emerald: \"#059669\"\n---\nname: sunset\ncolors:\n  --emerald: \"#f97316\"\n"
	require.NoError(t, os.WriteFile(file, []byte(content), 0o600))
	require.NoError(t, reg.LoadFile(file))

	p, err := reg.Lookup("emerald")
	require.NoError(t, err)
	value, _ := p.Color(VarEmerald)
	assert.Equal(t, "#059669", value)
	purple, _ := p.Color(VarPurpleBG)
	assert.Equal(t, "#1e1b4b", purple, "untouched colors survive the merge")
	assert.True(t, reg.Has("sunset"))
}

func TestRegistryRejectsNamelessPalette(t *testing.T) {
	reg := NewRegistry("")
	err := reg.Load(strings.NewReader("colors:\n  --emerald: red\n"))
	assert.Error(t, err)
}

func TestPaletteCSS(t *testing.T) {
	p := &Palette{Colors: map[string]string{"--b": "#222", "--a": "#111", "--c": ""}}
	assert.Equal(t, ":root { --a: #111; --b: #222; }", p.CSS())
	assert.Equal(t, "", (*Palette)(nil).CSS())
}
