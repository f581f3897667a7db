package palette

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/parkhub/parkshots/dsl"
	"github.com/parkhub/parkshots/layout"
)

func TestTypographyCoversEveryRole(t *testing.T) {
	for _, role := range layout.FontRoles {
		spec, ok := Typography[role]
		require.True(t, ok, "role %s missing", role)
		require.Positive(t, spec.Size)
	}
	require.Equal(t, FontSpec{Size: 28, Bold: true}, Spec(layout.FontLarge))
	require.Equal(t, FontSpec{Size: 11}, Spec(layout.FontTiny))
	require.Equal(t, Typography[layout.FontBody], Spec("unknown"))
}

func TestColourTransforms(t *testing.T) {
	accent := layout.RGB(59, 130, 246)
	require.Equal(t, layout.RGB(14, 32, 61), Darken(accent, 4))
	require.Equal(t, layout.RGB(157, 193, 251), Lighten(accent))
	require.Equal(t, accent, Darken(accent, 0))
	require.Equal(t, layout.RGB(255, 255, 255), Lighten(layout.RGB(255, 255, 255)))
}

func TestNamedSlotsAreAddressable(t *testing.T) {
	p := Default()
	*p.Named()["primary"] = layout.RGB(1, 2, 3)
	require.Equal(t, layout.RGB(1, 2, 3), p.Primary)
	require.Equal(t, Default().Background, p.Background)
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#3b82f6")
	require.NoError(t, err)
	require.Equal(t, layout.RGB(59, 130, 246), c)

	c, err = ParseHex("#fff")
	require.NoError(t, err)
	require.Equal(t, layout.RGB(255, 255, 255), c)

	c, err = ParseHex("#ffffff1e")
	require.NoError(t, err)
	require.Equal(t, layout.RGBA(255, 255, 255, 30), c)

	_, err = ParseHex("#12345")
	require.Error(t, err)
}

func TestApplyTheme(t *testing.T) {
	doc, err := dsl.ParseString(`
theme corporate {
  color primary = #2563eb
  font bold { src: "/fonts/Bold.ttf" }
}
`)
	require.NoError(t, err)

	base := Default()
	th, err := ApplyTheme(doc, base)
	require.NoError(t, err)
	require.Equal(t, "corporate", th.Name)
	require.Equal(t, layout.RGB(0x25, 0x63, 0xeb), th.Palette.Primary)
	require.Equal(t, base.Surface, th.Palette.Surface)
	require.Equal(t, FontSources{Bold: "/fonts/Bold.ttf"}, th.Fonts)
	require.Equal(t, Default().Primary, base.Primary, "base palette must not change")
}

func TestApplyThemeRejectsUnknownColour(t *testing.T) {
	doc, err := dsl.ParseString("theme x {\n  color sparkle = #ffffff\n}\n")
	require.NoError(t, err)
	_, err = ApplyTheme(doc, Default())
	require.ErrorIs(t, err, ErrInvalidTheme)
	require.Contains(t, err.Error(), "sparkle")
}

func TestApplyThemeRejectsFontWithoutSrc(t *testing.T) {
	doc, err := dsl.ParseString("theme x {\n  font regular { }\n}\n")
	require.NoError(t, err)
	_, err = ApplyTheme(doc, Default())
	require.ErrorIs(t, err, ErrInvalidTheme)
}

func TestLoadTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dark.theme")
	require.NoError(t, os.WriteFile(path, []byte("theme dark {\n  color background = #000000\n}\n"), 0o644))

	th, err := LoadTheme(path, Default())
	require.NoError(t, err)
	require.Equal(t, layout.RGB(0, 0, 0), th.Palette.Background)

	_, err = LoadTheme(filepath.Join(t.TempDir(), "missing.theme"), Default())
	require.Error(t, err)
}
