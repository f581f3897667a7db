package palette

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/parkhub/parkshots/dsl"
	"github.com/parkhub/parkshots/layout"
)

// ErrInvalidTheme wraps every semantic error found in a theme file.
var ErrInvalidTheme = errors.New("invalid theme")

// FontSources lists explicit font files for the regular and bold faces.
// Empty fields mean "use the configured font directory".
type FontSources struct {
	Regular string
	Bold    string
}

// Theme is a palette plus optional font sources loaded from a theme file.
type Theme struct {
	Name    string
	Palette Palette
	Fonts   FontSources
}

// LoadTheme parses the theme file at path and applies it on top of base.
func LoadTheme(path string, base Palette) (Theme, error) {
	f, err := os.Open(path)
	if err != nil {
		return Theme{}, fmt.Errorf("open theme %s: %w", path, err)
	}
	defer f.Close()

	doc, err := dsl.Parse(path, f)
	if err != nil {
		return Theme{}, fmt.Errorf("parse theme %s: %w", path, err)
	}
	return ApplyTheme(doc, base)
}

// ApplyTheme interprets doc and returns a copy of base with its overrides.
func ApplyTheme(doc *dsl.Document, base Palette) (Theme, error) {
	th := Theme{Name: doc.Name, Palette: base}
	if doc.Block == nil {
		return th, nil
	}
	slots := th.Palette.Named()
	for _, st := range doc.Block.Statements {
		cmd := st.Command
		if cmd == nil {
			return Theme{}, fmt.Errorf("%w: %s: top-level assignment %q not allowed", ErrInvalidTheme, st.Assignment.Pos, st.Assignment.Key)
		}
		switch cmd.Name {
		case "color":
			name, value, err := colorArgs(cmd)
			if err != nil {
				return Theme{}, err
			}
			slot, ok := slots[name]
			if !ok {
				return Theme{}, fmt.Errorf("%w: %s: unknown colour %q", ErrInvalidTheme, cmd.Pos, name)
			}
			col, err := ParseHex(value)
			if err != nil {
				return Theme{}, fmt.Errorf("%w: %s: %v", ErrInvalidTheme, cmd.Pos, err)
			}
			*slot = col
		case "font":
			if err := applyFont(cmd, &th.Fonts); err != nil {
				return Theme{}, err
			}
		default:
			return Theme{}, fmt.Errorf("%w: %s: unknown declaration %q", ErrInvalidTheme, cmd.Pos, cmd.Name)
		}
	}
	return th, nil
}

func colorArgs(cmd *dsl.Command) (string, string, error) {
	args := cmd.Args
	if len(args) == 3 && args[1].Value == "=" {
		return args[0].Value, args[2].Value, nil
	}
	if len(args) == 2 {
		return args[0].Value, args[1].Value, nil
	}
	return "", "", fmt.Errorf("%w: %s: expected `color <name> = #rrggbb`", ErrInvalidTheme, cmd.Pos)
}

func applyFont(cmd *dsl.Command, fonts *FontSources) error {
	if len(cmd.Args) != 1 || cmd.Block == nil {
		return fmt.Errorf("%w: %s: expected `font regular|bold { src: \"...\" }`", ErrInvalidTheme, cmd.Pos)
	}
	var src string
	for _, st := range cmd.Block.Statements {
		if st.Assignment != nil && st.Assignment.Key == "src" {
			src = st.Assignment.Value.Text()
		}
	}
	if src == "" {
		return fmt.Errorf("%w: %s: font %s missing src", ErrInvalidTheme, cmd.Pos, cmd.Args[0].Value)
	}
	switch cmd.Args[0].Value {
	case "regular":
		fonts.Regular = src
	case "bold":
		fonts.Bold = src
	default:
		return fmt.Errorf("%w: %s: unknown font weight %q", ErrInvalidTheme, cmd.Pos, cmd.Args[0].Value)
	}
	return nil
}

// ParseHex parses #rgb, #rrggbb or #rrggbbaa.
func ParseHex(s string) (layout.Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return layout.Color{}, fmt.Errorf("colour %q must have 3, 6 or 8 hex digits", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return layout.Color{}, fmt.Errorf("colour %q: %w", s, err)
	}
	return layout.RGBA(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
}
