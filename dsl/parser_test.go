package dsl_test

import (
	"strings"
	"testing"

	"github.com/parkhub/parkshots/dsl"
)

const sampleTheme = `
// corporate colours
theme corporate {
  color primary = #2563eb
  color surface = #1e293bcc

  font regular {
    src: "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf"
  }
  font bold { src: "fonts/Bold.ttf" }
}
`

func TestParseDocument(t *testing.T) {
	doc, err := dsl.ParseString(sampleTheme)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if doc.Name != "corporate" {
		t.Fatalf("expected theme name corporate, got %s", doc.Name)
	}
	if got := len(doc.Block.Statements); got != 4 {
		t.Fatalf("expected 4 statements, got %d", got)
	}

	primary := doc.Block.Statements[0].Command
	if primary == nil || primary.Name != "color" {
		t.Fatalf("expected color command, got %+v", doc.Block.Statements[0])
	}
	if len(primary.Args) != 3 {
		t.Fatalf("expected 3 args, got %d", len(primary.Args))
	}
	if primary.Args[0].Value != "primary" || primary.Args[1].Value != "=" {
		t.Fatalf("unexpected args: %+v %+v", primary.Args[0], primary.Args[1])
	}
	if primary.Args[2].Type != "Color" || primary.Args[2].Value != "#2563eb" {
		t.Fatalf("expected colour token, got %+v", primary.Args[2])
	}

	surface := doc.Block.Statements[1].Command
	if surface.Args[2].Value != "#1e293bcc" {
		t.Fatalf("expected 8-digit colour, got %q", surface.Args[2].Value)
	}

	regular := doc.Block.Statements[2].Command
	if regular == nil || regular.Block == nil {
		t.Fatalf("font command missing block: %+v", regular)
	}
	src := regular.Block.Statements[0].Assignment
	if src == nil || src.Key != "src" {
		t.Fatalf("expected src assignment, got %+v", regular.Block.Statements[0])
	}
	if got := src.Value.Text(); got != "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf" {
		t.Fatalf("unexpected src %q", got)
	}

	bold := doc.Block.Statements[3].Command
	if bold.Args[0].Value != "bold" || bold.Block.Statements[0].Assignment.Value.Text() != "fonts/Bold.ttf" {
		t.Fatalf("inline font block not parsed: %+v", bold)
	}
}

func TestParseRejectsMissingHeader(t *testing.T) {
	_, err := dsl.Parse("broken.theme", strings.NewReader(`palette x { }`))
	if err == nil {
		t.Fatalf("expected error for document without theme header")
	}
	if !strings.Contains(err.Error(), "broken.theme") {
		t.Fatalf("error should carry the file name, got %v", err)
	}
}

func TestParseEmptyTheme(t *testing.T) {
	doc, err := dsl.ParseString("theme empty {}\n")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(doc.Block.Statements) != 0 {
		t.Fatalf("expected no statements, got %d", len(doc.Block.Statements))
	}
}
