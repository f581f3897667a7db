package fonts

import "testing"

func TestLoadBuiltin(t *testing.T) {
	for _, name := range []string{Regular, Bold, "embed:" + Regular} {
		data, err := Load(name)
		if err != nil {
			t.Fatalf("Load(%q): %v", name, err)
		}
		if len(data) == 0 {
			t.Fatalf("Load(%q) returned no bytes", name)
		}
	}
	if _, err := Load("Inter-Regular.ttf"); err == nil {
		t.Fatalf("expected error for unknown font")
	}
}
