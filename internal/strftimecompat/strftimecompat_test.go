package strftimecompat

import "testing"

func TestTranslateBasic(t *testing.T) {
	got, err := Translate("%Y-%m-%d %H:%M:%S")
	if err != nil {
		t.Fatal(err)
	}
	want := "yyyy-MM-dd HH:mm:ss"
	if got != want {
		t.Fatalf("Translate = %q, want %q", got, want)
	}
}

func TestTranslateLiteralPercent(t *testing.T) {
	got, err := Translate("100%% done %Y")
	if err != nil {
		t.Fatal(err)
	}
	if got != "100% done yyyy" {
		t.Fatalf("Translate = %q", got)
	}
}

func TestTranslateUnsupportedDirective(t *testing.T) {
	if _, err := Translate("%j"); err == nil {
		t.Fatal("expected unsupported-directive error for %j")
	}
}
