package locale

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFileParsesCustomLocale(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fr.yaml")
	content := `
name: fr
eras: ["av. J.-C.", "ap. J.-C."]
months_short: [janv., févr., mars, avr., mai, juin, juil., août, sept., oct., nov., déc.]
months_long: [janvier, février, mars, avril, mai, juin, juillet, août, septembre, octobre, novembre, décembre]
weekdays_short: [lun., mar., mer., jeu., ven., sam., dim.]
weekdays_long: [lundi, mardi, mercredi, jeudi, vendredi, samedi, dimanche]
ampm: ["AM", "PM"]
zones:
  - name: UTC
    offset_millis: 0
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	l, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if l.Name != "fr" {
		t.Errorf("Name = %q, want fr", l.Name)
	}
	if l.MonthsLong[1] != "janvier" {
		t.Errorf("MonthsLong[1] = %q, want janvier", l.MonthsLong[1])
	}
	if l.WeekdaysLong[7] != "dimanche" {
		t.Errorf("WeekdaysLong[7] = %q, want dimanche", l.WeekdaysLong[7])
	}
	if len(l.Zones) != 1 || l.Zones[0].Name != "UTC" {
		t.Errorf("Zones = %+v, want one UTC entry", l.Zones)
	}
}

func TestLoadFileRejectsWrongMonthCount(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	content := "name: bad\nmonths_short: [Jan]\nmonths_long: [January]\nweekdays_short: []\nweekdays_long: []\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected an error for a locale file missing 12 months")
	}
}
