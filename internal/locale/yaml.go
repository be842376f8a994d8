package locale

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// yamlLocale is the on-disk shape of a custom locale file: plain string
// fields and slices that LoadFile copies into a Locale's fixed-size arrays,
// so a deployment can ship its own month/weekday/era/AM-PM names without
// recompiling.
type yamlLocale struct {
	Name          string    `yaml:"name"`
	Eras          [2]string `yaml:"eras"`
	MonthsShort   []string  `yaml:"months_short"`
	MonthsLong    []string  `yaml:"months_long"`
	WeekdaysShort []string  `yaml:"weekdays_short"`
	WeekdaysLong  []string  `yaml:"weekdays_long"`
	AMPM          [2]string `yaml:"ampm"`
	Zones         []struct {
		Name         string `yaml:"name"`
		OffsetMillis int64  `yaml:"offset_millis"`
	} `yaml:"zones"`
}

// LoadFile reads a custom locale from a YAML file. Month and weekday lists
// are expected in natural order (January..December, Monday..Sunday) and are
// shifted into the 1-based arrays Locale itself uses.
func LoadFile(path string) (*Locale, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("locale: read %s: %w", path, err)
	}
	var y yamlLocale
	if err := yaml.Unmarshal(raw, &y); err != nil {
		return nil, fmt.Errorf("locale: parse %s: %w", path, err)
	}
	if len(y.MonthsShort) != 12 || len(y.MonthsLong) != 12 {
		return nil, fmt.Errorf("locale: %s must list exactly 12 months", path)
	}
	if len(y.WeekdaysShort) != 7 || len(y.WeekdaysLong) != 7 {
		return nil, fmt.Errorf("locale: %s must list exactly 7 weekdays", path)
	}

	l := &Locale{Name: y.Name, Eras: y.Eras, AMPM: y.AMPM}
	for i := 0; i < 12; i++ {
		l.MonthsShort[i+1] = y.MonthsShort[i]
		l.MonthsLong[i+1] = y.MonthsLong[i]
	}
	for i := 0; i < 7; i++ {
		l.WeekdaysShort[i+1] = y.WeekdaysShort[i]
		l.WeekdaysLong[i+1] = y.WeekdaysLong[i]
	}
	for _, z := range y.Zones {
		l.Zones = append(l.Zones, ZoneEntry{Name: z.Name, OffsetMillis: z.OffsetMillis})
	}
	return l, nil
}
