package calendar

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
)

const overridesFixture = `# company calendar 2024
2024-12-24 shortened 4 Veille de Noël
2024-12-27 holiday 0 Fermeture annuelle
2024-12-30 holiday 8 Fermeture annuelle

not a valid line
2024-13-01 holiday 0 bad date
2024-12-31 vacation 0 unknown type
2024-12-31 workday eight bad hours
2025-01-03 workday 8   Inventaire  annuel
`

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "overrides.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func TestFileCalendar_Load(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	fc := NewFileCalendar(writeFixture(t, overridesFixture), logger)

	if err := fc.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if fc.Len() != 4 {
		t.Fatalf("Len() = %d, want 4 valid lines", fc.Len())
	}

	tests := []struct {
		name      string
		day       int
		month     time.Month
		year      int
		wantType  DayType
		wantWork  bool
		wantHours int
		wantNote  string
	}{
		{"shortened day", 24, time.December, 2024, DayTypeShortened, true, 4, "Veille de Noël"},
		{"closing day", 27, time.December, 2024, DayTypeHoliday, false, 0, "Fermeture annuelle"},
		{"hours ignored on days off", 30, time.December, 2024, DayTypeHoliday, false, 0, "Fermeture annuelle"},
		{"note whitespace collapsed", 3, time.January, 2025, DayTypeWorkday, true, 8, "Inventaire annuel"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := fc.GetDayInfo(date(tt.year, tt.month, tt.day))
			if err != nil {
				t.Fatalf("GetDayInfo() error = %v", err)
			}
			if info.Type != tt.wantType || info.IsWorkday != tt.wantWork || info.WorkingHours != tt.wantHours {
				t.Errorf("GetDayInfo() = %+v, want type %v workday %v hours %d",
					info, tt.wantType, tt.wantWork, tt.wantHours)
			}
			if info.Note != tt.wantNote {
				t.Errorf("Note = %q, want %q", info.Note, tt.wantNote)
			}
		})
	}
}

func TestFileCalendar_MissingDays(t *testing.T) {
	fc := NewFileCalendar(writeFixture(t, overridesFixture), zap.NewNop())
	if err := fc.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if _, err := fc.GetDayInfo(date(2024, time.December, 31)); !errors.Is(err, ErrDayNotFound) {
		t.Errorf("GetDayInfo(2024-12-31) error = %v, want ErrDayNotFound", err)
	}
	if _, _, err := fc.IsWorkday(date(2024, time.June, 3)); !errors.Is(err, ErrDayNotFound) {
		t.Errorf("IsWorkday(2024-06-03) error = %v, want ErrDayNotFound", err)
	}
	if _, err := fc.GetMonthInfo(2024, time.June); !errors.Is(err, ErrDayNotFound) {
		t.Errorf("GetMonthInfo(2024-06) error = %v, want ErrDayNotFound", err)
	}

	december, err := fc.GetMonthInfo(2024, time.December)
	if err != nil {
		t.Fatalf("GetMonthInfo(2024-12) error = %v", err)
	}
	if len(december.Days) != 3 || december.Days[0].Date != date(2024, time.December, 24) {
		t.Errorf("GetMonthInfo(2024-12) days = %+v", december.Days)
	}
	if december.WorkDays != 1 || december.Holidays != 2 || december.WorkingHours != 4 {
		t.Errorf("GetMonthInfo(2024-12) aggregates = %d work, %d holidays, %dh",
			december.WorkDays, december.Holidays, december.WorkingHours)
	}
}

func TestFileCalendar_LoadMissingFile(t *testing.T) {
	fc := NewFileCalendar(filepath.Join(t.TempDir(), "absent.txt"), nil)
	if err := fc.Load(); err == nil {
		t.Error("Load() expected error for missing file, got nil")
	}
}

func TestFileCalendar_ShortenedDefault(t *testing.T) {
	fc := NewFileCalendar(writeFixture(t, "2024-12-31 shortened 0 Saint-Sylvestre\n2024-12-24 shortened 5\n"), nil)
	fc.SetShortenedHours(4)
	if err := fc.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	tests := []struct {
		date      int
		wantHours int
	}{
		{31, 4},
		{24, 5},
	}
	for _, tt := range tests {
		_, hours, err := fc.IsWorkday(date(2024, time.December, tt.date))
		if err != nil {
			t.Fatalf("IsWorkday() error = %v", err)
		}
		if hours != tt.wantHours {
			t.Errorf("2024-12-%d hours = %d, want %d", tt.date, hours, tt.wantHours)
		}
	}
}
