package utils

import (
	"testing"
	"time"
)

func TestCoerce(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		for _, colType := range []string{"string", "int", "float", "date"} {
			got, err := Coerce(nil, colType)
			if err != nil {
				t.Fatalf("unexpected error for %s: %v", colType, err)
			}
			if got != nil {
				t.Errorf("expected nil for %s, got %v", colType, got)
			}
		}
	})

	t.Run("unknown type", func(t *testing.T) {
		if _, err := Coerce("x", "blob"); err == nil {
			t.Error("expected error for unknown column type")
		}
	})
}

func TestToInt(t *testing.T) {
	cases := []struct {
		name string
		in   interface{}
		want interface{}
	}{
		{"string", "42", int64(42)},
		{"float64", float64(17), int64(17)},
		{"padded string", " 8 ", int64(8)},
		{"not available", "N/A", nil},
		{"too few", "Too Few to Report", nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ToInt(c.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != c.want {
				t.Errorf("ToInt(%v) = %v, want %v", c.in, got, c.want)
			}
		})
	}

	if _, err := ToInt("twelve"); err == nil {
		t.Error("expected error for non-numeric string")
	}
}

func TestToFloat(t *testing.T) {
	got, err := ToFloat("1.0786")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 1.0786 {
		t.Errorf("expected 1.0786, got %v", got)
	}

	got, err = ToFloat("N/A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for N/A, got %v", got)
	}
}

func TestToDate(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"07/01/2020", time.Date(2020, 7, 1, 0, 0, 0, 0, time.UTC)},
		{"2020-07-01", time.Date(2020, 7, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, c := range cases {
		got, err := ToDate(c.in)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", c.in, err)
		}
		if !got.(time.Time).Equal(c.want) {
			t.Errorf("ToDate(%q) = %v, want %v", c.in, got, c.want)
		}
	}

	got, err := ToDate("")
	if err != nil {
		t.Fatalf("unexpected error for empty string: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for empty string, got %v", got)
	}

	if _, err := ToDate("July first"); err == nil {
		t.Error("expected error for unparseable date")
	}
}

func TestToString(t *testing.T) {
	if got := ToString(float64(450)); got != "450" {
		t.Errorf("expected integral float to render as 450, got %s", got)
	}
	if got := ToString(1.5); got != "1.5" {
		t.Errorf("expected 1.5, got %s", got)
	}
	if got := ToString([]byte("abc")); got != "abc" {
		t.Errorf("expected abc, got %s", got)
	}
}
