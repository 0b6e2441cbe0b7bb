package serverenv

import (
	"errors"
	"strings"
	"testing"
)

func TestLookupString(t *testing.T) {
	l := MapLookup{"SET": "value", "EMPTY": ""}
	if got := lookupString(l, "SET", "def"); got != "value" {
		t.Errorf("got %q, want value", got)
	}
	if got := lookupString(l, "ABSENT", "def"); got != "def" {
		t.Errorf("got %q, want def", got)
	}
	if got := lookupString(l, "EMPTY", "def"); got != "def" {
		t.Errorf("empty should fall back to default, got %q", got)
	}
}

func TestLookupRequired(t *testing.T) {
	l := MapLookup{"SET": "value", "EMPTY": ""}

	if got, err := lookupRequired(l, "SET"); err != nil || got != "value" {
		t.Errorf("got %q, %v", got, err)
	}

	for _, name := range []string{"ABSENT", "EMPTY"} {
		_, err := lookupRequired(l, name)
		var missing *MissingVariableError
		if !errors.As(err, &missing) {
			t.Fatalf("%s: expected MissingVariableError, got %v", name, err)
		}
		if missing.Name != name {
			t.Errorf("error names %q, want %s", missing.Name, name)
		}
	}
}

func TestLookupUint(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		absent  bool
		want    uint32
		wantErr bool
	}{
		{"absent uses default", "", true, 7, false},
		{"empty uses default", "", false, 7, false},
		{"valid value", "42", false, 42, false},
		{"zero is valid", "0", false, 0, false},
		{"not a number", "ten", false, 0, true},
		{"negative", "-1", false, 0, true},
		{"overflows uint32", "4294967296", false, 0, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := MapLookup{}
			if !tc.absent {
				l["N"] = tc.raw
			}
			got, err := lookupUint(l, "N", uint32(7))
			if tc.wantErr {
				var invalid *InvalidValueError
				if !errors.As(err, &invalid) {
					t.Fatalf("expected InvalidValueError, got %v", err)
				}
				if invalid.Expected != "uint32" {
					t.Errorf("expected type %q in error, want uint32", invalid.Expected)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("got %d, want %d", got, tc.want)
			}
		})
	}
}

func TestLookupPort(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		absent  bool
		want    uint16
		wantErr bool
	}{
		{"absent uses default", "", true, 9999, false},
		{"valid", "8080", false, 8080, false},
		{"upper bound", "65535", false, 65535, false},
		{"zero rejected", "0", false, 0, true},
		{"beyond range", "65536", false, 0, true},
		{"not a number", "http", false, 0, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := MapLookup{}
			if !tc.absent {
				l["PORT"] = tc.raw
			}
			got, err := lookupPort(l, "PORT", 9999)
			if tc.wantErr {
				var invalid *InvalidValueError
				if !errors.As(err, &invalid) {
					t.Fatalf("expected InvalidValueError, got %v", err)
				}
				if !strings.Contains(invalid.Expected, "port") {
					t.Errorf("error should describe a port, got %q", invalid.Expected)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("got %d, want %d", got, tc.want)
			}
		})
	}
}

func TestLookupBool(t *testing.T) {
	tests := []struct {
		raw     string
		want    bool
		wantErr bool
	}{
		{"true", true, false},
		{"TRUE", true, false},
		{"True", true, false},
		{"1", true, false},
		{"false", false, false},
		{"FALSE", false, false},
		{"0", false, false},
		{"yes", false, true},
		{"2", false, true},
	}
	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			got, err := lookupBool(MapLookup{"B": tc.raw}, "B", false)
			if tc.wantErr {
				var invalid *InvalidValueError
				if !errors.As(err, &invalid) {
					t.Fatalf("expected InvalidValueError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("got %t, want %t", got, tc.want)
			}
		})
	}

	t.Run("absent uses default", func(t *testing.T) {
		got, err := lookupBool(MapLookup{}, "B", true)
		if err != nil || !got {
			t.Errorf("got %t, %v, want true", got, err)
		}
	})
}

func TestOverlayPrecedence(t *testing.T) {
	l := overlay{
		MapLookup{"A": "first"},
		MapLookup{"A": "second", "B": "second"},
	}
	if v, _ := l.Lookup("A"); v != "first" {
		t.Errorf("earlier source should win, got %q", v)
	}
	if v, _ := l.Lookup("B"); v != "second" {
		t.Errorf("fallback source should fill gaps, got %q", v)
	}
	if _, ok := l.Lookup("C"); ok {
		t.Error("unknown name reported as present")
	}
}
