package date

import "testing"

func TestParseAsOf(t *testing.T) {
	d, err := ParseAsOf("31/12/24")
	if err != nil {
		t.Fatalf("ParseAsOf returned error: %v", err)
	}
	if got, want := d.String(), "2024-12-31"; got != want {
		t.Errorf("ParseAsOf = %q, want %q", got, want)
	}
}

func TestParseAsOfInvalid(t *testing.T) {
	for _, str := range []string{"", "2024-12-31", "31/13/24", "garbage"} {
		d, err := ParseAsOf(str)
		if err == nil {
			t.Errorf("ParseAsOf(%q) accepted an invalid value", str)
		}
		if !d.IsZero() {
			t.Errorf("ParseAsOf(%q) returned a non-zero date on error", str)
		}
	}
}

func TestMax(t *testing.T) {
	a := MustParseAsOf("01/01/24")
	b := MustParseAsOf("02/01/24")
	if got := a.Max(b); got != b {
		t.Errorf("Max = %s, want %s", got, b)
	}
	if got := b.Max(a); got != b {
		t.Errorf("Max = %s, want %s", got, b)
	}
	var zero Date
	if got := zero.Max(a); got != a {
		t.Errorf("Max with zero receiver = %s, want %s", got, a)
	}
	if got := a.Max(zero); got != a {
		t.Errorf("Max with zero argument = %s, want %s", got, a)
	}
}

func TestParseStamp(t *testing.T) {
	s, err := ParseStamp("12:34.56")
	if err != nil {
		t.Fatalf("ParseStamp returned error: %v", err)
	}
	if got, want := s.String(), "12:34.56"; got != want {
		t.Errorf("ParseStamp = %q, want %q", got, want)
	}
	if _, err := ParseStamp("2024-01-01"); err == nil {
		t.Error("ParseStamp accepted a calendar date")
	}
}
