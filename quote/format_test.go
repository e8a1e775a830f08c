package quote

import "testing"

func TestToNumericString(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"$1,234.56abc", "123456"},
		{"abc", ""},
		{"007", "007"},
		{"1 000 000", "1000000"},
	}
	for _, c := range cases {
		if got := ToNumericString(c.in); got != c.want {
			t.Errorf("ToNumericString(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestToDecimalNumericString_KeepsFirstDot(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"$1,234.56", "1234.56"},
		{"1.2.3", "1.23"},
		{"...", "."},
		{"6.5%", "6.5"},
	}
	for _, c := range cases {
		if got := ToDecimalNumericString(c.in); got != c.want {
			t.Errorf("ToDecimalNumericString(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatThousands(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", ""}, // never "0"
		{"1", "1"},
		{"999", "999"},
		{"1000", "1,000"},
		{"123456", "123,456"},
		{"1234567", "1,234,567"},
	}
	for _, c := range cases {
		if got := FormatThousands(c.in); got != c.want {
			t.Errorf("FormatThousands(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatDecimalThousands(t *testing.T) {
	if got := FormatDecimalThousands("1234.5"); got != "1,234.5" {
		t.Errorf("got %q, want 1,234.5", got)
	}
	if got := FormatDecimalThousands("1234"); got != "1,234" {
		t.Errorf("got %q, want 1,234", got)
	}
	if got := FormatDecimalThousands(""); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestFormattingRoundTrip(t *testing.T) {
	// The decimal point is a non-digit for the whole-dollar path: it is
	// stripped, not preserved.
	digits := ToNumericString("$1,234.56abc")
	if digits != "123456" {
		t.Fatalf("canonical = %q, want 123456", digits)
	}
	if got := FormatThousands(digits); got != "123,456" {
		t.Fatalf("display = %q, want 123,456", got)
	}
}

func TestParseAmount(t *testing.T) {
	if !ParseAmount("").IsZero() {
		t.Error("blank should parse to zero")
	}
	if got := ParseAmount("2,150.00"); got.String() != "2150" {
		t.Errorf("ParseAmount(2,150.00) = %s, want 2150", got)
	}
	if got := ParseAmount("6.5"); got.String() != "6.5" {
		t.Errorf("ParseAmount(6.5) = %s, want 6.5", got)
	}
	if !ParseAmount("5.").Equal(ParseAmount("5")) {
		t.Error("trailing dot should not break parsing")
	}
}
