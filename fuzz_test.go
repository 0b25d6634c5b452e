package guard

import (
	"math/big"
	"testing"
	"unicode/utf8"

	"github.com/jmgilman/go/guard/errors"
	"github.com/jmgilman/go/guard/optional"
)

// FuzzReverse checks that reversing twice returns the original text.
func FuzzReverse(f *testing.F) {
	seeds := []string{
		"hello",
		"",
		"a",
		"racecar",
		"héllo, 世界",
		"🚨🔥",
		"tab\tand\nnewline",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	g := New()
	f.Fuzz(func(t *testing.T, text string) {
		// Invalid UTF-8 decodes to U+FFFD and cannot round-trip
		if !utf8.ValidString(text) {
			t.Skip()
		}

		once, err := g.Reverse(optional.Of(text))
		if err != nil {
			t.Fatalf("Reverse(%q) failed: %v", text, err)
		}
		if utf8.RuneCountInString(once) != utf8.RuneCountInString(text) {
			t.Fatalf("Reverse(%q) = %q changed the rune count", text, once)
		}

		twice, err := g.Reverse(optional.Of(once))
		if err != nil {
			t.Fatalf("Reverse(%q) failed: %v", once, err)
		}
		if twice != text {
			t.Fatalf("Reverse(Reverse(%q)) = %q", text, twice)
		}
	})
}

// FuzzAddNumbers checks AddNumbers against arbitrary-precision addition.
func FuzzAddNumbers(f *testing.F) {
	f.Add(int64(10), int64(1))
	f.Add(int64(9223372036854775807), int64(1))
	f.Add(int64(-9223372036854775808), int64(-11))
	f.Add(int64(9223372036854775807), int64(-9223372036854775808))
	f.Add(int64(0), int64(0))

	g := New()
	f.Fuzz(func(t *testing.T, a, b int64) {
		x, y := int(a), int(b)
		exact := new(big.Int).Add(big.NewInt(int64(x)), big.NewInt(int64(y)))

		got, err := g.AddNumbers(x, y)
		if exact.IsInt64() && exact.Int64() == int64(int(exact.Int64())) {
			if err != nil {
				t.Fatalf("AddNumbers(%d, %d) failed: %v", x, y, err)
			}
			if int64(got) != exact.Int64() {
				t.Fatalf("AddNumbers(%d, %d) = %d, want %s", x, y, got, exact)
			}
			return
		}

		if errors.GetCode(err) != errors.CodeOverflow {
			t.Fatalf("AddNumbers(%d, %d) = %d, %v; want OVERFLOW", x, y, got, err)
		}
	})
}

// FuzzDivideNumbers checks DivideNumbers never panics and matches truncated division.
func FuzzDivideNumbers(f *testing.F) {
	f.Add(int64(10), int64(5))
	f.Add(int64(10), int64(0))
	f.Add(int64(-7), int64(2))
	f.Add(int64(-9223372036854775808), int64(-1))

	g := New()
	f.Fuzz(func(t *testing.T, a, b int64) {
		dividend, divisor := int(a), int(b)

		got, err := g.DivideNumbers(dividend, divisor)
		if divisor == 0 {
			if errors.GetCode(err) != errors.CodeDivideByZero {
				t.Fatalf("DivideNumbers(%d, 0) = %d, %v; want DIVIDE_BY_ZERO", dividend, got, err)
			}
			return
		}

		exact := new(big.Int).Quo(big.NewInt(int64(dividend)), big.NewInt(int64(divisor)))
		if !exact.IsInt64() || exact.Int64() != int64(int(exact.Int64())) {
			if errors.GetCode(err) != errors.CodeOverflow {
				t.Fatalf("DivideNumbers(%d, %d) = %d, %v; want OVERFLOW", dividend, divisor, got, err)
			}
			return
		}

		if err != nil {
			t.Fatalf("DivideNumbers(%d, %d) failed: %v", dividend, divisor, err)
		}
		if int64(got) != exact.Int64() {
			t.Fatalf("DivideNumbers(%d, %d) = %d, want %s", dividend, divisor, got, exact)
		}
	})
}

// FuzzParseInt ensures ParseInt never panics and only reports parse codes.
func FuzzParseInt(f *testing.F) {
	seeds := []string{"11", "Invalid", "", "-0", "+7", " 42 ", "99999999999999999999", "0x10", "1e3"}
	for _, s := range seeds {
		f.Add(s)
	}

	g := New()
	f.Fuzz(func(t *testing.T, text string) {
		_, err := g.ParseInt(text)
		if err == nil {
			return
		}
		switch errors.GetCode(err) {
		case errors.CodeFormat, errors.CodeOverflow:
		default:
			t.Fatalf("ParseInt(%q) returned unexpected error %v", text, err)
		}
	})
}
