package cssvars

import (
	"fmt"
	"sort"

	"github.com/MeKo-Tech/figmatokens/internal/style"
)

// MismatchKind says why a variable failed the check.
type MismatchKind string

const (
	Missing   MismatchKind = "missing"
	Different MismatchKind = "different"
	Malformed MismatchKind = "malformed"
)

// Mismatch is one variable whose stylesheet value does not match the tokens.
type Mismatch struct {
	Name     string
	Kind     MismatchKind
	Expected string
	Actual   string
}

func (m Mismatch) String() string {
	switch m.Kind {
	case Missing:
		return fmt.Sprintf("%s: missing (want %s)", m.Name, m.Expected)
	case Malformed:
		return fmt.Sprintf("%s: %q is not an HSL triple (want %s)", m.Name, m.Actual, m.Expected)
	default:
		return fmt.Sprintf("%s: got %s, want %s", m.Name, m.Actual, m.Expected)
	}
}

// Check compares HSL color variables against expected "H S% L%" values.
// Values are compared numerically, so "hsl(0, 0%, 100%)" matches "0 0% 100%".
// Mismatches are returned sorted by name.
func Check(vars map[string]string, expected map[string]string) []Mismatch {
	names := make([]string, 0, len(expected))
	for name := range expected {
		names = append(names, name)
	}
	sort.Strings(names)

	var out []Mismatch
	for _, name := range names {
		want := expected[name]
		got, ok := vars[name]
		if !ok {
			out = append(out, Mismatch{Name: name, Kind: Missing, Expected: want})
			continue
		}

		gotHSL, err := style.ParseHSL(got)
		if err != nil {
			out = append(out, Mismatch{Name: name, Kind: Malformed, Expected: want, Actual: got})
			continue
		}
		wantHSL, err := style.ParseHSL(want)
		if err != nil || gotHSL != wantHSL {
			out = append(out, Mismatch{Name: name, Kind: Different, Expected: want, Actual: got})
		}
	}
	return out
}
