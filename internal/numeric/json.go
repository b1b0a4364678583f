package numeric

import (
	"fmt"
	"math/big"
	"strings"
)

var accuracyBig = new(big.Int).SetUint64(Accuracy)

// Value marshals as its decimal string form so snapshots and projections
// stay readable while round-tripping the full 128-bit inner exactly.

func (v Value) MarshalJSON() ([]byte, error) {
	return []byte(`"` + v.String() + `"`), nil
}

func (v *Value) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := parseDecimal(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// parseDecimal reads "<int>.<frac>" with up to 9 fractional digits into the
// scaled inner representation. Rejects negatives and values past 128 bits.
func parseDecimal(s string) (Value, error) {
	if s == "" {
		return Zero(), fmt.Errorf("numeric: empty decimal")
	}
	if s[0] == '-' {
		return Zero(), fmt.Errorf("numeric: negative decimal %q", s)
	}

	intPart := s
	fracPart := ""
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		intPart, fracPart = s[:dot], s[dot+1:]
	}
	if intPart == "" {
		intPart = "0"
	}
	if len(fracPart) > 9 {
		return Zero(), fmt.Errorf("numeric: too many fractional digits in %q", s)
	}
	// Right-pad to the full 9-digit scale.
	fracPart += strings.Repeat("0", 9-len(fracPart))

	b := getBig()
	defer putBig(b)
	if _, ok := b.SetString(intPart, 10); !ok {
		return Zero(), fmt.Errorf("numeric: bad decimal %q", s)
	}
	b.Mul(b, accuracyBig)

	f := getBig()
	defer putBig(f)
	if _, ok := f.SetString(fracPart, 10); !ok {
		return Zero(), fmt.Errorf("numeric: bad decimal %q", s)
	}
	b.Add(b, f)

	v, ok := fromBig(b)
	if !ok {
		return Zero(), fmt.Errorf("numeric: decimal %q out of range", s)
	}
	return v, nil
}
