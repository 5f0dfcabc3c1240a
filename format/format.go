// Package format renders numeric results as display strings in plain,
// automatic, or scientific notation.
package format

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Mode selects the display notation for numeric results.
type Mode int

const (
	// Plain writes the full decimal expansion with comma grouping.
	Plain Mode = iota
	// Automatic writes plain digits without grouping, switching to
	// scientific notation below 1e-6 and at 1e6 and above.
	Automatic
	// Scientific always writes mantissa-exponent notation.
	Scientific
)

func (m Mode) String() string {
	switch m {
	case Plain:
		return "plain"
	case Automatic:
		return "automatic"
	case Scientific:
		return "scientific"
	}
	return "unknown"
}

// ParseMode maps a config string onto a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "plain":
		return Plain, nil
	case "automatic", "auto", "":
		return Automatic, nil
	case "scientific", "sci":
		return Scientific, nil
	}
	return Automatic, fmt.Errorf("format: unknown mode %q", s)
}

func (m *Mode) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	mode, err := ParseMode(s)
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

func (m Mode) MarshalYAML() (interface{}, error) { return m.String(), nil }

// Config carries the display mode and the significant-digit count used
// by the scientific paths.
type Config struct {
	Mode      Mode `yaml:"format"`
	Precision int  `yaml:"precision"`
}

// DefaultConfig is automatic notation at ten significant digits.
func DefaultConfig() Config { return Config{Mode: Automatic, Precision: 10} }

func (c Config) digits() int {
	switch {
	case c.Precision < 1:
		return 10
	case c.Precision > 17:
		return 17
	}
	return c.Precision
}

// Float renders an approximate value. Infinities and NaN pass through
// as their symbols regardless of mode.
func Float(v float64, cfg Config) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "∞"
	case math.IsInf(v, -1):
		return "-∞"
	case v == 0:
		return "0"
	}

	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	// strconv rounds the mantissa to the requested significant digits,
	// carrying into the exponent when needed (9.99e6 at two digits
	// becomes 1.0e7).
	s := strconv.FormatFloat(v, 'e', cfg.digits()-1, 64)
	digits, exp := splitMantissa(s)
	return sign + render(digits, exp, cfg)
}

// Int renders an exact integer. Plain mode keeps every digit;
// scientific paths round to the configured precision.
func Int(v *big.Int, cfg Config) string {
	if v.Sign() == 0 {
		return "0"
	}
	sign := ""
	digits := v.String()
	if digits[0] == '-' {
		sign = "-"
		digits = digits[1:]
	}
	exp := len(digits) - 1
	digits = strings.TrimRight(digits, "0")
	if digits == "" {
		digits = "0"
	}
	return sign + render(digits, exp, cfg)
}

// render lays out a digit string whose value is digits[0].digits[1:]
// times 10^exp, according to the mode.
func render(digits string, exp int, cfg Config) string {
	mode := cfg.Mode
	if mode == Automatic {
		if exp >= 6 || exp <= -7 {
			mode = Scientific
		}
	}
	if mode == Scientific {
		digits, carry := roundDigits(digits, cfg.digits())
		return scientific(digits, exp+carry)
	}
	return decimal(digits, exp, mode == Plain)
}

// splitMantissa parses strconv's 'e' output ("d.ddde±dd") into a digit
// string and decimal exponent.
func splitMantissa(s string) (string, int) {
	ePos := strings.IndexByte(s, 'e')
	mant := strings.Replace(s[:ePos], ".", "", 1)
	exp, _ := strconv.Atoi(s[ePos+1:])
	mant = strings.TrimRight(mant, "0")
	if mant == "" {
		mant = "0"
	}
	return mant, exp
}

// roundDigits rounds a digit string to n significant digits. The
// second result is 1 when rounding carried past the leading digit
// (999 → 1000), which bumps the exponent.
func roundDigits(digits string, n int) (string, int) {
	if len(digits) <= n {
		return digits, 0
	}
	keep := []byte(digits[:n])
	if digits[n] >= '5' {
		i := n - 1
		for ; i >= 0; i-- {
			if keep[i] < '9' {
				keep[i]++
				break
			}
			keep[i] = '0'
		}
		if i < 0 {
			return "1", 1
		}
	}
	out := strings.TrimRight(string(keep), "0")
	if out == "" {
		out = "0"
	}
	return out, 0
}

func scientific(digits string, exp int) string {
	var b strings.Builder
	b.WriteByte(digits[0])
	if len(digits) > 1 {
		b.WriteByte('.')
		b.WriteString(digits[1:])
	}
	b.WriteByte('E')
	b.WriteString(strconv.Itoa(exp))
	return b.String()
}

func decimal(digits string, exp int, group bool) string {
	var intPart, fracPart string
	switch {
	case exp >= len(digits)-1:
		intPart = digits + strings.Repeat("0", exp-len(digits)+1)
	case exp >= 0:
		intPart = digits[:exp+1]
		fracPart = digits[exp+1:]
	default:
		intPart = "0"
		fracPart = strings.Repeat("0", -exp-1) + digits
	}
	if group {
		intPart = groupThousands(intPart)
	}
	if fracPart == "" {
		return intPart
	}
	return intPart + "." + fracPart
}

func groupThousands(s string) string {
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
