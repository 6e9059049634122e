// Package rounding implements significant-figure rounding for values with
// uncertainties: mantissa/exponent decomposition, the pdg/pub/one uncertainty
// rounding conventions, joint value/uncertainty rendering at a shared
// magnitude, template-based precision matching and SI prefix inference.
package rounding

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Package errors
var (
	// ErrNoUncertainty is returned when a value is rounded without any
	// uncertainty to act as the precision reference.
	ErrNoUncertainty = errors.New("rounding: cannot round a bare value without an uncertainty")

	// ErrNonPositive is returned when an uncertainty magnitude is not a
	// positive finite number.
	ErrNonPositive = errors.New("rounding: uncertainty must be a positive finite number")

	// ErrBadTemplate is returned for a malformed precision template.
	ErrBadTemplate = errors.New("rounding: invalid precision template")

	// ErrNotFinite is returned when a value to format is NaN or infinite.
	ErrNotFinite = errors.New("rounding: value is not finite")
)

// Method selects the uncertainty rounding convention.
type Method string

const (
	// MethodPDG is the particle-physics convention: 1-2 significant figures
	// chosen from the leading three digits of the uncertainty.
	MethodPDG Method = "pdg"

	// MethodPublication keeps one digit more than MethodPDG. This is the
	// default.
	MethodPublication Method = "pub"

	// MethodOne always keeps a single significant figure.
	MethodOne Method = "one"
)

// Mode selects how ties and truncation are handled by MatchPrecision.
type Mode int

const (
	// ModeHalfAwayFromZero rounds to nearest, ties away from zero (default).
	ModeHalfAwayFromZero Mode = iota

	// ModeHalfEven rounds to nearest, ties to even.
	ModeHalfEven

	// ModeUp rounds away from zero.
	ModeUp

	// ModeDown rounds towards zero.
	ModeDown

	// ModeCeiling rounds towards positive infinity.
	ModeCeiling

	// ModeFloor rounds towards negative infinity.
	ModeFloor
)

// SplitValue decomposes x into a mantissa in [1, 10) and a power-of-ten
// exponent so that x = mantissa * 10^exponent. The sign stays on the
// mantissa. Zero maps to (0, 0).
func SplitValue(x float64) (float64, int) {
	if x == 0 {
		return 0, 0
	}

	e := int(math.Floor(math.Log10(math.Abs(x))))
	m := x / math.Pow(10, float64(e))

	// guard against drift at decade boundaries
	if math.Abs(m) >= 10 {
		m /= 10
		e++
	}
	if math.Abs(m) < 1 {
		m *= 10
		e--
	}

	return m, e
}

// RoundUncertainty rounds the uncertainty magnitude u according to method and
// returns the significant digits as a string together with the power-of-ten
// magnitude of the last digit, so that u ~= digits * 10^magnitude.
func RoundUncertainty(u float64, method Method) (string, int, error) {
	if method == "" {
		method = MethodPublication
	}
	if !(u > 0) || math.IsInf(u, 0) {
		return "", 0, fmt.Errorf("%w, got %v", ErrNonPositive, u)
	}

	m, e := SplitValue(u)

	// leading three digits as an integer in [100, 999]
	d := int(math.Round(math.Abs(m) * 100))
	if d == 1000 {
		// round-up across the decade, e.g. 9.996 -> 10.0
		d = 100
		e++
	}

	switch method {
	case MethodPDG:
		switch {
		case d <= 354:
			return strconv.Itoa(roundDiv(d, 10)), e - 1, nil
		case d <= 949:
			return strconv.Itoa(roundDiv(d, 100)), e, nil
		default:
			// round up to the next decade, rendered as a literal "10"
			return "10", e, nil
		}

	case MethodPublication:
		switch {
		case d <= 354 || d >= 950:
			return strconv.Itoa(d), e - 2, nil
		default:
			return strconv.Itoa(roundDiv(d, 10)), e - 1, nil
		}

	case MethodOne:
		v := int(math.Round(math.Abs(m)))
		return strconv.Itoa(v), e, nil

	default:
		return "", 0, fmt.Errorf("rounding: unknown method %q", method)
	}
}

// RoundValue rounds a nominal value together with one or more uncertainty
// magnitudes. Every uncertainty is rounded independently with method, the
// finest (most negative) resulting magnitude becomes the shared display
// magnitude, and the nominal value and all uncertainties are rendered as
// integer digit strings at that magnitude.
func RoundValue(nominal float64, uncertainties []float64, method Method) (string, []string, int, error) {
	if len(uncertainties) == 0 {
		return "", nil, 0, ErrNoUncertainty
	}

	mag := 0
	for i, u := range uncertainties {
		_, m, err := RoundUncertainty(u, method)
		if err != nil {
			return "", nil, 0, err
		}
		if i == 0 || m < mag {
			mag = m
		}
	}

	uncStrs := make([]string, len(uncertainties))
	for i, u := range uncertainties {
		uncStrs[i] = renderAt(u, mag)
	}

	return renderAt(nominal, mag), uncStrs, mag, nil
}

// renderAt renders v as an integer digit string at magnitude mag, rounding
// half away from zero.
func renderAt(v float64, mag int) string {
	scaled := math.Round(v / math.Pow(10, float64(mag)))
	return strconv.FormatFloat(scaled, 'f', 0, 64)
}

// MatchPrecision rounds x to the decimal precision implied by a template
// string and returns the formatted result. Template forms: ".k" keeps k
// fractional digits (e.g. ".2" keeps two), "k." truncates to an integer,
// and a decimal literal such as "0.01" keeps as many fractional digits as
// it spells out. The default rounding mode is half away from zero.
func MatchPrecision(x float64, template string, mode ...Mode) (string, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return "", fmt.Errorf("%w: %v", ErrNotFinite, x)
	}

	frac, err := parseTemplate(template)
	if err != nil {
		return "", err
	}

	m := ModeHalfAwayFromZero
	if len(mode) > 0 {
		m = mode[0]
	}

	scale := math.Pow(10, float64(frac))
	y := x * scale
	switch m {
	case ModeHalfAwayFromZero:
		y = math.Round(y)
	case ModeHalfEven:
		y = math.RoundToEven(y)
	case ModeUp:
		y = math.Copysign(math.Ceil(math.Abs(y)), y)
	case ModeDown:
		y = math.Trunc(y)
	case ModeCeiling:
		y = math.Ceil(y)
	case ModeFloor:
		y = math.Floor(y)
	default:
		return "", fmt.Errorf("rounding: unknown mode %d", m)
	}

	return strconv.FormatFloat(y/scale, 'f', frac, 64), nil
}

// parseTemplate extracts the number of fractional digits from a template
// such as ".2", "1." or "0.01".
func parseTemplate(template string) (int, error) {
	if template == "" {
		return 0, fmt.Errorf("%w: empty", ErrBadTemplate)
	}

	intPart := template
	fracPart := ""
	hasDot := false
	if i := strings.IndexByte(template, '.'); i >= 0 {
		intPart, fracPart = template[:i], template[i+1:]
		hasDot = true
	}
	for _, part := range []string{intPart, fracPart} {
		for _, r := range part {
			if r < '0' || r > '9' {
				return 0, fmt.Errorf("%w: %q", ErrBadTemplate, template)
			}
		}
	}

	// the bare ".k" form names the digit count directly; a decimal literal
	// implies it through its own fractional digits
	if hasDot && intPart == "" {
		n, err := strconv.Atoi(fracPart)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrBadTemplate, template)
		}
		return n, nil
	}
	return len(fracPart), nil
}

// siPrefixes maps powers of ten in [-18, 18] to SI prefix symbols.
var siPrefixes = map[int]string{
	-18: "a", -15: "f", -12: "p", -9: "n", -6: "u", -3: "m",
	0: "", 3: "k", 6: "M", 9: "G", 12: "T", 15: "P", 18: "E",
}

// InferSIPrefix maps the magnitude of x to the nearest lower multiple of
// three in [-18, 18] and returns the corresponding SI prefix symbol along
// with that power of ten. Zero maps to ("", 0).
func InferSIPrefix(x float64) (string, int) {
	if x == 0 {
		return "", 0
	}

	_, e := SplitValue(x)
	mag := 3 * int(math.Floor(float64(e)/3))
	if mag < -18 {
		mag = -18
	}
	if mag > 18 {
		mag = 18
	}

	return siPrefixes[mag], mag
}

// roundDiv divides d by q rounding half away from zero. Both are positive.
func roundDiv(d, q int) int {
	return (d + q/2) / q
}
