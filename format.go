// Package decimal: textual and hexadecimal export.

package decimal

import (
	"strconv"
	"strings"
)

// String returns the canonical decimal form: optional minus sign, integer
// digits, and a fractional part exactly as stored (storage is kept free of
// redundant zeros by the normalizer). Specials print as "NaN", "Inf" and
// "-Inf", which Parse round-trips.
func (d Decimal) String() string {
	switch d.kind {
	case KindNaN:
		return "NaN"
	case KindInfinity:
		if d.sign < 0 {
			return "-Inf"
		}

		return "Inf"
	default:
	}

	var b strings.Builder
	if d.sign < 0 {
		b.WriteByte('-')
	}
	intLen := len(d.mag) - d.frac
	for i, v := range d.mag {
		if i == intLen {
			b.WriteByte('.')
		}
		sym, err := digitSym(v)
		if err != nil {
			return "NaN" // corrupt magnitude; unreachable through the API
		}
		b.WriteByte(sym)
	}

	return b.String()
}

// FixedString returns d with a guaranteed count of fractional digits:
// padded with trailing zeros or rounded per the configured policy. The
// output round-trips through Parse.
func (d Decimal) FixedString(places int) string {
	if d.kind != KindNormal {
		return d.String()
	}

	return d.Round(places).SetPrecision(places).String()
}

// SciString returns d in normalized scientific notation, e.g. "1.2345e+2".
// Zero prints as "0e+0"; specials print as in String.
func (d Decimal) SciString() string {
	if d.kind != KindNormal {
		return d.String()
	}
	if d.IsZero() {
		return "0e+0"
	}

	mag, lead := stripLead(d.mag)
	mag, _ = trailTrim(mag, len(mag)) // keep significant digits only
	exp := (len(d.mag) - d.frac) - lead - 1

	var b strings.Builder
	if d.sign < 0 {
		b.WriteByte('-')
	}
	first, _ := digitSym(mag[0])
	b.WriteByte(first)
	if len(mag) > 1 {
		b.WriteByte('.')
		for _, v := range mag[1:] {
			sym, _ := digitSym(v)
			b.WriteByte(sym)
		}
	}
	b.WriteByte('e')
	if exp >= 0 {
		b.WriteByte('+')
	}
	b.WriteString(strconv.Itoa(exp))

	return b.String()
}

// Hex encodes the integer part of d in base 16, lowercase when lower is
// true. The digits are extracted through kernel division by 16, which keeps
// the encoding exact for magnitudes far beyond the native 64-bit range —
// provided the Div refinement budget is positive. Specials return their
// String form.
func (d Decimal) Hex(lower bool) (string, error) {
	if d.kind != KindNormal {
		return d.String(), nil
	}
	alphabet := "0123456789ABCDEF"
	if lower {
		alphabet = "0123456789abcdef"
	}

	cfg := d.iter()
	sixteen := Of(16).With(cfg)
	t := d.Abs().Truncate(0)
	if t.IsZero() {
		return "0", nil
	}

	var digs []byte
	for !t.IsZero() {
		q, err := t.Div(sixteen)
		if err != nil {
			return "", err
		}
		q = q.Truncate(0)
		p, err := q.Mul(sixteen)
		if err != nil {
			return "", err
		}
		r, err := t.Sub(p)
		if err != nil {
			return "", err
		}
		digs = append(digs, alphabet[To[int](r)])
		t = q
	}

	var b strings.Builder
	if d.sign < 0 {
		b.WriteByte('-')
	}
	for i := len(digs) - 1; i >= 0; i-- {
		b.WriteByte(digs[i])
	}

	return b.String(), nil
}
