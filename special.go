// Package decimal: special-value state machine.
//
// NaN and ±Inf propagation is resolved here BEFORE any magnitude arithmetic
// runs. The rules reproduce the IEEE-754 algebra exactly:
//
//	either operand NaN            -> NaN (always, regardless of policy)
//	Inf + finite                  -> Inf, sign of the Inf operand
//	Inf + Inf, same sign          -> Inf, that sign
//	Inf + Inf, opposite sign      -> NaN
//	Inf * 0                       -> NaN
//	Inf * finite/Inf              -> Inf, xor of signs
//	Inf / Inf                     -> NaN
//	finite / Inf                  -> signed zero
//	Inf / finite                  -> Inf, xor of signs
//
// Propagation is sticky: once a value is NaN or Inf, subsequent operations
// derive their result from these rules without re-evaluating the error
// policy — errors are never re-raised from already-special operands.

package decimal

// xorSign combines operand signs for multiplicative operations.
func xorSign(a, b int8) int8 {
	if a == b {
		return 1
	}

	return -1
}

// specialAdd resolves Add/Sub for special operands. ok is false when both
// operands are finite and magnitude arithmetic should proceed.
func specialAdd(a, b Decimal, cfg Iterations) (Decimal, bool) {
	switch {
	case a.IsNaN() || b.IsNaN():
		return NaNWith(cfg), true
	case a.IsInf() && b.IsInf():
		if a.sign == b.sign {
			return Inf(int(a.sign)).stamp(cfg), true
		}

		return NaNWith(cfg), true
	case a.IsInf():
		return Inf(int(a.sign)).stamp(cfg), true
	case b.IsInf():
		return Inf(int(b.sign)).stamp(cfg), true
	}

	return Decimal{}, false
}

// specialMul resolves Mul for special operands.
func specialMul(a, b Decimal, cfg Iterations) (Decimal, bool) {
	switch {
	case a.IsNaN() || b.IsNaN():
		return NaNWith(cfg), true
	case a.IsInf() || b.IsInf():
		if a.IsZero() || b.IsZero() {
			return NaNWith(cfg), true
		}

		return Inf(int(xorSign(a.sign, b.sign))).stamp(cfg), true
	}

	return Decimal{}, false
}

// specialDiv resolves Div for special operands, including division by zero
// under the configured error policy.
func specialDiv(a, b Decimal, cfg Iterations) (Decimal, bool, error) {
	switch {
	case a.IsNaN() || b.IsNaN():
		return NaNWith(cfg), true, nil
	case a.IsInf() && b.IsInf():
		return NaNWith(cfg), true, nil
	case a.IsInf():
		return Inf(int(xorSign(a.sign, b.sign))).stamp(cfg), true, nil
	case b.IsInf():
		// Finite over infinity collapses to zero; zero is unsigned by
		// convention, so the xor sign only survives on the way in.
		return Zero().stamp(cfg), true, nil
	case b.IsZero():
		if a.IsZero() {
			return NaNWith(cfg), true, nil
		}
		if cfg.ThrowOnError {
			return NaNWith(cfg), true, ErrDivisionByZero
		}

		return Inf(int(a.sign)).stamp(cfg), true, nil
	}

	return Decimal{}, false, nil
}
