package reconcile

import "github.com/shopspring/decimal"

// epsilon is the currency minor-unit tolerance: 0.01. Any magnitude strictly
// below it is treated as zero. A debt of exactly one minor unit is still a
// real debt and is emitted. Every "is this effectively zero" decision in the
// engine goes through this constant.
var epsilon = decimal.New(1, -2)

// minorUnitPlaces is the rounding precision for emitted amounts.
const minorUnitPlaces = 2

// Money is a fixed-point currency amount. Arithmetic is exact (decimal, not
// binary floating point); rounding happens only at the point of emission,
// never mid-computation.
//
// Money carries no currency code: the engine operates on one event at a time
// and every amount within an event shares the event's currency.
type Money struct {
	d decimal.Decimal
}

// FromFloat converts a stored float64 amount into a Money.
func FromFloat(v float64) Money {
	return Money{d: decimal.NewFromFloat(v)}
}

// Zero returns the zero amount.
func Zero() Money {
	return Money{}
}

// Add returns m + n.
func (m Money) Add(n Money) Money {
	return Money{d: m.d.Add(n.d)}
}

// Sub returns m - n.
func (m Money) Sub(n Money) Money {
	return Money{d: m.d.Sub(n.d)}
}

// Neg returns -m.
func (m Money) Neg() Money {
	return Money{d: m.d.Neg()}
}

// Sign reports the epsilon-aware sign of m: 0 if |m| < 0.01, otherwise
// +1 or -1.
func (m Money) Sign() int {
	if m.d.Abs().Cmp(epsilon) < 0 {
		return 0
	}
	return m.d.Sign()
}

// Equal reports whether m and n differ by less than epsilon.
func (m Money) Equal(n Money) bool {
	return m.Sub(n).Sign() == 0
}

// Round rounds m to the currency minor unit (two decimal places).
func (m Money) Round() Money {
	return Money{d: m.d.Round(minorUnitPlaces)}
}

// Float64 returns m as a float64 for serialization. Callers should Round
// first so the result is an exact two-decimal quantity.
func (m Money) Float64() float64 {
	f, _ := m.d.Float64()
	return f
}

// String implements fmt.Stringer.
func (m Money) String() string {
	return m.d.String()
}
