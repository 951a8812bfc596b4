package lit

import "fmt"

// Lit is a literal represented by an integer. The sign of the literal is
// stored in the least significant bit and the variable index in the
// remaining bits, so a literal and its negation are adjacent when sorted.
type Lit int

// New returns a new literal given a 0-indexed variable, v, and whether the
// literal is negative.
func New(v int, neg bool) Lit {
	if neg {
		return Lit(v + v + 1)
	}
	return Lit(v + v)
}

// NewFromInt returns a new literal from a DIMACS-style signed integer.
func NewFromInt(i int) Lit {
	if i < 0 {
		return New(-i-1, true)
	}
	return New(i-1, false)
}

// Not negates a literal.
func (l Lit) Not() Lit {
	return Lit(l ^ 1)
}

// Sign returns true if the literal is negative.
func (l Lit) Sign() bool {
	return l&1 == 1
}

// Pos returns true if the literal is a positive occurrence of its variable.
func (l Lit) Pos() bool {
	return l&1 == 0
}

// Index returns the literal's 0-indexed variable.
func (l Lit) Index() int {
	return int(l >> 1)
}

// Var returns the literal's 1-indexed variable.
func (l Lit) Var() int {
	return int(l>>1) + 1
}

// Int returns the literal as a DIMACS-style signed integer.
func (l Lit) Int() int {
	if l.Sign() {
		return -l.Var()
	}
	return l.Var()
}

// String implements the Stringer interface.
func (l Lit) String() string {
	if l.Sign() {
		return fmt.Sprintf("~%d", l.Var())
	}
	return fmt.Sprintf("%d", l.Var())
}
