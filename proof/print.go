package proof

import "fmt"

// Step is one line of a linearized proof: a clause, its 1-based position in
// derivation order, and the positions of the two clauses it was resolved
// from. Leaves carry no parent positions.
type Step struct {
	ID     int
	Clause Clause
	Left   int
	Right  int
}

// Steps linearizes the proof DAG rooted at c for display: parents always
// precede the steps that use them and shared ancestors appear exactly once.
func Steps(c Clause) []Step {
	ids := map[Clause]int{}
	steps := []Step{}

	var walk func(Clause) int
	walk = func(c Clause) int {
		if id, ok := ids[c]; ok {
			return id
		}
		s := Step{Clause: c}
		if r, ok := c.(*Resolved); ok {
			s.Left = walk(r.left)
			s.Right = walk(r.right)
		}
		s.ID = len(steps) + 1
		ids[c] = s.ID
		steps = append(steps, s)
		return s.ID
	}
	walk(c)

	return steps
}

// String implements the Stringer interface.
func (s Step) String() string {
	switch s.Clause.(type) {
	case *Resolved:
		return fmt.Sprintf("%d: %s (resolve %d %d)", s.ID, s.Clause, s.Left, s.Right)
	case *Assumption:
		return fmt.Sprintf("%d: %s (assumption)", s.ID, s.Clause)
	default:
		return fmt.Sprintf("%d: %s (axiom)", s.ID, s.Clause)
	}
}
