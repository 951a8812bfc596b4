package solver

import "fmt"

// checkModel confirms that every axiom contains at least one literal true
// under the model. A failure is an engine bug, not an input error.
func (s *Solver) checkModel() {
	for _, ax := range s.axioms {
		satisfied := false
		for _, p := range ax.Literals() {
			if s.litValue(p).True() {
				satisfied = true
				break
			}
		}
		if !satisfied {
			panic(fmt.Sprintf("solver: model does not satisfy clause %s", ax))
		}
	}
	s.logger.Debug("Model check passed")
}
