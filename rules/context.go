package rules

import (
	"fmt"

	"github.com/mirelin/fitchproof/logic"
	"github.com/mirelin/fitchproof/scope"
	"github.com/mirelin/fitchproof/subst"
)

// Context is the read-only view a rule function needs: a way to resolve
// line numbers to their numbered lines, what the citing line can see,
// and the allowed-variable configuration.
type Context struct {
	Lines       map[int]logic.NumberedLine
	Visible     scope.Visibility
	AllowedVars subst.NameSet
}

// formulaAt resolves lineNum to a formula, checking that it is visible
// to the citing line citingLine and that it actually carries a formula.
func (c Context) formulaAt(citingLine, lineNum int) (logic.Formula, error) {
	if !c.Visible.HasLine(lineNum) {
		return nil, fmt.Errorf("on line %d: line %d is %w", citingLine, lineNum, ErrNotInScope)
	}
	line, ok := c.Lines[lineNum]
	if !ok || line.Sentence == nil {
		return nil, fmt.Errorf("on line %d: %w (line %d)", citingLine, ErrNoFormula, lineNum)
	}
	return line.Sentence, nil
}

// subproofAt resolves a subproof range, checking visibility, that its
// premise line exists, and that its last line carries a formula. The
// premise may be a constant-only line with no formula; callers read its
// Sentence and BoxedConstant from the returned premise line.
func (c Context) subproofAt(citingLine int, rng logic.SubproofRange) (premise, last logic.NumberedLine, err error) {
	if !c.Visible.HasSubproof(rng) {
		return logic.NumberedLine{}, logic.NumberedLine{}, fmt.Errorf("on line %d: subproof %d-%d is %w", citingLine, rng.Begin, rng.End, ErrNotInScope)
	}
	premise, ok := c.Lines[rng.Begin]
	if !ok {
		return logic.NumberedLine{}, logic.NumberedLine{}, fmt.Errorf("on line %d: %w (subproof premise %d)", citingLine, ErrNoFormula, rng.Begin)
	}
	last, ok = c.Lines[rng.End]
	if !ok || last.Sentence == nil {
		return logic.NumberedLine{}, logic.NumberedLine{}, fmt.Errorf("on line %d: %w (subproof line %d)", citingLine, ErrNoFormula, rng.End)
	}
	return premise, last, nil
}

func violation(line int, format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("on line %d: %s: %w", line, msg, ErrRuleViolation)
}
