package sat

// varState holds the per-variable bookkeeping the engine needs to assign,
// explain and undo literals: its current value, the decision level at
// which it was set, its reason clause (invalid for decisions and unit
// facts), and its saved polarity for phase-saving branching.
type varState struct {
	values   []LBool
	levels   []int
	reasons  []ClauseRef
	polarity []bool
}

func newVarState() *varState {
	return &varState{}
}

// addVariable extends the state with one more unset variable, defaulting
// its saved polarity to true (matching the teacher and original_source,
// which both branch positive first before any phase has been saved).
func (vs *varState) addVariable() Variable {
	v := Variable(len(vs.values))
	vs.values = append(vs.values, Unset)
	vs.levels = append(vs.levels, 0)
	vs.reasons = append(vs.reasons, invalidClauseRef)
	vs.polarity = append(vs.polarity, true)
	return v
}

func (vs *varState) numVariables() int {
	return len(vs.values)
}

// valueOf returns the current value of l under the variable assignment.
func (vs *varState) valueOf(l Literal) LBool {
	v := vs.values[l.Var()]
	if v == Unset {
		return Unset
	}
	if l.IsPositive() {
		return v
	}
	return v.Opposite()
}

func (vs *varState) isTrue(l Literal) bool  { return vs.valueOf(l) == True }
func (vs *varState) isFalse(l Literal) bool { return vs.valueOf(l) == False }
func (vs *varState) isUnset(l Literal) bool { return vs.valueOf(l) == Unset }

// assign sets variable v's value to match literal l's polarity at the
// given decision level, with the given reason.
func (vs *varState) assign(l Literal, level int, reason ClauseRef) {
	v := l.Var()
	vs.values[v] = liftBool(l.IsPositive())
	vs.levels[v] = level
	vs.reasons[v] = reason
}

// unassign resets v to Unset and records its prior polarity for phase
// saving.
func (vs *varState) unassign(l Literal) {
	v := l.Var()
	vs.values[v] = Unset
	vs.polarity[v] = l.IsPositive()
}
