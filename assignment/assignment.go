package assignment

// Assignment is an ordered collection of IntVarElement and
// SequenceVarElement entries plus an optional objective bound. Operators
// never mutate a solver-owned Assignment in place; they copy the
// relevant slice of it into a delta/deltadelta of their own and apply
// changes there (see the lsoperator package), so Assignment itself stays
// a plain value-ish container with no change tracking.
type Assignment struct {
	ints IntContainer
	seqs SequenceContainer

	hasObjective bool
	objectiveVar Var
	objectiveMin int64
	objectiveMax int64
}

// NewAssignment returns an empty Assignment ready for FastAdd calls.
func NewAssignment() *Assignment {
	return &Assignment{}
}

// IntContainer returns the integer-element container for read access or for
// building via FastAdd.
func (a *Assignment) IntContainer() *IntContainer { return &a.ints }

// SequenceContainer returns the sequence-element container.
func (a *Assignment) SequenceContainer() *SequenceContainer { return &a.seqs }

// Size returns the number of integer elements tracked (the dominant case
// throughout this module; sequence elements are sized separately via
// SequenceContainer().Size()).
func (a *Assignment) Size() int { return a.ints.Size() }

// Contains reports whether v has a tracked integer element.
func (a *Assignment) Contains(v Var) bool { return a.ints.Contains(v) }

// Element returns v's integer element and true, or false if v is untracked.
func (a *Assignment) Element(v Var) (IntVarElement, bool) { return a.ints.Element(v) }

// ElementAt returns the i'th integer element in insertion order.
func (a *Assignment) ElementAt(i int) IntVarElement { return a.ints.ElementAt(i) }

// FastAdd appends a new integer element for v without checking for an
// existing one; see IntContainer.FastAdd.
func (a *Assignment) FastAdd(v Var) *IntVarElement { return a.ints.FastAdd(v) }

// FastAddSequence appends a new sequence element for v; see
// SequenceContainer.FastAdd.
func (a *Assignment) FastAddSequence(v *SequenceVar) *SequenceVarElement {
	return a.seqs.FastAdd(v)
}

// Clear empties both containers and drops the objective bound.
func (a *Assignment) Clear() {
	a.ints.Clear()
	a.seqs.Clear()
	a.hasObjective = false
	a.objectiveVar = nil
	a.objectiveMin = 0
	a.objectiveMax = 0
}

// Copy replaces the receiver's contents with a copy of src, including its
// objective bound.
func (a *Assignment) Copy(src *Assignment) {
	a.ints.Copy(&src.ints)
	a.seqs.Copy(&src.seqs)
	a.hasObjective = src.hasObjective
	a.objectiveVar = src.objectiveVar
	a.objectiveMin = src.objectiveMin
	a.objectiveMax = src.objectiveMax
}

// SetObjective records v as the objective variable with bound [min, max].
// ObjectiveFilter reads this back via Objective/ObjectiveMin/ObjectiveMax.
func (a *Assignment) SetObjective(v Var, min, max int64) {
	a.hasObjective = true
	a.objectiveVar = v
	a.objectiveMin = min
	a.objectiveMax = max
}

// HasObjective reports whether SetObjective has been called.
func (a *Assignment) HasObjective() bool { return a.hasObjective }

// Objective returns the objective variable, or nil if none was set.
func (a *Assignment) Objective() Var { return a.objectiveVar }

// ObjectiveMin returns the recorded lower bound on the objective.
func (a *Assignment) ObjectiveMin() int64 { return a.objectiveMin }

// ObjectiveMax returns the recorded upper bound on the objective.
func (a *Assignment) ObjectiveMax() int64 { return a.objectiveMax }
