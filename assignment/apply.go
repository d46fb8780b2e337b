package assignment

// Apply folds delta onto base: every activated int element upserts
// base's value for that variable, every deactivated element removes it
// from base's active set (its element is kept, marked inactive, rather
// than dropped — callers that need Deactivate to mean "absent" should
// check Element(v).Activated). Sequence elements are folded the same
// way via their Forward/Backward/Activated fields. base must already
// track every variable delta touches or be empty; Apply upserts either
// way via FastAdd, so it is safe to call against a freshly Cleared
// Assignment as well as a populated reference one.
//
// This is the "apply(a, delta)" operation the path-operator and
// objective-filter contracts are specified against (see
// RevertChanges/ApplyChanges in lsoperator and pathop): a nested solve
// commits a candidate by calling Apply(reference, delta).
func Apply(base, delta *Assignment) {
	ic := delta.IntContainer()
	for i := 0; i < ic.Size(); i++ {
		e := ic.ElementAt(i)
		upsertInt(base, e)
	}
	sc := delta.SequenceContainer()
	for i := 0; i < sc.Size(); i++ {
		e := sc.ElementAt(i)
		upsertSequence(base, e)
	}
}

func upsertInt(base *Assignment, e IntVarElement) {
	if base.Contains(e.Var) {
		elems := base.IntContainer().Elements()
		for i := range elems {
			if elems[i].Var == e.Var {
				elems[i].Value = e.Value
				elems[i].Activated = e.Activated
				return
			}
		}
	}
	fe := base.FastAdd(e.Var)
	fe.Value = e.Value
	fe.Activated = e.Activated
}

func upsertSequence(base *Assignment, e SequenceVarElement) {
	sc := base.SequenceContainer()
	if sc.Contains(e.Var) {
		elems := sc.Elements()
		for i := range elems {
			if elems[i].Var == e.Var {
				elems[i].Forward = append([]int(nil), e.Forward...)
				elems[i].Backward = append([]int(nil), e.Backward...)
				elems[i].Activated = e.Activated
				return
			}
		}
	}
	fe := base.FastAddSequence(e.Var)
	fe.Forward = append([]int(nil), e.Forward...)
	fe.Backward = append([]int(nil), e.Backward...)
	fe.Activated = e.Activated
}
