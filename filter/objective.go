package filter

import "github.com/katalvlaran/localsearch/assignment"

// Bound selects which side of the objective window a candidate must
// respect.
type Bound int

const (
	// LE accepts a candidate whose objective value is at most the
	// window's upper bound.
	LE Bound = iota
	// GE accepts a candidate whose objective value is at least the
	// window's lower bound.
	GE
	// EQ accepts a candidate whose objective value lies inside the
	// window on both sides.
	EQ
)

// elementValuer supplies the per-variable contribution logic that
// differs between the binary (one variable) and ternary (variable plus
// paired secondary variable) objective filters.
type elementValuer interface {
	synchronizedElementValue(index int) int64
	evaluateElementValue(container *assignment.IntContainer, index, containerIndex int) (value int64, nextContainerIndex int, ok bool)
}

// ObjectiveFilter accepts a candidate delta if, after folding its
// changed elements into a running Operation seeded from the last
// Synchronize, the resulting objective value satisfies Bound against the
// objective variable's current window.
type ObjectiveFilter struct {
	*varBase

	primarySize int
	cache       []int64
	deltaCache  []int64
	objective   assignment.Var
	bound       Bound
	op          Operation
	valuer      elementValuer

	oldValue      int64
	oldDeltaValue int64
	incremental   bool
}

func newObjectiveFilter(vars []assignment.Var, objective assignment.Var, bound Bound, op Operation, valuer elementValuer) *ObjectiveFilter {
	f := &ObjectiveFilter{
		varBase:     newVarBase(vars),
		primarySize: len(vars),
		cache:       make([]int64, len(vars)),
		deltaCache:  make([]int64, len(vars)),
		objective:   objective,
		bound:       bound,
		op:          op,
		valuer:      valuer,
	}
	op.Init()
	f.oldValue = op.Value()
	return f
}

// IsIncremental reports true: this filter's delta_cache/old_delta_value
// carry state across Accept calls, so the driver must keep calling it
// every iteration (even after an earlier filter in the stack has already
// rejected) to keep that cache coherent with the reference it will next
// Synchronize against.
func (f *ObjectiveFilter) IsIncremental() bool { return true }

// Synchronize recomputes every primary variable's cached contribution
// from a and reseeds the running Operation.
func (f *ObjectiveFilter) Synchronize(a *assignment.Assignment) {
	f.synchronizeValues(a)
	f.op.Init()
	for i := 0; i < f.primarySize; i++ {
		v := f.valuer.synchronizedElementValue(i)
		f.cache[i] = v
		f.deltaCache[i] = v
		f.op.Update(v)
	}
	f.oldValue = f.op.Value()
	f.oldDeltaValue = f.oldValue
	f.incremental = false
}

// Accept evaluates delta (or, when available, the smaller deltadelta)
// against the cached contributions and checks the result against Bound.
func (f *ObjectiveFilter) Accept(delta, deltadelta *assignment.Assignment) bool {
	if delta == nil {
		return false
	}
	var value int64
	if deltadelta != nil && deltadelta.Size() > 0 {
		if !f.incremental {
			// First step of a new incremental chain: replay the full
			// delta from the reference point (f.cache, f.oldValue) but
			// land the result in f.deltaCache/f.oldDeltaValue, the
			// delta-point cache, leaving f.cache untouched as the
			// stable per-reference snapshot Synchronize last wrote.
			value = f.evaluate(delta, f.oldValue, f.cache, f.deltaCache, true)
		} else {
			value = f.evaluate(deltadelta, f.oldDeltaValue, f.deltaCache, f.deltaCache, true)
		}
		f.incremental = true
	} else {
		if f.incremental {
			copy(f.deltaCache, f.cache)
			f.oldDeltaValue = f.oldValue
		}
		f.incremental = false
		value = f.evaluate(delta, f.oldValue, f.cache, f.cache, false)
	}
	f.oldDeltaValue = value

	varMin, varMax := f.objective.Min(), f.objective.Max()
	if delta.HasObjective() && delta.Objective() == f.objective {
		varMin = max(varMin, delta.ObjectiveMin())
		varMax = min(varMax, delta.ObjectiveMax())
	}
	switch f.bound {
	case LE:
		return value <= varMax
	case GE:
		return value >= varMin
	case EQ:
		return value <= varMax && value >= varMin
	default:
		return false
	}
}

// evaluate replays delta's elements against currentValue, reading each
// touched index's prior contribution from readCache and, when
// cacheDelta is set, writing its new contribution into writeCache.
// readCache and writeCache are the same slice for an in-place replay
// (e.g. chaining deltadeltas through f.deltaCache) and distinct slices
// when seeding one cache from another without disturbing it (e.g. the
// first step of a new incremental chain, seeded from f.cache into
// f.deltaCache).
func (f *ObjectiveFilter) evaluate(delta *assignment.Assignment, currentValue int64, readCache, writeCache []int64, cacheDelta bool) int64 {
	f.op.SetValue(currentValue)
	container := delta.IntContainer()
	for i := 0; i < container.Size(); i++ {
		e := container.ElementAt(i)
		idx, ok := f.indexOf(e.Var)
		if !ok || idx >= f.primarySize {
			continue
		}
		f.op.Remove(readCache[idx])
		value, next, ok := f.valuer.evaluateElementValue(container, idx, i)
		if ok {
			f.op.Update(value)
			if cacheDelta {
				writeCache[idx] = value
			}
			i = next
		}
	}
	return f.op.Value()
}
