package filter

import "github.com/katalvlaran/localsearch/assignment"

// varBase tracks a fixed list of variables and their last-synchronized
// values, the way ObjectiveFilter needs to look up "the current value of
// var i" without rescanning an Assignment.
type varBase struct {
	vars   []assignment.Var
	index  map[assignment.Var]int
	values []int64
}

func newVarBase(vars []assignment.Var) *varBase {
	b := &varBase{vars: append([]assignment.Var(nil), vars...)}
	b.reindex()
	b.values = make([]int64, len(b.vars))
	return b
}

func (b *varBase) reindex() {
	b.index = make(map[assignment.Var]int, len(b.vars))
	for i, v := range b.vars {
		b.index[v] = i
	}
}

// addVars appends more tracked variables, extending values with zeros.
func (b *varBase) addVars(vars []assignment.Var) {
	for _, v := range vars {
		b.index[v] = len(b.vars)
		b.vars = append(b.vars, v)
		b.values = append(b.values, 0)
	}
}

func (b *varBase) size() int { return len(b.vars) }

func (b *varBase) varAt(i int) assignment.Var { return b.vars[i] }

func (b *varBase) valueAt(i int) int64 { return b.values[i] }

func (b *varBase) indexOf(v assignment.Var) (int, bool) {
	i, ok := b.index[v]
	return i, ok
}

// synchronizeValues refreshes tracked values from a's current elements.
func (b *varBase) synchronizeValues(a *assignment.Assignment) {
	container := a.IntContainer()
	for i := 0; i < container.Size(); i++ {
		e := container.ElementAt(i)
		if idx, ok := b.indexOf(e.Var); ok {
			b.values[idx] = e.Value
		}
	}
}
