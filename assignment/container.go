package assignment

// IntContainer is an ordered, lookup-indexed sequence of IntVarElement.
// It backs both an Assignment's primary storage and the delta/deltadelta
// buffers operators build during MakeNextNeighbor.
type IntContainer struct {
	elements []IntVarElement
	index    map[Var]int
}

// Size returns the number of elements currently stored.
func (c *IntContainer) Size() int { return len(c.elements) }

// Elements exposes the backing slice for read-only iteration. Callers must
// not retain it across a FastAdd call on the same container (append may
// reallocate).
func (c *IntContainer) Elements() []IntVarElement { return c.elements }

// Contains reports whether v has an element in this container.
func (c *IntContainer) Contains(v Var) bool {
	_, ok := c.index[v]
	return ok
}

// Element returns the element for v and true, or the zero value and false.
func (c *IntContainer) Element(v Var) (IntVarElement, bool) {
	i, ok := c.index[v]
	if !ok {
		return IntVarElement{}, false
	}
	return c.elements[i], true
}

// ElementAt returns the i'th element in insertion order.
func (c *IntContainer) ElementAt(i int) IntVarElement { return c.elements[i] }

// FastAdd appends a new element for v, assuming v is not already present
// (the caller is responsible for that invariant — this mirrors the
// teacher/original's FastAdd, which skips the duplicate check other Add
// paths perform). It returns a pointer into the backing slice so the call
// site can chain SetValue/Deactivate immediately, e.g.:
//
//	delta.FastAdd(v).SetValue(7)
//
// The returned pointer is only valid until the next FastAdd call on the
// same container (which may grow and reallocate the backing slice).
func (c *IntContainer) FastAdd(v Var) *IntVarElement {
	c.elements = append(c.elements, IntVarElement{Var: v})
	idx := len(c.elements) - 1
	if c.index == nil {
		c.index = make(map[Var]int)
	}
	c.index[v] = idx
	return &c.elements[idx]
}

// Clear empties the container, keeping backing storage for reuse.
func (c *IntContainer) Clear() {
	c.elements = c.elements[:0]
	c.index = nil
}

// Copy replaces the receiver's contents with a deep-enough copy of src
// (element structs are copied by value; Var identities are shared).
func (c *IntContainer) Copy(src *IntContainer) {
	c.elements = append(c.elements[:0], src.elements...)
	if src.index == nil {
		c.index = nil
		return
	}
	c.index = make(map[Var]int, len(src.index))
	for k, v := range src.index {
		c.index[k] = v
	}
}

// SetValue sets the element's value and activates it. Returns the receiver
// for chaining after FastAdd.
func (e *IntVarElement) SetValue(v int64) *IntVarElement {
	e.Value = v
	e.Activated = true
	return e
}

// Deactivate marks the element inactive. Returns the receiver for chaining.
func (e *IntVarElement) Deactivate() *IntVarElement {
	e.Activated = false
	return e
}

// SequenceContainer is the SequenceVarElement analogue of IntContainer.
type SequenceContainer struct {
	elements []SequenceVarElement
	index    map[*SequenceVar]int
}

func (c *SequenceContainer) Size() int { return len(c.elements) }

func (c *SequenceContainer) Elements() []SequenceVarElement { return c.elements }

func (c *SequenceContainer) Contains(v *SequenceVar) bool {
	_, ok := c.index[v]
	return ok
}

func (c *SequenceContainer) Element(v *SequenceVar) (SequenceVarElement, bool) {
	i, ok := c.index[v]
	if !ok {
		return SequenceVarElement{}, false
	}
	return c.elements[i], true
}

func (c *SequenceContainer) ElementAt(i int) SequenceVarElement { return c.elements[i] }

// FastAdd appends a new element for v; see IntContainer.FastAdd for the
// aliasing caveat.
func (c *SequenceContainer) FastAdd(v *SequenceVar) *SequenceVarElement {
	c.elements = append(c.elements, SequenceVarElement{Var: v})
	idx := len(c.elements) - 1
	if c.index == nil {
		c.index = make(map[*SequenceVar]int)
	}
	c.index[v] = idx
	return &c.elements[idx]
}

func (c *SequenceContainer) Clear() {
	c.elements = c.elements[:0]
	c.index = nil
}

func (c *SequenceContainer) Copy(src *SequenceContainer) {
	c.elements = append(c.elements[:0], src.elements...)
	if src.index == nil {
		c.index = nil
		return
	}
	c.index = make(map[*SequenceVar]int, len(src.index))
	for k, v := range src.index {
		c.index[k] = v
	}
}

// SetForwardSequence sets the forward list and activates the element.
func (e *SequenceVarElement) SetForwardSequence(v []int) *SequenceVarElement {
	e.Forward = v
	e.Activated = true
	return e
}

// SetBackwardSequence sets the backward list without touching activation.
func (e *SequenceVarElement) SetBackwardSequence(v []int) *SequenceVarElement {
	e.Backward = v
	return e
}

// Deactivate marks the sequence element inactive.
func (e *SequenceVarElement) Deactivate() *SequenceVarElement {
	e.Activated = false
	return e
}
