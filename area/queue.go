package area

// queueElement is a deferred cell mutation, queued when the target cell is
// locked. The discriminator is the presence of owner, NOT a separate
// boolean flag: a nil owner marks a Remove, a non-nil owner an Insert —
// exactly as the original's QueueElement(LightObj mObj) does via
// mObj.IsNull() (spec.md §9).
type queueElement struct {
	cell  *Cell
	area  *Area
	owner any // nil => Remove, non-nil => Insert
}
