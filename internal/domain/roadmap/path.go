package roadmap

// PathTo returns the chain of steps from a root down to the step with the
// given ID, inclusive. It returns nil when the ID is absent.
func (r *Roadmap) PathTo(id string) []*Step {
	var path []*Step
	var walk func(steps []Step, trail []*Step) bool
	walk = func(steps []Step, trail []*Step) bool {
		for i := range steps {
			step := &steps[i]
			next := append(trail, step)
			if step.ID == id {
				path = append(path, next...)
				return true
			}
			if walk(step.Children, next) {
				return true
			}
		}
		return false
	}
	walk(r.Steps, nil)
	return path
}
