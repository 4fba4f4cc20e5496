package gesture

// Phase is the lifecycle stage of a gesture the host is synthesizing.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseDragging
)

// Tracker follows a single gesture from pick-up to drop for hosts that have
// no drag library of their own. It only describes the gesture; committing
// the resolved Event is the Interpreter's job. Hover state never reaches
// the store.
type Tracker struct {
	phase  Phase
	kind   Kind
	source Location
	over   *Location
}

// Phase returns the current lifecycle stage.
func (t *Tracker) Phase() Phase { return t.phase }

// Dragging reports whether a gesture is in progress.
func (t *Tracker) Dragging() bool { return t.phase == PhaseDragging }

// Kind returns the kind of the gesture in progress.
func (t *Tracker) Kind() Kind { return t.kind }

// Source returns where the gesture started.
func (t *Tracker) Source() Location { return t.source }

// Over returns the drop target currently hovered, if any.
func (t *Tracker) Over() (Location, bool) {
	if t.over == nil {
		return Location{}, false
	}
	return *t.over, true
}

// Begin starts a gesture. It returns false if one is already in progress.
func (t *Tracker) Begin(kind Kind, source Location) bool {
	if t.phase == PhaseDragging {
		return false
	}
	t.phase = PhaseDragging
	t.kind = kind
	t.source = source
	t.over = nil
	return true
}

// Hover sets the current drop target. Ignored when idle.
func (t *Tracker) Hover(target Location) {
	if t.phase != PhaseDragging {
		return
	}
	t.over = &target
}

// Leave clears the current drop target, as when the pointer leaves every
// droppable.
func (t *Tracker) Leave() {
	t.over = nil
}

// Drop resolves the gesture at the hovered target (nil destination if none)
// and returns the tracker to idle.
func (t *Tracker) Drop() (Event, bool) {
	if t.phase != PhaseDragging {
		return Event{}, false
	}
	ev := Event{Source: t.source, Destination: t.over, Kind: t.kind}
	t.reset()
	return ev, true
}

// Cancel resolves the gesture with no destination and returns to idle.
func (t *Tracker) Cancel() (Event, bool) {
	if t.phase != PhaseDragging {
		return Event{}, false
	}
	ev := Event{Source: t.source, Kind: t.kind}
	t.reset()
	return ev, true
}

func (t *Tracker) reset() {
	*t = Tracker{}
}
