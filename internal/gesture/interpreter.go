package gesture

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/tierboard/internal/domain"
	"github.com/alexanderramin/tierboard/internal/tierstore"
)

// Interpreter dispatches resolved gestures to tier store transformations
// and commits the result. It never returns an error: anything it cannot
// apply is reported as a no-op Outcome and leaves the store untouched.
type Interpreter struct {
	store    *tierstore.Store
	observer DispatchObserver
	now      func() time.Time
}

// NewInterpreter creates an Interpreter over store. The first non-nil
// observer receives dispatch telemetry.
func NewInterpreter(store *tierstore.Store, observers ...DispatchObserver) *Interpreter {
	in := &Interpreter{store: store, observer: NoopObserver{}, now: time.Now}
	for _, obs := range observers {
		if obs != nil {
			in.observer = obs
			break
		}
	}
	return in
}

// Store returns the store the interpreter commits to.
func (in *Interpreter) Store() *tierstore.Store {
	return in.store
}

// Dispatch resolves ev against the current collection.
//
// Tier gestures swap the item payloads of the source and destination tier
// positions; the tier sequence itself is never reordered. Item gestures
// reorder within a tier or transfer between tiers depending on whether the
// source and destination containers match.
func (in *Interpreter) Dispatch(ctx context.Context, ev Event) Outcome {
	start := in.now()
	outcome := in.dispatch(ev)
	in.observer.ObserveDispatch(ctx, DispatchEvent{
		Op:        "drop",
		Gesture:   ev.String(),
		Outcome:   outcome,
		Duration:  in.now().Sub(start),
		StartedAt: start,
	})
	return outcome
}

func (in *Interpreter) dispatch(ev Event) Outcome {
	if ev.Destination == nil {
		return OutcomeCancelled
	}
	src, dst := ev.Source, *ev.Destination

	outcome := OutcomeRejected
	in.store.Apply(func(c domain.Collection) (domain.Collection, bool) {
		if ev.Kind == KindTier {
			next, ok := tierstore.SwapTierContents(c, src.Index, dst.Index)
			if ok {
				outcome = OutcomeApplied
			}
			return next, ok
		}

		if c.IndexOf(src.ContainerID) < 0 || c.IndexOf(dst.ContainerID) < 0 {
			outcome = OutcomeUnresolved
			return c, false
		}

		var (
			next domain.Collection
			ok   bool
		)
		if src.ContainerID == dst.ContainerID {
			next, ok = tierstore.ReorderWithinTier(c, src.ContainerID, src.Index, dst.Index)
		} else {
			next, ok = tierstore.MoveAcrossTiers(c, src.ContainerID, src.Index, dst.ContainerID, dst.Index)
		}
		if ok {
			outcome = OutcomeApplied
		}
		return next, ok
	})
	return outcome
}

// Rename is the label-editing hook: it sets the name of the tier at
// tierIndex. An out-of-range index is rejected without change.
func (in *Interpreter) Rename(ctx context.Context, tierIndex int, text string) Outcome {
	start := in.now()
	outcome := OutcomeRejected
	if in.store.Apply(func(c domain.Collection) (domain.Collection, bool) {
		return tierstore.RenameTier(c, tierIndex, text)
	}) {
		outcome = OutcomeApplied
	}
	in.observer.ObserveDispatch(ctx, DispatchEvent{
		Op:        "rename",
		Gesture:   fmt.Sprintf("tier[%d] -> %q", tierIndex, text),
		Outcome:   outcome,
		Duration:  in.now().Sub(start),
		StartedAt: start,
	})
	return outcome
}
