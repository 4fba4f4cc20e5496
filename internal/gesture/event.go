// Package gesture turns resolved drag gestures into tier store transitions.
package gesture

import "fmt"

// Kind discriminates what a gesture dragged. The values match the type
// strings drag-and-drop libraries report for their droppables.
type Kind string

const (
	KindItem Kind = "DEFAULT"
	KindTier Kind = "TIER"
)

// Location is a position inside a drop container. For item gestures the
// container is a tier id; for tier gestures only Index is meaningful.
type Location struct {
	ContainerID string `json:"droppableId"`
	Index       int    `json:"index"`
}

// Event is the terminal event of a drag interaction. A nil Destination means
// the gesture ended outside every drop target.
type Event struct {
	Source      Location  `json:"source"`
	Destination *Location `json:"destination"`
	Kind        Kind      `json:"type"`
}

func (e Event) String() string {
	dst := "none"
	if e.Destination != nil {
		dst = fmt.Sprintf("%s[%d]", e.Destination.ContainerID, e.Destination.Index)
	}
	kind := e.Kind
	if kind == "" {
		kind = KindItem
	}
	return fmt.Sprintf("%s %s[%d] -> %s", kind, e.Source.ContainerID, e.Source.Index, dst)
}

// Outcome describes how a dispatch resolved.
type Outcome string

const (
	OutcomeApplied    Outcome = "applied"
	OutcomeCancelled  Outcome = "cancelled"  // no destination
	OutcomeUnresolved Outcome = "unresolved" // container id not on the board
	OutcomeRejected   Outcome = "rejected"   // indices out of bounds
)

// Changed reports whether the outcome committed a new collection.
func (o Outcome) Changed() bool {
	return o == OutcomeApplied
}
