// Package widget holds the per-instance recompute controller
// of the quick-order form: it turns noisy user input into at
// most one in-flight rate card fetch at a time and publishes
// state snapshots for a rendering collaborator to paint.
package widget

import (
	"github.com/nandinigupta-product/bmf-widget-demo/model"
	"github.com/shopspring/decimal"
)

// Phase tags where the controller currently is in its
// recompute cycle.
type Phase uint8

const (
	Idle Phase = iota
	Debouncing
	Fetching
	Settled
	Failed
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Debouncing:
		return "debouncing"
	case Fetching:
		return "fetching"
	case Settled:
		return "settled"
	case Failed:
		return "failed"
	}

	return "unknown"
}

// Reason classifies what caused a trigger. Free-text typing is
// debounced; changing a select is confirmed intent and fetches
// immediately.
type Reason uint8

const (
	Edit Reason = iota
	ExplicitChange
)

// State is one published controller snapshot. A Settled or
// Failed snapshot always corresponds to the most recently
// completed fetch, which may lag the current form inputs when
// the user keeps editing while a fetch is out.
//
// Renderers should treat Failed with a model.ValidationError as
// the inline "fix your input" presentation: no fetch happened
// and the call to action stays disabled.
type State struct {
	Phase       Phase
	Query       model.RateQuery
	Quote       model.Quote     // set only when Settled
	Payable     decimal.Decimal // amount times preferred rate, set only when Settled
	DeliverySLA string          // resolved estimate, fallback wording already applied
	Err         error           // set only when Failed
}
