package reschedule

import (
	"planboard/bizerror"
	"planboard/domain"
	"planboard/domain/availability"
	"planboard/domain/workload"
	"planboard/session"

	"github.com/fundwit/go-commons/types"
)

type GestureState string

const (
	StateIdle         GestureState = "Idle"
	StateDragging     GestureState = "Dragging"
	StateHoverValid   GestureState = "HoverValid"
	StateHoverBlocked GestureState = "HoverBlocked"
	StateCommitting   GestureState = "Committing"
)

type DropTarget struct {
	MemberID types.ID       `json:"memberId"`
	Date     string         `json:"date"`
	HalfDay  domain.HalfDay `json:"halfDay"`
}

// Gesture is one drag gesture. It never mutates the workload model itself:
// all writes go through the workload mutation functions on commit, and a
// failed commit leaves the model exactly as it was.
type Gesture struct {
	state        GestureState
	payload      *DragPayload
	sourceSlotID types.ID
}

func NewGesture() *Gesture {
	return &Gesture{state: StateIdle}
}

func (g *Gesture) State() GestureState {
	return g.state
}

func (g *Gesture) Start(payload *DragPayload, sourceSlotID types.ID) error {
	if g.state != StateIdle {
		return bizerror.ErrInvalidGesture
	}
	if payload == nil {
		return bizerror.ErrInvalidGesture
	}
	if payload.Kind == PayloadExistingSlot && sourceSlotID == 0 {
		return bizerror.ErrInvalidGesture
	}
	g.payload = payload
	g.sourceSlotID = sourceSlotID
	g.state = StateDragging
	return nil
}

// Hover evaluates a cell as drop target. Weekends, holidays and leave days
// always block new placement; for an existing-slot drag the cell occupied
// by the dragged slot itself stays a valid target (no-op move).
func (g *Gesture) Hover(r *availability.Resolver, target DropTarget) GestureState {
	if g.state != StateDragging && g.state != StateHoverValid && g.state != StateHoverBlocked {
		return g.state
	}

	if r.IsHalfDayAvailable(target.MemberID, target.Date, target.HalfDay) {
		g.state = StateHoverValid
		return g.state
	}

	if g.payload.Kind == PayloadExistingSlot {
		occupying := r.OccupiedBy(target.MemberID, target.Date, target.HalfDay)
		if occupying != nil && occupying.ID == g.sourceSlotID &&
			r.CheckSlotLeaveConflict(target.MemberID, target.Date, target.HalfDay) == (availability.LeaveConflict{}) {
			g.state = StateHoverValid
			return g.state
		}
	}

	g.state = StateHoverBlocked
	return g.state
}

// Cancel discards the gesture with zero side effects, legal in any state
// except a commit already in flight.
func (g *Gesture) Cancel() {
	if g.state == StateCommitting {
		return
	}
	g.state = StateIdle
	g.payload = nil
	g.sourceSlotID = 0
}

// CommitDrop dispatches the mutation for a valid hover target. It either
// fully succeeds or fully fails: a conflict from the store (someone else
// committed first) surfaces as an error and no partial slot is left
// behind. The gesture returns to Idle either way.
func (g *Gesture) CommitDrop(r *availability.Resolver, target DropTarget, s *session.Session) ([]workload.Slot, error) {
	if g.state == StateCommitting {
		return nil, bizerror.ErrInvalidGesture
	}
	if g.state != StateHoverValid {
		return nil, bizerror.ErrDropBlocked
	}
	g.state = StateCommitting
	payload := g.payload
	sourceSlotID := g.sourceSlotID
	defer func() {
		g.state = StateIdle
		g.payload = nil
		g.sourceSlotID = 0
	}()

	switch payload.Kind {
	case PayloadExistingSlot:
		moved, err := workload.MoveSlotFunc(sourceSlotID,
			workload.SlotMove{Date: target.Date, HalfDay: target.HalfDay, MemberID: target.MemberID}, s)
		if err != nil {
			return nil, err
		}
		return []workload.Slot{*moved}, nil

	case PayloadPaletteField:
		placements, err := PlanPlacements(r, target.MemberID, target.Date, target.HalfDay, payload.Config.Duration)
		if err != nil {
			return nil, err
		}
		return workload.CreateSlotsFunc(workload.SlotBatchCreation{
			TaskID:     payload.Config.TaskID,
			MemberID:   target.MemberID,
			Placements: placements,
		}, s)

	default:
		return nil, bizerror.ErrInvalidGesture
	}
}
