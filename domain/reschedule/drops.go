package reschedule

import (
	"planboard/bizerror"
	"planboard/domain"
	"planboard/domain/availability"
	"planboard/domain/workload"
	"planboard/session"

	"github.com/fundwit/go-commons/types"
)

// DropRequest is the server-side end of a drag gesture: the UI sends the
// raw drag payload together with the cell it was dropped on.
type DropRequest struct {
	Payload string `json:"payload" binding:"required"`

	MemberID types.ID       `json:"memberId" binding:"required"`
	Date     string         `json:"date" binding:"required,datetime=2006-01-02"`
	HalfDay  domain.HalfDay `json:"halfDay" binding:"required,oneof=morning afternoon"`

	SourceSlotID types.ID `json:"sourceSlotId"`
}

type DropResult struct {
	Slots []workload.Slot `json:"slots"`
}

var HandleDropFunc = HandleDrop

// HandleDrop replays the gesture against a fresh snapshot: parse and
// validate the payload, re-check the target cell, then commit. A blocked
// cell rejects the drop before any mutation is dispatched.
func HandleDrop(req DropRequest, s *session.Session) (*DropResult, error) {
	payload, err := ParseDragPayload(req.Payload)
	if err != nil {
		return nil, err
	}

	// the snapshot spans the placement horizon so palette drops can plan
	// spill-over half-days from the same resolver
	windowStart, err := domain.ParseDateKey(req.Date)
	if err != nil {
		return nil, &bizerror.ErrBadParam{Cause: err}
	}
	windowEnd := domain.DateKeyOf(windowStart.AddDate(0, 0, PlanningHorizonDays))
	resolver, err := availability.BuildResolverFunc(req.MemberID, req.Date, windowEnd, s)
	if err != nil {
		return nil, err
	}

	gesture := NewGesture()
	if err := gesture.Start(payload, req.SourceSlotID); err != nil {
		return nil, err
	}

	target := DropTarget{MemberID: req.MemberID, Date: req.Date, HalfDay: req.HalfDay}
	if gesture.Hover(resolver, target) != StateHoverValid {
		gesture.Cancel()
		return nil, bizerror.ErrDropBlocked
	}

	slots, err := gesture.CommitDrop(resolver, target, s)
	if err != nil {
		return nil, err
	}
	return &DropResult{Slots: slots}, nil
}
