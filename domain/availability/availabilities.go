package availability

import (
	"planboard/domain"
	"planboard/domain/holiday"
	"planboard/domain/leave"
	"planboard/domain/workload"
	"planboard/session"

	"github.com/fundwit/go-commons/types"
)

type AvailabilityQuery struct {
	MemberID types.ID       `json:"memberId" form:"memberId" binding:"required"`
	Date     string         `json:"date" form:"date" binding:"required,datetime=2006-01-02"`
	HalfDay  domain.HalfDay `json:"halfDay" form:"halfDay" binding:"required,oneof=morning afternoon"`
}

type AvailabilityReport struct {
	Available        bool             `json:"available"`
	LeaveConflict    LeaveConflict    `json:"leaveConflict"`
	CalendarConflict CalendarConflict `json:"calendarConflict"`
}

var (
	QueryAvailabilityFunc = QueryAvailability
	BuildResolverFunc     = BuildResolver
)

// BuildResolver loads the member's snapshot for [start, end] from the store.
func BuildResolver(memberID types.ID, start, end string, s *session.Session) (*Resolver, error) {
	slots, err := workload.QuerySlotsFunc(workload.SlotQuery{MemberID: memberID, Start: start, End: end}, s)
	if err != nil {
		return nil, err
	}
	leaves, err := leave.QueryLeavesFunc(leave.LeaveQuery{MemberID: memberID, Start: start, End: end}, s)
	if err != nil {
		return nil, err
	}
	holidays, err := holiday.CachedCalendarFunc(start, end, s)
	if err != nil {
		return nil, err
	}
	return NewResolver(slots, leave.BuildCalendar(leaves), holidays), nil
}

func QueryAvailability(q AvailabilityQuery, s *session.Session) (*AvailabilityReport, error) {
	resolver, err := BuildResolverFunc(q.MemberID, q.Date, q.Date, s)
	if err != nil {
		return nil, err
	}
	return &AvailabilityReport{
		Available:        resolver.IsHalfDayAvailable(q.MemberID, q.Date, q.HalfDay),
		LeaveConflict:    resolver.CheckSlotLeaveConflict(q.MemberID, q.Date, q.HalfDay),
		CalendarConflict: resolver.CheckSlotCalendarConflict(q.Date),
	}, nil
}
