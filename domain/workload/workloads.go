package workload

import (
	"errors"
	"planboard/bizerror"
	"planboard/domain"
	"planboard/domain/holiday"
	"planboard/domain/leave"
	"planboard/domain/member"
	"planboard/session"
	"time"

	"github.com/fundwit/go-commons/types"
)

type HalfDayCell struct {
	Slot *Slot `json:"slot"`
}

type DayWorkload struct {
	Date      string      `json:"date"`
	Morning   HalfDayCell `json:"morning"`
	Afternoon HalfDayCell `json:"afternoon"`
}

// TeamWorkload is one member's window aggregate, rebuilt wholesale per
// window or filter change. Consumers treat it as read-only.
type TeamWorkload struct {
	MemberID   types.ID `json:"memberId"`
	MemberName string   `json:"memberName"`
	AvatarUrl  string   `json:"avatarUrl"`
	Department string   `json:"department"`

	Days []DayWorkload `json:"days"`

	TotalSlots   int `json:"totalSlots"`
	LeaveSlots   int `json:"leaveSlots"`
	HolidaySlots int `json:"holidaySlots"`
	UsedSlots    int `json:"usedSlots"`
}

type WorkloadQuery struct {
	Start      string   `json:"start" form:"start" binding:"required,datetime=2006-01-02"`
	End        string   `json:"end" form:"end" binding:"required,datetime=2006-01-02"`
	MemberID   types.ID `json:"memberId" form:"memberId"`
	Department string   `json:"department" form:"department"`
}

var QueryTeamWorkloadsFunc = QueryTeamWorkloads

// QueryTeamWorkloads assembles the planning window snapshot: member rows,
// their indexed slots, and the capacity counters derived from leave and
// holiday calendars.
func QueryTeamWorkloads(q WorkloadQuery, s *session.Session) ([]TeamWorkload, error) {
	start, err := domain.ParseDateKey(q.Start)
	if err != nil {
		return nil, &bizerror.ErrBadParam{Cause: err}
	}
	end, err := domain.ParseDateKey(q.End)
	if err != nil {
		return nil, &bizerror.ErrBadParam{Cause: err}
	}
	if end.Before(start) {
		return nil, &bizerror.ErrBadParam{Cause: errors.New("end is before start")}
	}

	memberQuery := member.MemberQuery{Department: q.Department}
	if q.MemberID > 0 {
		memberQuery.MemberIDs = []types.ID{q.MemberID}
	}
	members, err := member.QueryMembersFunc(memberQuery, s)
	if err != nil {
		return nil, err
	}

	slotQuery := SlotQuery{Start: q.Start, End: q.End}
	if q.MemberID > 0 {
		slotQuery.MemberID = q.MemberID
	}
	slots, err := QuerySlotsFunc(slotQuery, s)
	if err != nil {
		return nil, err
	}

	leaves, err := leave.QueryLeavesFunc(leave.LeaveQuery{Start: q.Start, End: q.End}, s)
	if err != nil {
		return nil, err
	}
	leaveCalendar := leave.BuildCalendar(leaves)

	holidayCalendar, err := holiday.CachedCalendarFunc(q.Start, q.End, s)
	if err != nil {
		return nil, err
	}

	type cellKey struct {
		memberID types.ID
		date     string
		halfDay  domain.HalfDay
	}
	cells := make(map[cellKey]*Slot, len(slots))
	for i := range slots {
		slot := &slots[i]
		cells[cellKey{slot.MemberID, slot.Date, slot.HalfDay}] = slot
	}

	workloads := make([]TeamWorkload, 0, len(members))
	for _, m := range members {
		w := TeamWorkload{MemberID: m.ID, MemberName: m.Name, AvatarUrl: m.AvatarUrl, Department: m.Department}

		domain.EachDate(start, end, func(d time.Time) {
			dateKey := domain.DateKeyOf(d)
			day := DayWorkload{
				Date:      dateKey,
				Morning:   HalfDayCell{Slot: cells[cellKey{m.ID, dateKey, domain.HalfDayMorning}]},
				Afternoon: HalfDayCell{Slot: cells[cellKey{m.ID, dateKey, domain.HalfDayAfternoon}]},
			}
			w.Days = append(w.Days, day)

			w.TotalSlots += 2
			if holidayCalendar.Find(dateKey) != nil {
				w.HolidaySlots += 2
			} else if leaveCalendar.Find(m.ID, dateKey) != nil {
				w.LeaveSlots += 2
			}
			if day.Morning.Slot != nil {
				w.UsedSlots++
			}
			if day.Afternoon.Slot != nil {
				w.UsedSlots++
			}
		})

		workloads = append(workloads, w)
	}
	return workloads, nil
}
