package availability

import (
	"planboard/domain"
	"planboard/domain/holiday"
	"planboard/domain/leave"
	"planboard/domain/workload"

	"github.com/fundwit/go-commons/types"
	"github.com/sirupsen/logrus"
)

// Resolver answers availability questions over one immutable snapshot of
// slots, leaves and holidays. It never mutates the snapshot; rebuild it
// when the underlying window data changes.
type Resolver struct {
	slots    map[slotKey]*workload.Slot
	leaves   leave.Calendar
	holidays holiday.Calendar
}

type slotKey struct {
	memberID types.ID
	date     string
	halfDay  domain.HalfDay
}

func NewResolver(slots []workload.Slot, leaves leave.Calendar, holidays holiday.Calendar) *Resolver {
	index := make(map[slotKey]*workload.Slot, len(slots))
	for i := range slots {
		s := &slots[i]
		index[slotKey{s.MemberID, s.Date, s.HalfDay}] = s
	}
	if leaves == nil {
		leaves = leave.Calendar{}
	}
	if holidays == nil {
		holidays = holiday.Calendar{}
	}
	return &Resolver{slots: index, leaves: leaves, holidays: holidays}
}

// OccupiedBy returns the slot holding the tuple, or nil when free.
func (r *Resolver) OccupiedBy(memberID types.ID, date string, halfDay domain.HalfDay) *workload.Slot {
	return r.slots[slotKey{memberID, date, halfDay}]
}

// IsHalfDayAvailable reports whether the tuple is free for new allocation:
// false when a slot occupies it, or the date is a weekend, a holiday, or
// inside an active leave of the member.
func (r *Resolver) IsHalfDayAvailable(memberID types.ID, date string, halfDay domain.HalfDay) bool {
	if !halfDay.IsValid() {
		return false
	}
	d, err := domain.ParseDateKey(date)
	if err != nil {
		logrus.Warnf("availability check with invalid date %q", date)
		return false
	}
	if domain.IsWeekend(d) {
		return false
	}
	if r.holidays.Find(date) != nil {
		return false
	}
	if r.leaves.Find(memberID, date) != nil {
		return false
	}
	return r.slots[slotKey{memberID, date, halfDay}] == nil
}

type LeaveConflict struct {
	HasConflict bool   `json:"hasConflict"`
	LeaveType   string `json:"leaveType,omitempty"`
}

// CheckSlotLeaveConflict reports a leave covering the tuple. Unlike the
// availability check it is meant for slots that already exist: a leave can
// be approved after a task was scheduled, and the grid warns on such slots
// instead of deleting them.
func (r *Resolver) CheckSlotLeaveConflict(memberID types.ID, date string, halfDay domain.HalfDay) LeaveConflict {
	l := r.leaves.Find(memberID, date)
	if l == nil {
		return LeaveConflict{}
	}
	return LeaveConflict{HasConflict: true, LeaveType: l.LeaveType}
}

const (
	CalendarConflictWeekend = "weekend"
	CalendarConflictHoliday = "holiday"
)

type CalendarConflict struct {
	HasConflict bool   `json:"hasConflict"`
	Reason      string `json:"reason,omitempty"`
	HolidayName string `json:"holidayName,omitempty"`
}

// CheckSlotCalendarConflict reports an existing slot sitting on a weekend
// or holiday (imported data, or a holiday declared after scheduling). This
// is a non-blocking warning: such slots are never auto-invalidated.
func (r *Resolver) CheckSlotCalendarConflict(date string) CalendarConflict {
	if h := r.holidays.Find(date); h != nil {
		return CalendarConflict{HasConflict: true, Reason: CalendarConflictHoliday, HolidayName: h.Name}
	}
	d, err := domain.ParseDateKey(date)
	if err != nil {
		return CalendarConflict{}
	}
	if domain.IsWeekend(d) {
		return CalendarConflict{HasConflict: true, Reason: CalendarConflictWeekend}
	}
	return CalendarConflict{}
}
