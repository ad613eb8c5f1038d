package availability_test

import (
	"planboard/domain"
	"planboard/domain/availability"
	"planboard/domain/holiday"
	"planboard/domain/leave"
	"planboard/domain/workload"
	"testing"

	"github.com/fundwit/go-commons/types"
	. "github.com/onsi/gomega"
)

func buildResolver() *availability.Resolver {
	slots := []workload.Slot{
		{ID: 1, TaskID: 100, MemberID: 1, Date: "2024-03-05", HalfDay: domain.HalfDayMorning},
		{ID: 2, TaskID: 100, MemberID: 1, Date: "2024-03-11", HalfDay: domain.HalfDayMorning},
	}
	leaves := leave.BuildCalendar([]leave.UserLeave{
		{ID: 10, MemberID: 1, StartDate: "2024-03-10", EndDate: "2024-03-12", Status: leave.StatusActive, LeaveType: leave.TypeVacation},
		{ID: 11, MemberID: 2, StartDate: "2024-03-05", EndDate: "2024-03-05", Status: leave.StatusCancelled, LeaveType: leave.TypeSick},
	})
	holidays := holiday.BuildCalendar([]holiday.Holiday{
		{ID: 20, Date: "2024-03-08", Name: "Founders Day"},
	})
	return availability.NewResolver(slots, leaves, holidays)
}

func TestIsHalfDayAvailable(t *testing.T) {
	RegisterTestingT(t)
	r := buildResolver()

	t.Run("free weekday without slot, leave or holiday is available", func(t *testing.T) {
		Expect(r.IsHalfDayAvailable(1, "2024-03-04", domain.HalfDayMorning)).To(BeTrue())
		Expect(r.IsHalfDayAvailable(1, "2024-03-05", domain.HalfDayAfternoon)).To(BeTrue())
	})

	t.Run("occupied tuple is not available", func(t *testing.T) {
		Expect(r.IsHalfDayAvailable(1, "2024-03-05", domain.HalfDayMorning)).To(BeFalse())
		// same tuple is free for another member
		Expect(r.IsHalfDayAvailable(2, "2024-03-05", domain.HalfDayMorning)).To(BeTrue())
	})

	t.Run("weekend blocks even with no existing slot", func(t *testing.T) {
		// 2024-03-09 is a Saturday
		Expect(r.IsHalfDayAvailable(1, "2024-03-09", domain.HalfDayMorning)).To(BeFalse())
		Expect(r.IsHalfDayAvailable(2, "2024-03-09", domain.HalfDayAfternoon)).To(BeFalse())
	})

	t.Run("holiday blocks all members", func(t *testing.T) {
		Expect(r.IsHalfDayAvailable(1, "2024-03-08", domain.HalfDayMorning)).To(BeFalse())
		Expect(r.IsHalfDayAvailable(2, "2024-03-08", domain.HalfDayMorning)).To(BeFalse())
	})

	t.Run("active leave blocks only the absent member", func(t *testing.T) {
		Expect(r.IsHalfDayAvailable(1, "2024-03-12", domain.HalfDayMorning)).To(BeFalse())
		Expect(r.IsHalfDayAvailable(2, "2024-03-12", domain.HalfDayMorning)).To(BeTrue())
	})

	t.Run("cancelled leave does not block", func(t *testing.T) {
		Expect(r.IsHalfDayAvailable(2, "2024-03-05", domain.HalfDayAfternoon)).To(BeTrue())
	})

	t.Run("invalid inputs are never available", func(t *testing.T) {
		Expect(r.IsHalfDayAvailable(1, "not-a-date", domain.HalfDayMorning)).To(BeFalse())
		Expect(r.IsHalfDayAvailable(1, "2024-03-04", domain.HalfDay("noon"))).To(BeFalse())
	})
}

func TestCheckSlotLeaveConflict(t *testing.T) {
	RegisterTestingT(t)
	r := buildResolver()

	t.Run("existing slot inside an approved leave is reported", func(t *testing.T) {
		conflict := r.CheckSlotLeaveConflict(1, "2024-03-11", domain.HalfDayMorning)
		Expect(conflict.HasConflict).To(BeTrue())
		Expect(conflict.LeaveType).To(Equal(leave.TypeVacation))
	})

	t.Run("no conflict outside the leave", func(t *testing.T) {
		conflict := r.CheckSlotLeaveConflict(1, "2024-03-05", domain.HalfDayMorning)
		Expect(conflict).To(Equal(availability.LeaveConflict{}))
	})

	t.Run("cancelled leave never conflicts", func(t *testing.T) {
		conflict := r.CheckSlotLeaveConflict(2, "2024-03-05", domain.HalfDayMorning)
		Expect(conflict.HasConflict).To(BeFalse())
	})
}

func TestCheckSlotCalendarConflict(t *testing.T) {
	RegisterTestingT(t)
	r := buildResolver()

	t.Run("holiday slot is warned with the holiday name", func(t *testing.T) {
		conflict := r.CheckSlotCalendarConflict("2024-03-08")
		Expect(conflict.HasConflict).To(BeTrue())
		Expect(conflict.Reason).To(Equal(availability.CalendarConflictHoliday))
		Expect(conflict.HolidayName).To(Equal("Founders Day"))
	})

	t.Run("weekend slot is warned", func(t *testing.T) {
		conflict := r.CheckSlotCalendarConflict("2024-03-09")
		Expect(conflict.HasConflict).To(BeTrue())
		Expect(conflict.Reason).To(Equal(availability.CalendarConflictWeekend))
	})

	t.Run("plain weekday is clean", func(t *testing.T) {
		Expect(r.CheckSlotCalendarConflict("2024-03-06")).To(Equal(availability.CalendarConflict{}))
	})
}

func TestOccupiedBy(t *testing.T) {
	RegisterTestingT(t)
	r := buildResolver()

	t.Run("should find the occupying slot", func(t *testing.T) {
		occupying := r.OccupiedBy(1, "2024-03-05", domain.HalfDayMorning)
		Expect(occupying).ToNot(BeNil())
		Expect(occupying.ID).To(Equal(types.ID(1)))

		Expect(r.OccupiedBy(1, "2024-03-05", domain.HalfDayAfternoon)).To(BeNil())
	})
}
