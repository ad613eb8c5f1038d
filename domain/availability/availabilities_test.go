package availability_test

import (
	"errors"
	"planboard/domain"
	"planboard/domain/availability"
	"planboard/domain/holiday"
	"planboard/domain/leave"
	"planboard/domain/workload"
	"planboard/session"
	"testing"

	"github.com/fundwit/go-commons/types"
	. "github.com/onsi/gomega"
)

func TestBuildResolver(t *testing.T) {
	RegisterTestingT(t)

	querySlotsFunc := workload.QuerySlotsFunc
	queryLeavesFunc := leave.QueryLeavesFunc
	cachedCalendarFunc := holiday.CachedCalendarFunc
	defer func() {
		workload.QuerySlotsFunc = querySlotsFunc
		leave.QueryLeavesFunc = queryLeavesFunc
		holiday.CachedCalendarFunc = cachedCalendarFunc
	}()

	t.Run("should load the member snapshot for the window", func(t *testing.T) {
		var slotQuery workload.SlotQuery
		workload.QuerySlotsFunc = func(q workload.SlotQuery, s *session.Session) ([]workload.Slot, error) {
			slotQuery = q
			return []workload.Slot{
				{ID: 1, TaskID: 100, MemberID: 1, Date: "2024-03-05", HalfDay: domain.HalfDayMorning},
			}, nil
		}
		leave.QueryLeavesFunc = func(q leave.LeaveQuery, s *session.Session) ([]leave.UserLeave, error) {
			return []leave.UserLeave{
				{ID: 10, MemberID: 1, StartDate: "2024-03-06", EndDate: "2024-03-06",
					Status: leave.StatusActive, LeaveType: leave.TypeSick},
			}, nil
		}
		holiday.CachedCalendarFunc = func(start, end string, s *session.Session) (holiday.Calendar, error) {
			return holiday.BuildCalendar([]holiday.Holiday{{ID: 20, Date: "2024-03-07", Name: "Founders Day"}}), nil
		}

		r, err := availability.BuildResolver(1, "2024-03-04", "2024-03-08", nil)
		Expect(err).To(BeNil())
		Expect(slotQuery).To(Equal(workload.SlotQuery{MemberID: 1, Start: "2024-03-04", End: "2024-03-08"}))

		Expect(r.IsHalfDayAvailable(1, "2024-03-04", domain.HalfDayMorning)).To(BeTrue())
		Expect(r.IsHalfDayAvailable(1, "2024-03-05", domain.HalfDayMorning)).To(BeFalse())
		Expect(r.IsHalfDayAvailable(1, "2024-03-06", domain.HalfDayMorning)).To(BeFalse())
		Expect(r.IsHalfDayAvailable(1, "2024-03-07", domain.HalfDayMorning)).To(BeFalse())
	})

	t.Run("store failures propagate", func(t *testing.T) {
		expected := errors.New("connection refused")
		workload.QuerySlotsFunc = func(q workload.SlotQuery, s *session.Session) ([]workload.Slot, error) {
			return nil, expected
		}

		r, err := availability.BuildResolver(1, "2024-03-04", "2024-03-08", nil)
		Expect(r).To(BeNil())
		Expect(err).To(Equal(expected))
	})
}

func TestQueryAvailability(t *testing.T) {
	RegisterTestingT(t)

	buildResolverFunc := availability.BuildResolverFunc
	defer func() { availability.BuildResolverFunc = buildResolverFunc }()

	t.Run("should report availability with conflicts", func(t *testing.T) {
		availability.BuildResolverFunc = func(memberID types.ID, start, end string, s *session.Session) (*availability.Resolver, error) {
			leaves := leave.BuildCalendar([]leave.UserLeave{
				{ID: 10, MemberID: 1, StartDate: "2024-03-11", EndDate: "2024-03-11",
					Status: leave.StatusActive, LeaveType: leave.TypeVacation},
			})
			slots := []workload.Slot{
				{ID: 1, TaskID: 100, MemberID: 1, Date: "2024-03-11", HalfDay: domain.HalfDayMorning},
			}
			return availability.NewResolver(slots, leaves, nil), nil
		}

		report, err := availability.QueryAvailability(availability.AvailabilityQuery{
			MemberID: 1, Date: "2024-03-11", HalfDay: domain.HalfDayMorning}, nil)
		Expect(err).To(BeNil())
		Expect(report.Available).To(BeFalse())
		Expect(report.LeaveConflict).To(Equal(availability.LeaveConflict{HasConflict: true, LeaveType: leave.TypeVacation}))
		Expect(report.CalendarConflict).To(Equal(availability.CalendarConflict{}))
	})
}
