package leave_test

import (
	"planboard/domain/leave"
	"testing"

	"github.com/fundwit/go-commons/types"
	. "github.com/onsi/gomega"
)

func TestBuildCalendar(t *testing.T) {
	RegisterTestingT(t)

	t.Run("should expand an active leave to every covered day, bounds inclusive", func(t *testing.T) {
		calendar := leave.BuildCalendar([]leave.UserLeave{
			{ID: 10, MemberID: 1, StartDate: "2024-03-10", EndDate: "2024-03-12",
				Status: leave.StatusActive, LeaveType: leave.TypeVacation},
		})

		for _, day := range []string{"2024-03-10", "2024-03-11", "2024-03-12"} {
			found := calendar.Find(1, day)
			Expect(found).ToNot(BeNil(), "day %s", day)
			Expect(found.ID).To(Equal(types.ID(10)))
		}
		Expect(calendar.Find(1, "2024-03-09")).To(BeNil())
		Expect(calendar.Find(1, "2024-03-13")).To(BeNil())
		Expect(calendar.Find(2, "2024-03-11")).To(BeNil())
	})

	t.Run("single-day leave covers exactly its day", func(t *testing.T) {
		calendar := leave.BuildCalendar([]leave.UserLeave{
			{ID: 10, MemberID: 1, StartDate: "2024-03-10", EndDate: "2024-03-10", Status: leave.StatusActive},
		})
		Expect(calendar.Find(1, "2024-03-10")).ToNot(BeNil())
		Expect(calendar.Find(1, "2024-03-11")).To(BeNil())
	})

	t.Run("cancelled leaves are not expanded", func(t *testing.T) {
		calendar := leave.BuildCalendar([]leave.UserLeave{
			{ID: 10, MemberID: 1, StartDate: "2024-03-10", EndDate: "2024-03-12", Status: leave.StatusCancelled},
		})
		Expect(calendar.Find(1, "2024-03-11")).To(BeNil())
	})

	t.Run("leaves with malformed dates are skipped, not fatal", func(t *testing.T) {
		calendar := leave.BuildCalendar([]leave.UserLeave{
			{ID: 10, MemberID: 1, StartDate: "03/10/2024", EndDate: "2024-03-12", Status: leave.StatusActive},
			{ID: 11, MemberID: 1, StartDate: "2024-03-20", EndDate: "never", Status: leave.StatusActive},
			{ID: 12, MemberID: 1, StartDate: "2024-03-25", EndDate: "2024-03-25", Status: leave.StatusActive},
		})
		Expect(calendar.Find(1, "2024-03-10")).To(BeNil())
		Expect(calendar.Find(1, "2024-03-20")).To(BeNil())
		Expect(calendar.Find(1, "2024-03-25")).ToNot(BeNil())
	})

	t.Run("overlapping leaves of different members stay separate", func(t *testing.T) {
		calendar := leave.BuildCalendar([]leave.UserLeave{
			{ID: 10, MemberID: 1, StartDate: "2024-03-10", EndDate: "2024-03-11", Status: leave.StatusActive, LeaveType: leave.TypeSick},
			{ID: 11, MemberID: 2, StartDate: "2024-03-11", EndDate: "2024-03-12", Status: leave.StatusActive, LeaveType: leave.TypePersonal},
		})
		Expect(calendar.Find(1, "2024-03-11").LeaveType).To(Equal(leave.TypeSick))
		Expect(calendar.Find(2, "2024-03-11").LeaveType).To(Equal(leave.TypePersonal))
	})
}
