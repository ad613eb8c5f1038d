package reschedule

import (
	"planboard/bizerror"
	"planboard/domain"
	"planboard/domain/availability"
	"planboard/domain/workload"

	"github.com/fundwit/go-commons/types"
)

// PlanningHorizonDays bounds how far past the drop cell a palette drop may
// spill while skipping blocked half-days.
const PlanningHorizonDays = 60

// PlanPlacements walks half-days forward from the drop cell and collects
// the first `duration` available ones, skipping weekends, holidays, leave
// days and occupied tuples. The placements are only planned here; the
// caller persists them atomically.
func PlanPlacements(r *availability.Resolver, memberID types.ID, date string, halfDay domain.HalfDay, duration int) ([]workload.SlotPlacement, error) {
	start, err := domain.ParseDateKey(date)
	if err != nil {
		return nil, &bizerror.ErrBadParam{Cause: err}
	}
	if !halfDay.IsValid() || duration < 1 {
		return nil, bizerror.ErrInvalidGesture
	}

	horizon := start.AddDate(0, 0, PlanningHorizonDays)
	placements := make([]workload.SlotPlacement, 0, duration)

	current := start
	currentHalf := halfDay
	for len(placements) < duration {
		if current.After(horizon) {
			return nil, bizerror.ErrNoCapacity
		}
		dateKey := domain.DateKeyOf(current)
		if r.IsHalfDayAvailable(memberID, dateKey, currentHalf) {
			placements = append(placements, workload.SlotPlacement{Date: dateKey, HalfDay: currentHalf})
		}

		next, nextDate := currentHalf.Next()
		currentHalf = next
		if nextDate {
			current = current.AddDate(0, 0, 1)
		}
	}
	return placements, nil
}
