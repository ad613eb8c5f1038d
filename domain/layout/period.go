package layout

import (
	"errors"
	"planboard/bizerror"
	"planboard/domain"
	"time"
)

// PeriodUnit is one column of the planning grid, one calendar day of the
// visible window. The ordered sequence is the authoritative column axis.
type PeriodUnit struct {
	Key      string    `json:"key"`
	Date     time.Time `json:"date"`
	Label    string    `json:"label"`
	SubLabel string    `json:"subLabel"`

	IsWeekend bool `json:"isWeekend"`
	IsToday   bool `json:"isToday"`
}

func BuildPeriodUnits(start, end string) ([]PeriodUnit, error) {
	startDate, err := domain.ParseDateKey(start)
	if err != nil {
		return nil, &bizerror.ErrBadParam{Cause: err}
	}
	endDate, err := domain.ParseDateKey(end)
	if err != nil {
		return nil, &bizerror.ErrBadParam{Cause: err}
	}
	if endDate.Before(startDate) {
		return nil, &bizerror.ErrBadParam{Cause: errors.New("end is before start")}
	}

	today := domain.DateKeyOf(time.Now())
	units := []PeriodUnit{}
	domain.EachDate(startDate, endDate, func(d time.Time) {
		key := domain.DateKeyOf(d)
		units = append(units, PeriodUnit{
			Key:       key,
			Date:      d,
			Label:     d.Format("Mon"),
			SubLabel:  d.Format("Jan 02"),
			IsWeekend: domain.IsWeekend(d),
			IsToday:   key == today,
		})
	})
	return units, nil
}
