package domain

type HalfDay string

const (
	HalfDayMorning   HalfDay = "morning"
	HalfDayAfternoon HalfDay = "afternoon"
)

func (h HalfDay) IsValid() bool {
	return h == HalfDayMorning || h == HalfDayAfternoon
}

// Next returns the half-day following h: the afternoon of the same date,
// or the morning of the next date (nextDate reports the rollover).
func (h HalfDay) Next() (next HalfDay, nextDate bool) {
	if h == HalfDayMorning {
		return HalfDayAfternoon, false
	}
	return HalfDayMorning, true
}
