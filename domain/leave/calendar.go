package leave

import (
	"planboard/domain"
	"time"

	"github.com/fundwit/go-commons/types"
	"github.com/sirupsen/logrus"
)

// Calendar is the per-day expansion of a leave set: member id → date key →
// covering leave. Only active leaves are expanded, so a date hit always
// means a blocking absence.
type Calendar map[types.ID]map[string]*UserLeave

func BuildCalendar(leaves []UserLeave) Calendar {
	calendar := Calendar{}
	for i := range leaves {
		l := &leaves[i]
		if l.Status != StatusActive {
			continue
		}
		start, err := domain.ParseDateKey(l.StartDate)
		if err != nil {
			logrus.Warnf("leave %d has invalid start date %q, skipped", l.ID, l.StartDate)
			continue
		}
		end, err := domain.ParseDateKey(l.EndDate)
		if err != nil {
			logrus.Warnf("leave %d has invalid end date %q, skipped", l.ID, l.EndDate)
			continue
		}

		days := calendar[l.MemberID]
		if days == nil {
			days = map[string]*UserLeave{}
			calendar[l.MemberID] = days
		}
		domain.EachDate(start, end, func(d time.Time) {
			days[domain.DateKeyOf(d)] = l
		})
	}
	return calendar
}

// Find returns the active leave covering the given member and date, or nil.
func (c Calendar) Find(memberID types.ID, dateKey string) *UserLeave {
	days := c[memberID]
	if days == nil {
		return nil
	}
	return days[dateKey]
}
