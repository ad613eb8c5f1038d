package holiday

import (
	"planboard/idgen"
	"planboard/persistence"
	"planboard/session"
	"time"

	"github.com/fundwit/go-commons/types"
	"github.com/patrickmn/go-cache"
	"github.com/sony/sonyflake"
)

type Holiday struct {
	ID types.ID `json:"id" gorm:"primary_key"`

	Date string `json:"date" binding:"required" gorm:"unique_index:uni_holiday_date" sql:"type:VARCHAR(10) NOT NULL"`
	Name string `json:"name" binding:"required,lte=255"`

	CreateTime types.Timestamp `json:"createTime" sql:"type:DATETIME(6) NOT NULL"`
}

func (h *Holiday) TableName() string {
	return "holidays"
}

type HolidayCreation struct {
	Date string `json:"date" binding:"required,datetime=2006-01-02"`
	Name string `json:"name" binding:"required,lte=255"`
}

type HolidayQuery struct {
	Start string `json:"start" form:"start" binding:"omitempty,datetime=2006-01-02"`
	End   string `json:"end" form:"end" binding:"omitempty,datetime=2006-01-02"`
}

// Calendar is an exact-date lookup, uniform for all members.
type Calendar map[string]*Holiday

func BuildCalendar(holidays []Holiday) Calendar {
	calendar := Calendar{}
	for i := range holidays {
		calendar[holidays[i].Date] = &holidays[i]
	}
	return calendar
}

func (c Calendar) Find(dateKey string) *Holiday {
	return c[dateKey]
}

var (
	holidayIdWorker = sonyflake.NewSonyflake(sonyflake.Settings{})

	// holiday sets change rarely and are read on every workload query
	calendarCache = cache.New(10*time.Minute, time.Minute)

	CreateHolidayFunc  = CreateHoliday
	QueryHolidaysFunc  = QueryHolidays
	CachedCalendarFunc = CachedCalendar
)

func CreateHoliday(c HolidayCreation, s *session.Session) (*Holiday, error) {
	r := Holiday{ID: idgen.NextID(holidayIdWorker), Date: c.Date, Name: c.Name,
		CreateTime: types.CurrentTimestamp()}
	if err := persistence.ActiveDataSourceManager.GormDB().Create(&r).Error; err != nil {
		return nil, err
	}
	calendarCache.Flush()
	return &r, nil
}

func QueryHolidays(q HolidayQuery, s *session.Session) ([]Holiday, error) {
	holidays := []Holiday{}
	db := persistence.ActiveDataSourceManager.GormDB()
	query := db.Order("date ASC")
	if q.Start != "" {
		query = query.Where("date >= ?", q.Start)
	}
	if q.End != "" {
		query = query.Where("date <= ?", q.End)
	}
	if err := query.Find(&holidays).Error; err != nil {
		return nil, err
	}
	return holidays, nil
}

func CachedCalendar(start, end string, s *session.Session) (Calendar, error) {
	key := start + ".." + end
	if cached, found := calendarCache.Get(key); found {
		if calendar, ok := cached.(Calendar); ok {
			return calendar, nil
		}
	}

	holidays, err := QueryHolidaysFunc(HolidayQuery{Start: start, End: end}, s)
	if err != nil {
		return nil, err
	}
	calendar := BuildCalendar(holidays)
	calendarCache.Set(key, calendar, cache.DefaultExpiration)
	return calendar, nil
}
