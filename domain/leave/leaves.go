package leave

import (
	"errors"
	"planboard/bizerror"
	"planboard/event"
	"planboard/idgen"
	"planboard/persistence"
	"planboard/session"

	"github.com/fundwit/go-commons/types"
	"github.com/jinzhu/gorm"
	"github.com/sony/sonyflake"
)

const (
	StatusActive    = "active"
	StatusCancelled = "cancelled"

	TypeVacation = "vacation"
	TypeSick     = "sick"
	TypePersonal = "personal"
)

type UserLeave struct {
	ID types.ID `json:"id" gorm:"primary_key"`

	MemberID  types.ID `json:"memberId" binding:"required"`
	StartDate string   `json:"startDate" binding:"required" sql:"type:VARCHAR(10) NOT NULL"`
	// EndDate is inclusive.
	EndDate   string `json:"endDate" binding:"required" sql:"type:VARCHAR(10) NOT NULL"`
	Status    string `json:"status"`
	LeaveType string `json:"leaveType"`

	CreatorID  types.ID        `json:"creatorId"`
	CreateTime types.Timestamp `json:"createTime" sql:"type:DATETIME(6) NOT NULL"`
}

func (l *UserLeave) TableName() string {
	return "user_leaves"
}

type LeaveCreation struct {
	MemberID  types.ID `json:"memberId" binding:"required"`
	StartDate string   `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate   string   `json:"endDate" binding:"required,datetime=2006-01-02"`
	LeaveType string   `json:"leaveType" binding:"omitempty,oneof=vacation sick personal"`
}

type LeaveQuery struct {
	MemberID types.ID `json:"memberId" form:"memberId"`
	Start    string   `json:"start" form:"start" binding:"omitempty,datetime=2006-01-02"`
	End      string   `json:"end" form:"end" binding:"omitempty,datetime=2006-01-02"`
}

var (
	leaveIdWorker = sonyflake.NewSonyflake(sonyflake.Settings{})

	CreateLeaveFunc = CreateLeave
	QueryLeavesFunc = QueryLeaves
	CancelLeaveFunc = CancelLeave
)

func CreateLeave(c LeaveCreation, s *session.Session) (*UserLeave, error) {
	if c.EndDate < c.StartDate {
		return nil, &bizerror.ErrBadParam{Cause: errors.New("endDate is before startDate")}
	}
	leaveType := c.LeaveType
	if leaveType == "" {
		leaveType = TypeVacation
	}

	r := UserLeave{ID: idgen.NextID(leaveIdWorker), MemberID: c.MemberID,
		StartDate: c.StartDate, EndDate: c.EndDate, Status: StatusActive, LeaveType: leaveType,
		CreatorID: s.Identity.ID, CreateTime: types.CurrentTimestamp()}

	var ev *event.EventRecord
	err := persistence.ActiveDataSourceManager.GormDB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&r).Error; err != nil {
			return err
		}
		var err error
		ev, err = event.CreateEvent(event.SourceTypeLeave, r.ID, r.LeaveType, event.EventCategoryCreated,
			nil, &s.Identity, tx)
		return err
	})
	if err != nil {
		return nil, err
	}

	event.InvokeHandlersFunc(ev)
	return &r, nil
}

// QueryLeaves returns leaves overlapping [start, end]; both bounds optional.
func QueryLeaves(q LeaveQuery, s *session.Session) ([]UserLeave, error) {
	leaves := []UserLeave{}
	db := persistence.ActiveDataSourceManager.GormDB()
	query := db.Order("start_date ASC")
	if q.MemberID > 0 {
		query = query.Where("member_id = ?", q.MemberID)
	}
	if q.Start != "" {
		query = query.Where("end_date >= ?", q.Start)
	}
	if q.End != "" {
		query = query.Where("start_date <= ?", q.End)
	}
	if err := query.Find(&leaves).Error; err != nil {
		return nil, err
	}
	return leaves, nil
}

func CancelLeave(id types.ID, s *session.Session) error {
	var ev *event.EventRecord
	err := persistence.ActiveDataSourceManager.GormDB().Transaction(func(tx *gorm.DB) error {
		var l UserLeave
		if err := tx.Where(&UserLeave{ID: id}).First(&l).Error; err != nil {
			return err
		}
		if l.Status == StatusCancelled {
			return nil
		}
		if err := tx.Model(&UserLeave{ID: id}).Update("status", StatusCancelled).Error; err != nil {
			return err
		}
		var err error
		ev, err = event.CreateEvent(event.SourceTypeLeave, l.ID, l.LeaveType, event.EventCategoryStatusUpdated,
			[]event.UpdatedProperty{{PropertyName: "status", OldValue: l.Status, NewValue: StatusCancelled}},
			&s.Identity, tx)
		return err
	})
	if err != nil {
		return err
	}

	event.InvokeHandlersFunc(ev)
	return nil
}
