package workload

import (
	"errors"
	"planboard/bizerror"
	"planboard/domain"
	"planboard/event"
	"planboard/idgen"
	"planboard/persistence"
	"planboard/session"

	"github.com/fundwit/go-commons/types"
	"github.com/jinzhu/gorm"
	"github.com/sony/sonyflake"
)

// Slot is one half-day commitment of one member to one task. The unique
// index is the double-booking guard: at most one slot per
// (member, date, half-day) tuple, enforced by the store so concurrent
// writers race safely.
type Slot struct {
	ID types.ID `json:"id" gorm:"primary_key"`

	TaskID   types.ID       `json:"taskId" binding:"required"`
	MemberID types.ID       `json:"memberId" binding:"required" gorm:"unique_index:uni_member_date_half"`
	Date     string         `json:"date" binding:"required" gorm:"unique_index:uni_member_date_half" sql:"type:VARCHAR(10) NOT NULL"`
	HalfDay  domain.HalfDay `json:"halfDay" binding:"required" gorm:"unique_index:uni_member_date_half" sql:"type:VARCHAR(16) NOT NULL"`

	CreatorID  types.ID        `json:"creatorId"`
	CreateTime types.Timestamp `json:"createTime" sql:"type:DATETIME(6) NOT NULL"`
}

func (s *Slot) TableName() string {
	return "workload_slots"
}

type SlotCreation struct {
	TaskID   types.ID       `json:"taskId" binding:"required"`
	MemberID types.ID       `json:"memberId" binding:"required"`
	Date     string         `json:"date" binding:"required,datetime=2006-01-02"`
	HalfDay  domain.HalfDay `json:"halfDay" binding:"required,oneof=morning afternoon"`
}

type SlotPlacement struct {
	Date    string         `json:"date" binding:"required,datetime=2006-01-02"`
	HalfDay domain.HalfDay `json:"halfDay" binding:"required,oneof=morning afternoon"`
}

type SlotBatchCreation struct {
	TaskID     types.ID        `json:"taskId" binding:"required"`
	MemberID   types.ID        `json:"memberId" binding:"required"`
	Placements []SlotPlacement `json:"placements" binding:"required,min=1,dive"`
}

type SlotMove struct {
	Date    string         `json:"date" binding:"required,datetime=2006-01-02"`
	HalfDay domain.HalfDay `json:"halfDay" binding:"required,oneof=morning afternoon"`

	// MemberID reassigns the slot to another member; zero keeps the
	// current one.
	MemberID types.ID `json:"memberId"`
}

type SlotQuery struct {
	MemberID types.ID `json:"memberId" form:"memberId"`
	Start    string   `json:"start" form:"start" binding:"omitempty,datetime=2006-01-02"`
	End      string   `json:"end" form:"end" binding:"omitempty,datetime=2006-01-02"`
}

var (
	slotIdWorker = sonyflake.NewSonyflake(sonyflake.Settings{})

	CreateSlotFunc  = CreateSlot
	CreateSlotsFunc = CreateSlots
	DeleteSlotFunc  = DeleteSlot
	MoveSlotFunc    = MoveSlot
	QuerySlotsFunc  = QuerySlots
)

func CreateSlot(c SlotCreation, s *session.Session) (*Slot, error) {
	r := Slot{ID: idgen.NextID(slotIdWorker), TaskID: c.TaskID, MemberID: c.MemberID,
		Date: c.Date, HalfDay: c.HalfDay,
		CreatorID: s.Identity.ID, CreateTime: types.CurrentTimestamp()}

	var ev *event.EventRecord
	err := persistence.ActiveDataSourceManager.GormDB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&r).Error; err != nil {
			if bizerror.IsDuplicateKey(err) {
				return bizerror.ErrSlotConflict
			}
			return err
		}
		var err error
		ev, err = event.CreateEvent(event.SourceTypeSlot, r.ID, r.Date+" "+string(r.HalfDay),
			event.EventCategoryCreated, nil, &s.Identity, tx)
		return err
	})
	if err != nil {
		return nil, err
	}

	event.InvokeHandlersFunc(ev)
	return &r, nil
}

// CreateSlots persists every placement of the batch in a single transaction:
// one occupied tuple fails the whole batch and no slot is left behind.
func CreateSlots(c SlotBatchCreation, s *session.Session) ([]Slot, error) {
	records := make([]Slot, 0, len(c.Placements))
	now := types.CurrentTimestamp()
	for _, p := range c.Placements {
		records = append(records, Slot{ID: idgen.NextID(slotIdWorker), TaskID: c.TaskID,
			MemberID: c.MemberID, Date: p.Date, HalfDay: p.HalfDay,
			CreatorID: s.Identity.ID, CreateTime: now})
	}

	events := make([]*event.EventRecord, 0, len(records))
	err := persistence.ActiveDataSourceManager.GormDB().Transaction(func(tx *gorm.DB) error {
		for i := range records {
			if err := tx.Create(&records[i]).Error; err != nil {
				if bizerror.IsDuplicateKey(err) {
					return bizerror.ErrSlotConflict
				}
				return err
			}
			ev, err := event.CreateEvent(event.SourceTypeSlot, records[i].ID,
				records[i].Date+" "+string(records[i].HalfDay),
				event.EventCategoryCreated, nil, &s.Identity, tx)
			if err != nil {
				return err
			}
			events = append(events, ev)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, ev := range events {
		event.InvokeHandlersFunc(ev)
	}
	return records, nil
}

func DeleteSlot(id types.ID, s *session.Session) error {
	var ev *event.EventRecord
	err := persistence.ActiveDataSourceManager.GormDB().Transaction(func(tx *gorm.DB) error {
		var r Slot
		if err := tx.Where(&Slot{ID: id}).First(&r).Error; err != nil {
			return err
		}
		if err := tx.Delete(Slot{}, "id = ?", id).Error; err != nil {
			return err
		}
		var err error
		ev, err = event.CreateEvent(event.SourceTypeSlot, r.ID, r.Date+" "+string(r.HalfDay),
			event.EventCategoryDeleted, nil, &s.Identity, tx)
		return err
	})
	if err != nil {
		return err
	}

	event.InvokeHandlersFunc(ev)
	return nil
}

// MoveSlot changes the slot's schedule and, when requested, its member.
// An occupied target rolls the transaction back and the record keeps its
// original tuple.
func MoveSlot(id types.ID, m SlotMove, s *session.Session) (*Slot, error) {
	var moved Slot
	var ev *event.EventRecord
	err := persistence.ActiveDataSourceManager.GormDB().Transaction(func(tx *gorm.DB) error {
		var r Slot
		if err := tx.Where(&Slot{ID: id}).First(&r).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return bizerror.ErrNotFound
			}
			return err
		}
		targetMember := m.MemberID
		if targetMember == 0 {
			targetMember = r.MemberID
		}
		if r.Date == m.Date && r.HalfDay == m.HalfDay && r.MemberID == targetMember {
			moved = r
			return nil
		}

		if err := tx.Model(&Slot{ID: r.ID}).
			Updates(map[string]interface{}{"date": m.Date, "half_day": m.HalfDay, "member_id": targetMember}).Error; err != nil {
			if bizerror.IsDuplicateKey(err) {
				return bizerror.ErrSlotConflict
			}
			return err
		}

		props := []event.UpdatedProperty{
			{PropertyName: "date", OldValue: r.Date, NewValue: m.Date},
			{PropertyName: "halfDay", OldValue: string(r.HalfDay), NewValue: string(m.HalfDay)},
		}
		if targetMember != r.MemberID {
			props = append(props, event.UpdatedProperty{PropertyName: "memberId",
				OldValue: r.MemberID.String(), NewValue: targetMember.String()})
		}
		var err error
		ev, err = event.CreateEvent(event.SourceTypeSlot, r.ID, m.Date+" "+string(m.HalfDay),
			event.EventCategoryScheduleChanged, props, &s.Identity, tx)
		if err != nil {
			return err
		}

		moved = r
		moved.Date = m.Date
		moved.HalfDay = m.HalfDay
		moved.MemberID = targetMember
		return nil
	})
	if err != nil {
		return nil, err
	}

	event.InvokeHandlersFunc(ev)
	return &moved, nil
}

func QuerySlots(q SlotQuery, s *session.Session) ([]Slot, error) {
	slots := []Slot{}
	db := persistence.ActiveDataSourceManager.GormDB()
	query := db.Order("date ASC")
	if q.MemberID > 0 {
		query = query.Where("member_id = ?", q.MemberID)
	}
	if q.Start != "" {
		query = query.Where("date >= ?", q.Start)
	}
	if q.End != "" {
		query = query.Where("date <= ?", q.End)
	}
	if err := query.Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}
