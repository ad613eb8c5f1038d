package event

import (
	"planboard/session"

	"github.com/fundwit/go-commons/types"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
)

var (
	EventPersistCreateFunc = EventPersistCreate
	InvokeHandlersFunc     = InvokeHandlers

	// Handlers run asynchronously after the emitting transaction committed.
	Handlers []func(record *EventRecord)
)

func CreateEvent(sourceType string, sourceId types.ID, sourceDesc string, category EventCategory,
	updatedProperties []UpdatedProperty, identity *session.Identity, db *gorm.DB) (*EventRecord, error) {

	record := EventRecord{
		Event: Event{
			SourceType: sourceType,
			SourceId:   sourceId,
			SourceDesc: sourceDesc,

			EventCategory:     category,
			UpdatedProperties: updatedProperties,

			CreatorId:   identity.ID,
			CreatorName: identity.Name,
		},
		Timestamp: types.CurrentTimestamp(),
	}
	if err := EventPersistCreateFunc(&record, db); err != nil {
		return nil, err
	}
	return &record, nil
}

func EventPersistCreate(record *EventRecord, db *gorm.DB) error {
	return db.Create(record).Error
}

func InvokeHandlers(record *EventRecord) {
	if record == nil {
		return
	}
	go func() {
		defer func() {
			if ret := recover(); ret != nil {
				logrus.Errorf("event handler panic: %v", ret)
			}
		}()
		for _, handler := range Handlers {
			handler(record)
		}
	}()
}
