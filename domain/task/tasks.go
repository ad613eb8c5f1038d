package task

import (
	"planboard/idgen"
	"planboard/persistence"
	"planboard/session"

	"github.com/fundwit/go-commons/types"
	"github.com/sirupsen/logrus"
	"github.com/sony/sonyflake"
)

const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusDone       = "done"

	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

type Task struct {
	ID types.ID `json:"id" gorm:"primary_key"`

	Title       string `json:"title" binding:"required,lte=255"`
	Description string `json:"description" sql:"type:TEXT"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	DueDate     string `json:"dueDate" sql:"type:VARCHAR(10)"`

	CreatorID  types.ID        `json:"creatorId"`
	CreateTime types.Timestamp `json:"createTime" sql:"type:DATETIME(6) NOT NULL"`
}

func (t *Task) TableName() string {
	return "tasks"
}

type TaskCreation struct {
	Title       string `json:"title" binding:"required,lte=255"`
	Description string `json:"description"`
	Status      string `json:"status" binding:"omitempty,oneof=pending in_progress done"`
	Priority    string `json:"priority" binding:"omitempty,oneof=low medium high"`
	DueDate     string `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
}

type TaskQuery struct {
	TaskIDs []types.ID `json:"taskIds" form:"id"`
	Status  string     `json:"status" form:"status"`
}

var (
	taskIdWorker = sonyflake.NewSonyflake(sonyflake.Settings{})

	CreateTaskFunc = CreateTask
	QueryTasksFunc = QueryTasks

	// TaskIndexFunc is assigned by the search indices package at bootstrap,
	// kept as a seam to avoid a dependency from the task provider onto the
	// search stack.
	TaskIndexFunc func(tasks []Task) error
)

func CreateTask(c TaskCreation, s *session.Session) (*Task, error) {
	status := c.Status
	if status == "" {
		status = StatusPending
	}
	priority := c.Priority
	if priority == "" {
		priority = PriorityMedium
	}

	r := Task{ID: idgen.NextID(taskIdWorker), Title: c.Title, Description: c.Description,
		Status: status, Priority: priority, DueDate: c.DueDate,
		CreatorID: s.Identity.ID, CreateTime: types.CurrentTimestamp()}
	if err := persistence.ActiveDataSourceManager.GormDB().Create(&r).Error; err != nil {
		return nil, err
	}

	if TaskIndexFunc != nil {
		if err := TaskIndexFunc([]Task{r}); err != nil {
			logrus.Warnf("index task %d failed: %v", r.ID, err)
		}
	}
	return &r, nil
}

func QueryTasks(q TaskQuery, s *session.Session) ([]Task, error) {
	tasks := []Task{}
	db := persistence.ActiveDataSourceManager.GormDB()
	query := db.Order("id ASC")
	if len(q.TaskIDs) > 0 {
		query = query.Where("id in (?)", q.TaskIDs)
	}
	if q.Status != "" {
		query = query.Where("status = ?", q.Status)
	}
	if err := query.Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// TasksByID builds the lookup the slot grouping joins against.
func TasksByID(tasks []Task) map[types.ID]Task {
	index := make(map[types.ID]Task, len(tasks))
	for _, t := range tasks {
		index[t.ID] = t
	}
	return index
}
