package indices

import (
	"fmt"
	"planboard/domain/task"
	"planboard/es"

	"github.com/fundwit/go-commons/types"
	"github.com/sirupsen/logrus"
)

var (
	TaskIndexName = "tasks"
)

type TaskDocument struct {
	task.Task
}

type BatchActionError map[types.ID]error

func (e BatchActionError) Error() string {
	return fmt.Sprintf("%v", map[types.ID]error(e))
}

// Bootstrap hooks task indexing into the task provider.
func Bootstrap() {
	task.TaskIndexFunc = IndexTasks
}

func IndexTasks(tasks []task.Task) error {
	errs := BatchActionError{}
	for _, t := range tasks {
		if err := es.IndexFunc(TaskIndexName, t.ID, TaskDocument{Task: t}); err != nil {
			errs[t.ID] = err
			logrus.Warnf("index task %d %q failed: %v", t.ID, t.Title, err)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
