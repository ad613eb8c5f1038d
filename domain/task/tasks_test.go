package task_test

import (
	"errors"
	"planboard/domain/task"
	"planboard/persistence"
	"planboard/testinfra"
	"testing"

	"github.com/fundwit/go-commons/types"
	. "github.com/onsi/gomega"
)

func setup(t *testing.T, testDatabase **testinfra.TestDatabase) {
	db := testinfra.StartMysqlTestDatabase("planboard")
	*testDatabase = db
	Expect(db.DS.GormDB().AutoMigrate(&task.Task{}).Error).To(BeNil())

	persistence.ActiveDataSourceManager = db.DS
}

func teardown(t *testing.T, testDatabase *testinfra.TestDatabase) {
	if testDatabase != nil {
		testinfra.StopMysqlTestDatabase(testDatabase)
	}
}

func TestCreateTask(t *testing.T) {
	RegisterTestingT(t)
	var testDatabase *testinfra.TestDatabase

	t.Run("should be able to create task with defaults", func(t *testing.T) {
		defer teardown(t, testDatabase)
		setup(t, &testDatabase)
		sec := testinfra.BuildSession(10, "user 10")

		r, err := task.CreateTask(task.TaskCreation{Title: "billing revamp"}, sec)
		Expect(err).To(BeNil())
		Expect(r.ID).ToNot(BeZero())
		Expect(r.Status).To(Equal(task.StatusPending))
		Expect(r.Priority).To(Equal(task.PriorityMedium))
		Expect(r.CreatorID).To(Equal(sec.Identity.ID))
	})

	t.Run("indexing failure does not fail the creation", func(t *testing.T) {
		defer teardown(t, testDatabase)
		setup(t, &testDatabase)
		sec := testinfra.BuildSession(10, "user 10")

		defer func() { task.TaskIndexFunc = nil }()
		indexed := 0
		task.TaskIndexFunc = func(tasks []task.Task) error {
			indexed += len(tasks)
			return errors.New("search service down")
		}

		r, err := task.CreateTask(task.TaskCreation{Title: "audit trail"}, sec)
		Expect(err).To(BeNil())
		Expect(r).ToNot(BeNil())
		Expect(indexed).To(Equal(1))
	})
}

func TestQueryTasks(t *testing.T) {
	RegisterTestingT(t)
	var testDatabase *testinfra.TestDatabase

	t.Run("should filter by ids and status", func(t *testing.T) {
		defer teardown(t, testDatabase)
		setup(t, &testDatabase)
		sec := testinfra.BuildSession(10, "user 10")

		t1, err := task.CreateTask(task.TaskCreation{Title: "billing revamp", Status: task.StatusInProgress}, sec)
		Expect(err).To(BeNil())
		_, err = task.CreateTask(task.TaskCreation{Title: "audit trail"}, sec)
		Expect(err).To(BeNil())

		tasks, err := task.QueryTasks(task.TaskQuery{Status: task.StatusInProgress}, sec)
		Expect(err).To(BeNil())
		Expect(tasks).To(HaveLen(1))
		Expect(tasks[0].ID).To(Equal(t1.ID))

		tasks, err = task.QueryTasks(task.TaskQuery{TaskIDs: []types.ID{t1.ID}}, sec)
		Expect(err).To(BeNil())
		Expect(tasks).To(HaveLen(1))
	})
}

func TestTasksByID(t *testing.T) {
	RegisterTestingT(t)

	t.Run("should index tasks by id", func(t *testing.T) {
		index := task.TasksByID([]task.Task{{ID: 1, Title: "a"}, {ID: 2, Title: "b"}})
		Expect(index).To(HaveLen(2))
		Expect(index[1].Title).To(Equal("a"))
		Expect(index[2].Title).To(Equal("b"))
	})
}
