package layout

import (
	"planboard/domain/task"
	"planboard/domain/workload"
	"planboard/session"

	"github.com/fundwit/go-commons/types"
)

type TaskPillsQuery struct {
	MemberID types.ID `json:"memberId" form:"memberId" binding:"required"`
	Start    string   `json:"start" form:"start" binding:"required,datetime=2006-01-02"`
	End      string   `json:"end" form:"end" binding:"required,datetime=2006-01-02"`
}

type TaskPillsDetail struct {
	Period    []PeriodUnit `json:"period"`
	Pills     []Pill       `json:"pills"`
	MaxRows   int          `json:"maxRows"`
	RowHeight int          `json:"rowHeight"`
}

var QueryTaskPillsFunc = QueryTaskPills

// QueryTaskPills is the window snapshot behind one member's pill lane:
// period axis, the member's grouped slots, and the packed layout.
func QueryTaskPills(q TaskPillsQuery, s *session.Session) (*TaskPillsDetail, error) {
	period, err := BuildPeriodUnits(q.Start, q.End)
	if err != nil {
		return nil, err
	}

	slots, err := workload.QuerySlotsFunc(workload.SlotQuery{MemberID: q.MemberID, Start: q.Start, End: q.End}, s)
	if err != nil {
		return nil, err
	}

	taskIDs := make([]types.ID, 0, len(slots))
	seen := map[types.ID]bool{}
	for _, slot := range slots {
		if !seen[slot.TaskID] {
			seen[slot.TaskID] = true
			taskIDs = append(taskIDs, slot.TaskID)
		}
	}

	tasks := []task.Task{}
	if len(taskIDs) > 0 {
		tasks, err = task.QueryTasksFunc(task.TaskQuery{TaskIDs: taskIDs}, s)
		if err != nil {
			return nil, err
		}
	}

	groups := workload.GroupSlotsByTask(slots, task.TasksByID(tasks))
	result := ComputePills(groups, period)

	return &TaskPillsDetail{
		Period:    period,
		Pills:     result.Pills,
		MaxRows:   result.MaxRows,
		RowHeight: MemberRowHeight(result.MaxRows, DefaultMetrics),
	}, nil
}
