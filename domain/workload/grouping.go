package workload

import (
	"planboard/domain"
	"planboard/domain/task"
	"sort"

	"github.com/fundwit/go-commons/types"
	"github.com/sirupsen/logrus"
)

// TaskSlots is one member's slot set for one task, the grouping the layout
// engine turns into a pill.
type TaskSlots struct {
	Task  task.Task `json:"task"`
	Slots []Slot    `json:"slots"`
}

// SlotsByMember flattens the per-day half-day structure back into each
// member's slot list, morning before afternoon within a day, days in
// window order. Pure: safe to recompute per snapshot.
func SlotsByMember(workloads []TeamWorkload) map[types.ID][]Slot {
	index := map[types.ID][]Slot{}
	for i := range workloads {
		w := &workloads[i]
		slots := []Slot{}
		for d := range w.Days {
			if s := w.Days[d].Morning.Slot; s != nil {
				slots = append(slots, *s)
			}
			if s := w.Days[d].Afternoon.Slot; s != nil {
				slots = append(slots, *s)
			}
		}
		index[w.MemberID] = slots
	}
	return index
}

// GroupSlotsByTask joins a member's slots against the task collection.
// Slots whose task cannot be resolved are stale references left behind by
// task deletion or imports; they are logged and excluded, never fatal.
func GroupSlotsByTask(slots []Slot, tasks map[types.ID]task.Task) map[types.ID]TaskSlots {
	groups := map[types.ID]TaskSlots{}
	for _, s := range slots {
		t, found := tasks[s.TaskID]
		if !found {
			logrus.Warnf("slot %d references unknown task %d, excluded from layout", s.ID, s.TaskID)
			continue
		}
		group := groups[s.TaskID]
		group.Task = t
		group.Slots = append(group.Slots, s)
		groups[s.TaskID] = group
	}

	for taskID, group := range groups {
		sort.Slice(group.Slots, func(i, j int) bool {
			a, b := group.Slots[i], group.Slots[j]
			if a.Date != b.Date {
				return a.Date < b.Date
			}
			return a.HalfDay == domain.HalfDayMorning && b.HalfDay == domain.HalfDayAfternoon
		})
		groups[taskID] = group
	}
	return groups
}
