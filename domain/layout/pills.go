package layout

import (
	"planboard/domain/task"
	"planboard/domain/workload"
	"sort"

	"github.com/fundwit/go-commons/types"
)

// Pill is a computed visual interval: one contiguous run of a task's slots
// for one member, resolved to grid columns and packed into a row.
// Ephemeral, recomputed per snapshot, never persisted.
type Pill struct {
	Task  task.Task       `json:"task"`
	Slots []workload.Slot `json:"slots"`

	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`

	StartCol int `json:"startCol"`
	SpanCols int `json:"spanCols"`
	Row      int `json:"row"`
}

type Result struct {
	Pills   []Pill `json:"pills"`
	MaxRows int    `json:"maxRows"`
}

// ComputePills resolves one member's task groups against the period axis
// and packs them into non-overlapping rows.
//
// Column resolution clamps a date to the window edge only when the task
// truly extends past that edge; a task wholly outside the window is
// dropped, a visibility decision rather than an error. Packing is greedy
// by (startCol asc, spanCols desc), longer bars claim rows first.
func ComputePills(groups map[types.ID]workload.TaskSlots, period []PeriodUnit) Result {
	if len(period) == 0 {
		return Result{Pills: []Pill{}}
	}

	colByKey := make(map[string]int, len(period))
	for i := range period {
		colByKey[period[i].Key] = i
	}
	firstKey := period[0].Key
	lastKey := period[len(period)-1].Key

	// iteration order of the group map must not influence the result
	taskIDs := make([]types.ID, 0, len(groups))
	for taskID := range groups {
		taskIDs = append(taskIDs, taskID)
	}
	sort.Slice(taskIDs, func(i, j int) bool { return taskIDs[i] < taskIDs[j] })

	pills := make([]Pill, 0, len(groups))
	for _, taskID := range taskIDs {
		group := groups[taskID]
		if len(group.Slots) == 0 {
			continue
		}
		slots := make([]workload.Slot, len(group.Slots))
		copy(slots, group.Slots)
		sort.Slice(slots, func(i, j int) bool { return slots[i].Date < slots[j].Date })
		startDate := slots[0].Date
		endDate := slots[len(slots)-1].Date

		startCol, ok := colByKey[startDate]
		if !ok {
			if startDate < firstKey {
				startCol = 0
			} else {
				// starts after the window: not visible
				continue
			}
		}
		endCol, ok := colByKey[endDate]
		if !ok {
			if endDate > lastKey {
				endCol = len(period) - 1
			} else {
				continue
			}
		}
		if startCol > endCol {
			continue
		}

		pills = append(pills, Pill{
			Task:      group.Task,
			Slots:     slots,
			StartDate: startDate,
			EndDate:   endDate,
			StartCol:  startCol,
			SpanCols:  endCol - startCol + 1,
		})
	}

	sort.Slice(pills, func(i, j int) bool {
		a, b := pills[i], pills[j]
		if a.StartCol != b.StartCol {
			return a.StartCol < b.StartCol
		}
		if a.SpanCols != b.SpanCols {
			return a.SpanCols > b.SpanCols
		}
		return a.Task.ID < b.Task.ID
	})

	// a row freed in later columns stays reusable, so track the exact
	// occupied rows per column rather than a high-water mark
	occupied := make([]map[int]bool, len(period))
	maxRows := 0
	for i := range pills {
		p := &pills[i]
		row := 0
		for {
			free := true
			for col := p.StartCol; col < p.StartCol+p.SpanCols; col++ {
				if occupied[col][row] {
					free = false
					break
				}
			}
			if free {
				break
			}
			row++
		}
		p.Row = row
		for col := p.StartCol; col < p.StartCol+p.SpanCols; col++ {
			if occupied[col] == nil {
				occupied[col] = map[int]bool{}
			}
			occupied[col][row] = true
		}
		if row+1 > maxRows {
			maxRows = row + 1
		}
	}

	return Result{Pills: pills, MaxRows: maxRows}
}

type Metrics struct {
	BaseHeight   int `json:"baseHeight"`
	HeaderHeight int `json:"headerHeight"`
	PillHeight   int `json:"pillHeight"`
	Gap          int `json:"gap"`
	Padding      int `json:"padding"`
}

// DefaultMetrics matches the regular grid sizing; compact mode supplies its
// own Metrics.
var DefaultMetrics = Metrics{BaseHeight: 64, HeaderHeight: 24, PillHeight: 20, Gap: 4, Padding: 8}

func MemberRowHeight(maxRows int, m Metrics) int {
	height := m.HeaderHeight + maxRows*(m.PillHeight+m.Gap) + m.Padding
	if height < m.BaseHeight {
		return m.BaseHeight
	}
	return height
}
