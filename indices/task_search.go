package indices

import (
	"encoding/json"
	"planboard/domain/task"
	"planboard/es"
	"planboard/session"
)

type TaskSearchQuery struct {
	Keyword string `json:"q" form:"q" binding:"required"`
}

var SearchTasksFunc = SearchTasks

func SearchTasks(q TaskSearchQuery, s *session.Session) ([]task.Task, error) {
	query := map[string]interface{}{
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  q.Keyword,
				"fields": []string{"title", "description"},
			},
		},
	}

	sources, err := es.SearchFunc(TaskIndexName, query)
	if err != nil {
		return nil, err
	}

	tasks := make([]task.Task, 0, len(sources))
	for _, source := range sources {
		doc := TaskDocument{}
		if err := json.Unmarshal(source, &doc); err != nil {
			return nil, err
		}
		tasks = append(tasks, doc.Task)
	}
	return tasks, nil
}
