package indices

import (
	"context"
	"planboard/domain/task"
	"planboard/persistence"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// the limiter keeps a full re-sync from flooding the search cluster
var fullSyncLimiter = rate.NewLimiter(rate.Every(100*time.Millisecond), 1)

func StartFullSyncRoutine(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			TasksFullSync()
		}
	}()
}

func TasksFullSync() {
	page := 1
	pageSize := 500

	db := persistence.ActiveDataSourceManager.GormDB()

	for {
		if err := fullSyncLimiter.Wait(context.Background()); err != nil {
			logrus.Errorf("full index: limiter wait failed: %v", err)
			return
		}

		tasks := []task.Task{}
		if err := db.Order("id ASC").Offset((page - 1) * pageSize).Limit(pageSize).
			Find(&tasks).Error; err != nil {
			logrus.Errorf("full index: page = %d, pageSize = %d, err = %v", page, pageSize, err)
			return
		}
		if len(tasks) == 0 {
			logrus.Infof("full index: there are no more tasks to index")
			return
		}

		if err := IndexTasks(tasks); err != nil {
			logrus.Warnf("full index: page = %d partially failed: %v", page, err)
		}
		page++
	}
}
