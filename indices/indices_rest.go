package indices

import (
	"net/http"
	"planboard/bizerror"
	"planboard/session"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

var (
	PathIndexRequests = "/v1/index-requests"
	PathTaskSearch    = "/v1/task-search"
)

var TasksFullSyncFunc = TasksFullSync

func RegisterIndicesRestAPI(r *gin.Engine, middleWares ...gin.HandlerFunc) {
	g := r.Group(PathIndexRequests, middleWares...)
	g.POST("", handleIndexRequest)

	q := r.Group(PathTaskSearch, middleWares...)
	q.GET("", handleTaskSearch)
}

func handleIndexRequest(c *gin.Context) {
	go TasksFullSyncFunc()
	c.JSON(http.StatusAccepted, gin.H{"result": "scheduled"})
}

func handleTaskSearch(c *gin.Context) {
	query := TaskSearchQuery{}
	if err := c.MustBindWith(&query, binding.Query); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}
	tasks, err := SearchTasksFunc(query, session.ExtractSessionFromGinContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, tasks)
}
