package layout

import (
	"net/http"
	"planboard/bizerror"
	"planboard/session"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

var (
	PathTaskPills = "/v1/task-pills"
)

func RegisterTaskPillsRestAPI(r *gin.Engine, middleWares ...gin.HandlerFunc) {
	g := r.Group(PathTaskPills, middleWares...)
	g.GET("", handleQueryTaskPills)
}

func handleQueryTaskPills(c *gin.Context) {
	query := TaskPillsQuery{}
	if err := c.MustBindWith(&query, binding.Query); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}
	detail, err := QueryTaskPillsFunc(query, session.ExtractSessionFromGinContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, detail)
}
