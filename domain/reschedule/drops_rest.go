package reschedule

import (
	"net/http"
	"planboard/bizerror"
	"planboard/session"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

var (
	PathPlanningDrops = "/v1/planning/drops"
)

func RegisterDropsRestAPI(r *gin.Engine, middleWares ...gin.HandlerFunc) {
	g := r.Group(PathPlanningDrops, middleWares...)
	g.POST("", handleDrop)
}

func handleDrop(c *gin.Context) {
	req := DropRequest{}
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}
	result, err := HandleDropFunc(req, session.ExtractSessionFromGinContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, result)
}
