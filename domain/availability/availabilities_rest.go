package availability

import (
	"net/http"
	"planboard/bizerror"
	"planboard/session"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

var (
	PathAvailabilities = "/v1/availabilities"
)

func RegisterAvailabilitiesRestAPI(r *gin.Engine, middleWares ...gin.HandlerFunc) {
	g := r.Group(PathAvailabilities, middleWares...)
	g.GET("", handleQueryAvailability)
}

func handleQueryAvailability(c *gin.Context) {
	query := AvailabilityQuery{}
	if err := c.MustBindWith(&query, binding.Query); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}
	report, err := QueryAvailabilityFunc(query, session.ExtractSessionFromGinContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, report)
}
