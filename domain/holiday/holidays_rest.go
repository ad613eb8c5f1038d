package holiday

import (
	"net/http"
	"planboard/bizerror"
	"planboard/session"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

var (
	PathHolidays = "/v1/holidays"
)

func RegisterHolidaysRestAPI(r *gin.Engine, middleWares ...gin.HandlerFunc) {
	g := r.Group(PathHolidays, middleWares...)
	g.POST("", handleCreateHoliday)
	g.GET("", handleQueryHolidays)
}

func handleCreateHoliday(c *gin.Context) {
	creation := HolidayCreation{}
	if err := c.ShouldBindBodyWith(&creation, binding.JSON); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}
	record, err := CreateHolidayFunc(creation, session.ExtractSessionFromGinContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusCreated, record)
}

func handleQueryHolidays(c *gin.Context) {
	query := HolidayQuery{}
	if err := c.MustBindWith(&query, binding.Query); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}
	records, err := QueryHolidaysFunc(query, session.ExtractSessionFromGinContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, records)
}
