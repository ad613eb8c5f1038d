package workload

import (
	"net/http"
	"planboard/bizerror"
	"planboard/session"

	"github.com/fundwit/go-commons/types"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

var (
	PathTeamWorkloads = "/v1/team-workloads"
	PathPlanningSlots = "/v1/planning/slots"
	PathSlotBatches   = "/v1/planning/slot-batches"
)

func RegisterWorkloadsRestAPI(r *gin.Engine, middleWares ...gin.HandlerFunc) {
	w := r.Group(PathTeamWorkloads, middleWares...)
	w.GET("", handleQueryTeamWorkloads)

	g := r.Group(PathPlanningSlots, middleWares...)
	g.POST("", handleCreateSlot)
	g.DELETE(":id", handleDeleteSlot)
	g.PUT(":id/schedule", handleMoveSlot)

	b := r.Group(PathSlotBatches, middleWares...)
	b.POST("", handleCreateSlots)
}

func handleQueryTeamWorkloads(c *gin.Context) {
	query := WorkloadQuery{}
	if err := c.MustBindWith(&query, binding.Query); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}
	records, err := QueryTeamWorkloadsFunc(query, session.ExtractSessionFromGinContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, records)
}

func handleCreateSlot(c *gin.Context) {
	creation := SlotCreation{}
	if err := c.ShouldBindBodyWith(&creation, binding.JSON); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}
	record, err := CreateSlotFunc(creation, session.ExtractSessionFromGinContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusCreated, record)
}

func handleCreateSlots(c *gin.Context) {
	creation := SlotBatchCreation{}
	if err := c.ShouldBindBodyWith(&creation, binding.JSON); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}
	records, err := CreateSlotsFunc(creation, session.ExtractSessionFromGinContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusCreated, records)
}

func handleDeleteSlot(c *gin.Context) {
	id, err := types.ParseID(c.Param("id"))
	if err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}
	if err := DeleteSlotFunc(id, session.ExtractSessionFromGinContext(c)); err != nil {
		panic(err)
	}
	c.Status(http.StatusNoContent)
}

func handleMoveSlot(c *gin.Context) {
	id, err := types.ParseID(c.Param("id"))
	if err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}
	move := SlotMove{}
	if err := c.ShouldBindBodyWith(&move, binding.JSON); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}
	record, err := MoveSlotFunc(id, move, session.ExtractSessionFromGinContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, record)
}
