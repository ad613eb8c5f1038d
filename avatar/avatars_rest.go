package avatar

import (
	"net/http"
	"planboard/bizerror"
	"planboard/session"

	"github.com/fundwit/go-commons/types"
	"github.com/gin-gonic/gin"
)

var (
	PathAvatars = "/v1/avatars"

	DetailAvatarFunc = DetailAvatar
	CreateAvatarFunc = CreateAvatar
)

func RegisterAvatarsRestAPI(r *gin.Engine, middleWares ...gin.HandlerFunc) {
	g := r.Group(PathAvatars, middleWares...)
	g.GET(":id", handleDetailAvatar)
	g.POST(":id", handleCreateAvatar)
}

func handleDetailAvatar(c *gin.Context) {
	id, err := types.ParseID(c.Param("id"))
	if err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}
	data, err := DetailAvatarFunc(id, session.ExtractSessionFromGinContext(c))
	if err != nil {
		panic(err)
	}
	c.Data(http.StatusOK, "image/png", data)
}

func handleCreateAvatar(c *gin.Context) {
	id, err := types.ParseID(c.Param("id"))
	if err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}
	if err := CreateAvatarFunc(id, c.Request.Body, session.ExtractSessionFromGinContext(c)); err != nil {
		panic(err)
	}
	c.Status(http.StatusOK)
}
