package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"hotel-site-backend/realtime"
)

// RealtimeController upgrades /ws connections onto the change-notification
// hub. The endpoint is public: the marketing site subscribes anonymously to
// refresh its sections when an admin edits content.
type RealtimeController struct {
	hub *realtime.Hub
}

func NewRealtimeController(hub *realtime.Hub) *RealtimeController {
	return &RealtimeController{hub: hub}
}

func (rc *RealtimeController) Serve(c *gin.Context) {
	conn, err := realtime.Upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logrus.WithError(err).Warn("websocket upgrade failed")
		return
	}
	rc.hub.ServeWS(conn)
}
