package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/linskybing/storeops-go/internal/api/middleware"
	"github.com/linskybing/storeops-go/internal/notify"
	"github.com/linskybing/storeops-go/pkg/response"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		logger.Tracef("websocket origin %q host %q", r.Header.Get("Origin"), r.Host)
		return true
	},
}

type WebSocketHandler struct {
	hub *notify.Hub
}

func NewWebSocketHandler(hub *notify.Hub) *WebSocketHandler {
	return &WebSocketHandler{hub: hub}
}

// Connect godoc
// @Summary Open the live alert stream
// @Description Authenticates with ?token=, the Authorization header or the token cookie, then joins the caller's user and role rooms.
// @Tags alerts
// @Param token query string false "JWT"
// @Success 101
// @Failure 401 {object} response.ErrorResponse
// @Router /ws [get]
func (h *WebSocketHandler) Connect(c *gin.Context) {
	tokenStr := c.Query("token")
	if tokenStr == "" {
		var err error
		if tokenStr, err = middleware.TokenFromRequest(c); err != nil {
			c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
			return
		}
	}
	claims, err := middleware.ParseToken(tokenStr)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid token: " + err.Error()})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already written the failure response.
		logger.Warningf("websocket upgrade failed for user %d: %v", claims.UserID, err)
		return
	}
	h.hub.Serve(conn, claims.UserID, claims.Role)
}
