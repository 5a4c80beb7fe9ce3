package handlers

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
)

// WSHandler lets clients watch a budget over WebSocket and hear about
// mutations (currently end-date extensions) as they happen.
type WSHandler struct {
	M *melody.Melody
}

func NewWSHandler() *WSHandler {
	m := melody.New()

	m.Config.MaxMessageSize = 1024
	m.Config.PingPeriod = 30 * time.Second
	m.Config.PongWait = 60 * time.Second

	m.HandleDisconnect(func(s *melody.Session) {
		budgetID, _ := s.Get("budget_id")
		log.Printf("🔌 Client disconnected from budget: %v", budgetID)
	})

	m.HandleError(func(s *melody.Session, err error) {
		log.Printf("❌ WebSocket error: %v", err)
	})

	return &WSHandler{M: m}
}

// HandleWS upgrades the request and pins the session to the watched budget.
func (h *WSHandler) HandleWS(c *gin.Context) {
	budgetID := c.Param("budget_id")

	err := h.M.HandleRequestWithKeys(c.Writer, c.Request, map[string]interface{}{
		"budget_id": budgetID,
	})
	if err != nil {
		log.Printf("❌ Failed to upgrade websocket: %v", err)
	}
}

// BroadcastUpdate notifies every session watching the given budget.
func (h *WSHandler) BroadcastUpdate(budgetID string, updateType string) {
	msg, err := json.Marshal(gin.H{"type": updateType, "budget_id": budgetID})
	if err != nil {
		return
	}

	err = h.M.BroadcastFilter(msg, func(s *melody.Session) bool {
		id, exists := s.Get("budget_id")
		return exists && id == budgetID
	})
	if err != nil {
		log.Printf("⚠️ Error broadcasting to budget %s: %v", budgetID, err)
	}
}
