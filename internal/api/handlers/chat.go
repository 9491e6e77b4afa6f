package handlers

import (
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/KarinaMa20040822/starwish/backend/internal/advisor"
	"github.com/KarinaMa20040822/starwish/backend/pkg/logger"
)

// ChatHandler serves tarot and fortune-slip readings over a websocket, one
// reading per inbound message.
type ChatHandler struct {
	advisor  *advisor.Advisor
	upgrader websocket.Upgrader
	logger   *logger.Logger
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(adv *advisor.Advisor, log *logger.Logger) *ChatHandler {
	return &ChatHandler{
		advisor: adv,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			// the mobile client connects from a file:// style origin
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger: log,
	}
}

// ChatRequest is one inbound reading request.
type ChatRequest struct {
	Task     string              `json:"task"` // "tarot" or "fortune"
	Question string              `json:"question"`
	Spread   string              `json:"spread,omitempty"`
	Cards    []advisor.TarotCard `json:"cards,omitempty"`
	Slip     *advisor.SlipQuery  `json:"slip,omitempty"`
}

// ChatResponse is one outbound reading or error.
type ChatResponse struct {
	Answer string `json:"answer,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Serve upgrades the connection and answers reading requests until the
// client disconnects.
// GET /ws/chat
func (h *ChatHandler) Serve(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.WithError(err).Warn("Websocket upgrade failed")
		return
	}
	defer conn.Close()

	ctx := r.Context()
	h.logger.WithField("remote", conn.RemoteAddr().String()).Debug("Chat session opened")

	for {
		var req ChatRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.WithError(err).Debug("Chat session closed unexpectedly")
			}
			return
		}

		var answer string
		switch req.Task {
		case "tarot":
			answer, err = h.advisor.TarotReading(ctx, req.Question, req.Spread, req.Cards)
		case "fortune":
			slip := advisor.SlipQuery{}
			if req.Slip != nil {
				slip = *req.Slip
			}
			if slip.Question == "" {
				slip.Question = req.Question
			}
			answer, err = h.advisor.SlipReading(ctx, slip)
		default:
			if writeErr := conn.WriteJSON(ChatResponse{Error: "Unknown task"}); writeErr != nil {
				return
			}
			continue
		}

		if err != nil {
			h.logger.WithError(err).Error("Reading generation failed")
			if writeErr := conn.WriteJSON(ChatResponse{Error: "AI 無法生成回覆"}); writeErr != nil {
				return
			}
			continue
		}

		if err := conn.WriteJSON(ChatResponse{Answer: answer}); err != nil {
			return
		}
	}
}
