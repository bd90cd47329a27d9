package chatHandler

import (
	"Fintar/internal/api/chat"
	"Fintar/internal/entity"
	"Fintar/internal/middleware"
	"Fintar/pkg/completion"
	contextPkg "Fintar/pkg/context"
	"Fintar/pkg/log"
	"Fintar/pkg/response"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/websocket/v2"
	jsoniter "github.com/json-iterator/go"
	"golang.org/x/net/context"
)

const socketReadTimeout = 5 * time.Minute

type socketError struct {
	Error   string      `json:"error"`
	Code    int         `json:"code"`
	Details interface{} `json:"details,omitempty"`
}

// ChatSocket runs one pipeline per text frame. A frame is either
// {"message": "..."} or the bare message text.
func (h *ChatHandler) ChatSocket(conn *websocket.Conn) {
	user, ok := conn.Locals("user").(entity.UserLoginData)
	if !ok {
		_ = conn.WriteJSON(socketError{Error: "Unauthorized", Code: 401})
		return
	}
	requestID, _ := conn.Locals(middleware.RequestIDKey).(string)

	fields := log.Fields{
		"request_id": requestID,
		"user_id":    user.ID,
	}
	h.log.WithFields(fields).Info("Chat socket connected")
	defer h.log.WithFields(fields).Info("Chat socket disconnected")

	conn.SetPingHandler(func(data string) error {
		if err := conn.WriteControl(websocket.PongMessage, []byte(data), time.Now().Add(5*time.Second)); err != nil {
			h.log.WithFields(fields).Errorf("Error sending pong: %v", err)
		}
		return nil
	})

	for {
		if err := conn.SetReadDeadline(time.Now().Add(socketReadTimeout)); err != nil {
			h.log.WithFields(fields).Errorf("Error setting read deadline: %v", err)
			break
		}

		messageType, payload, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.WithFields(fields).Errorf("Chat socket error: %v", err)
			}
			break
		}

		if messageType != websocket.TextMessage {
			h.log.WithFields(fields).Warnf("Received unexpected message type: %d", messageType)
			continue
		}

		reply := h.handleFrame(requestID, user.ID, payload)

		if err := conn.SetWriteDeadline(time.Now().Add(10 * time.Second)); err != nil {
			h.log.WithFields(fields).Errorf("Error setting write deadline: %v", err)
			break
		}
		if err := conn.WriteJSON(reply); err != nil {
			h.log.WithFields(fields).Errorf("Error writing JSON response: %v", err)
			break
		}
	}
}

func (h *ChatHandler) handleFrame(requestID, userID string, payload []byte) interface{} {
	req := chat.ProcessMessageRequest{UserID: userID}

	var body struct {
		Message string `json:"message"`
	}
	if err := jsoniter.Unmarshal(payload, &body); err == nil {
		req.Message = body.Message
	} else {
		req.Message = strings.TrimSpace(string(payload))
	}

	if err := h.validator.Struct(req); err != nil {
		return socketError{Error: "Validation failed: " + err.Error(), Code: 400}
	}

	c, cancel := context.WithTimeout(contextPkg.WithRequestID(context.Background(), requestID), h.cfg.RequestTimeout)
	defer cancel()

	result, err := h.chatService.ProcessMessage(c, req)
	if err != nil {
		return toSocketError(err)
	}
	return result
}

func toSocketError(err error) socketError {
	var svcErr *completion.ServiceError
	if errors.As(err, &svcErr) {
		return socketError{
			Error: "Completion service error",
			Code:  502,
			Details: map[string]interface{}{
				"provider": svcErr.Provider,
				"status":   svcErr.Status,
				"message":  svcErr.Message,
			},
		}
	}

	var persistErr *chat.PersistError
	if errors.As(err, &persistErr) {
		return socketError{
			Error: persistErr.Error(),
			Code:  500,
			Details: map[string]interface{}{
				"transactions_persisted": persistErr.Persisted,
				"transactions_failed":    persistErr.Failed,
			},
		}
	}

	var respErr *response.Error
	if errors.As(err, &respErr) {
		return socketError{Error: respErr.Error(), Code: respErr.Code}
	}

	return socketError{Error: "An unexpected error occurred", Code: 500}
}
