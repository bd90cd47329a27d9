package chatHandler

import (
	"Fintar/internal/api/chat"
	chatService "Fintar/internal/api/chat/service"
	"Fintar/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"
)

type ChatHandler struct {
	log         *logrus.Logger
	validator   *validator.Validate
	middleware  middleware.Middleware
	chatService chatService.IChatService
	cfg         chat.Config
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	cs chatService.IChatService,
	cfg chat.Config,
) *ChatHandler {
	return &ChatHandler{
		log:         log,
		validator:   validate,
		middleware:  middleware,
		chatService: cs,
		cfg:         cfg,
	}
}

func (h *ChatHandler) Start(srv fiber.Router) {
	wsMiddleware := func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}

	srv.Post("/chat", h.middleware.NewRateLimiter, h.middleware.NewTokenMiddleware, h.ProcessMessage)
	srv.Get("/chat/ws", wsMiddleware, h.middleware.NewTokenMiddleware, websocket.New(h.ChatSocket))
}
