package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"portfolio-api/internal/domain"
	"portfolio-api/internal/email"
	"portfolio-api/internal/service"
)

// MessageHandler mantiene dependencias para endpoints del guestbook.
type MessageHandler struct {
	logger    *zap.Logger
	guestbook *service.GuestbookService
	limiter   service.DeleteRateLimiter
	notifier  email.Sender
}

// NewMessageHandler crea una instancia de MessageHandler con dependencias
// necesarias. limiter y notifier pueden ser nil.
func NewMessageHandler(logger *zap.Logger, guestbook *service.GuestbookService, limiter service.DeleteRateLimiter, notifier email.Sender) *MessageHandler {
	return &MessageHandler{
		logger:    logger,
		guestbook: guestbook,
		limiter:   limiter,
		notifier:  notifier,
	}
}

// CreateMessage maneja POST /api/messages.
func (h *MessageHandler) CreateMessage(c *gin.Context) {
	var req struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid create message request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result, err := h.guestbook.Create(c.Request.Context(), req.Name, req.Email, req.Message)
	if err != nil {
		if errors.Is(err, service.ErrMessageInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name, email and message are required"})
			return
		}
		h.logger.Error("save message failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save message"})
		return
	}

	h.notifyOwner(req.Name, req.Email, req.Message)

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Message saved",
		"messageId":   result.MessageID,
		"deleteToken": result.DeleteToken,
	})
}

// ListMessages maneja GET /api/messages.
func (h *MessageHandler) ListMessages(c *gin.Context) {
	messages, err := h.guestbook.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list messages failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch messages"})
		return
	}
	if messages == nil {
		messages = []domain.GuestMessage{}
	}
	c.JSON(http.StatusOK, messages)
}

// DeleteMessage maneja DELETE /api/messages/:id/:token.
func (h *MessageHandler) DeleteMessage(c *gin.Context) {
	if h.limiter != nil && !h.limiter.Allow(c.ClientIP()) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
		return
	}

	err := h.guestbook.Delete(c.Request.Context(), c.Param("id"), c.Param("token"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMessageNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		case errors.Is(err, service.ErrInvalidDeleteToken):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid delete token"})
		default:
			h.logger.Error("delete message failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete message"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message deleted successfully!"})
}

// notifyOwner avisa por email en segundo plano; una falla de envío solo
// loguea, nunca afecta la respuesta al visitante.
func (h *MessageHandler) notifyOwner(name, fromEmail, body string) {
	if h.notifier == nil {
		return
	}
	logger := h.logger
	notifier := h.notifier
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := notifier.SendGuestMessageNotice(ctx, name, fromEmail, body); err != nil {
			logger.Warn("guestbook notification failed", zap.Error(err))
		}
	}()
}
