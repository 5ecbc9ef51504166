package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jobchat/internal/model"
	"jobchat/internal/service"
)

// ConversationStore persists and reads back chat history.
type ConversationStore interface {
	AppendConversation(ctx context.Context, conv *model.Conversation) error
	RecentConversations(ctx context.Context, userID string, limit int) ([]model.Conversation, error)
}

// ChatHandler handles chat-related HTTP requests
type ChatHandler struct {
	chatService  *service.ChatService
	store        ConversationStore
	logger       *zap.Logger
	historyLimit int
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService *service.ChatService, store ConversationStore, logger *zap.Logger, historyLimit int) *ChatHandler {
	return &ChatHandler{
		chatService:  chatService,
		store:        store,
		logger:       logger,
		historyLimit: historyLimit,
	}
}

// Chat handles POST /api/v1/chat
func (h *ChatHandler) Chat(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message must not be empty"})
		return
	}

	response, parsed, err := h.chatService.Chat(c.Request.Context(), message)
	if err != nil {
		h.logger.Error("chat pipeline failed", zap.String("user_id", req.UserID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Chat failed: " + err.Error()})
		return
	}

	// Persist the exchange (non-blocking, best-effort): a storage failure
	// here is logged and never surfaced to the caller.
	go func() {
		conv := &model.Conversation{
			UserID:      req.UserID,
			UserMessage: message,
			BotMessage:  response.Message,
			Intent:      string(response.Intent),
			Metadata:    entityMetadata(parsed.Entities),
		}
		if err := h.store.AppendConversation(context.Background(), conv); err != nil {
			h.logger.Warn("failed to persist conversation", zap.String("user_id", req.UserID), zap.Error(err))
		}
	}()

	c.JSON(http.StatusOK, response)
}

// History handles GET /api/v1/conversations/:userID
func (h *ChatHandler) History(c *gin.Context) {
	userID := c.Param("userID")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing user ID"})
		return
	}

	conversations, err := h.store.RecentConversations(c.Request.Context(), userID, h.historyLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch conversations: " + err.Error()})
		return
	}
	if conversations == nil {
		conversations = []model.Conversation{}
	}

	c.JSON(http.StatusOK, gin.H{"conversations": conversations})
}

// entityMetadata flattens the extracted entities into the JSONB metadata
// column shape.
func entityMetadata(ent model.Entities) model.JSONMap {
	raw, err := json.Marshal(ent)
	if err != nil {
		return nil
	}
	var m model.JSONMap
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil
	}
	return m
}
