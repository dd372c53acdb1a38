package chatControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/RAravinthRaj/medicine-finder/models"
)

// ExchangeLog persists completed user/assistant exchanges.
type ExchangeLog interface {
	Save(userID, message, response string) error
}

// GormExchangeLog writes exchanges to the chat_messages table.
type GormExchangeLog struct {
	DB *gorm.DB
}

func (l GormExchangeLog) Save(userID, message, response string) error {
	return l.DB.Create(&models.ChatMessage{
		UserID:   userID,
		Message:  message,
		Response: response,
	}).Error
}

type chatRequest struct {
	Message string    `json:"message" binding:"required"`
	History []Message `json:"history"`
}

// POST /chatbot
func ChatHandler(log ExchangeLog, responder *Responder) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var req chatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		response := responder.Respond(c.Request.Context(), req.Message, req.History)

		if err := log.Save(userID, req.Message, response); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save chat"})
			return
		}

		history := append(req.History,
			Message{Role: "user", Content: req.Message},
			Message{Role: "assistant", Content: response},
		)
		c.JSON(http.StatusOK, gin.H{"response": response, "history": history})
	}
}

// GET /chatbot
func ChatHistoryHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var chats []models.ChatMessage
		if err := db.Where("user_id = ?", userID).
			Order("created_at asc").
			Find(&chats).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch chats"})
			return
		}
		c.JSON(http.StatusOK, chats)
	}
}
