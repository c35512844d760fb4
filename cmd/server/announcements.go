package main

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dreamseak/bibprojekt2/pkg/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func listAnnouncements(c *gin.Context) {
	var announcements []models.Announcement
	if err := db.Order("created_at DESC").Find(&announcements).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	items := make([]gin.H, len(announcements))
	for i, a := range announcements {
		items[i] = gin.H{
			"id":        a.AnnouncementID,
			"username":  a.Username,
			"title":     a.Title,
			"content":   a.Content,
			"createdAt": a.CreatedAt,
		}
	}
	c.JSON(http.StatusOK, gin.H{"announcements": items})
}

func createAnnouncement(c *gin.Context) {
	// Both body shapes are accepted: {title, body} and the legacy
	// {id, username, title, content}.
	var request struct {
		ID       string `json:"id"`
		Username string `json:"username"`
		Title    string `json:"title"`
		Content  string `json:"content"`
		Body     string `json:"body"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	content := request.Content
	if content == "" {
		content = request.Body
	}
	if request.Title == "" && content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title or body required"})
		return
	}

	id := request.ID
	if id == "" {
		id = uuid.New().String()
	}

	announcement := models.Announcement{
		AnnouncementID: id,
		Username:       strings.ToLower(request.Username),
		Title:          request.Title,
		Content:        content,
	}
	if err := db.Create(&announcement).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "Announcement already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create announcement"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// deleteAnnouncement is idempotent: deleting an id that does not exist
// still answers success.
func deleteAnnouncement(c *gin.Context) {
	id := c.Param("id")

	if err := db.Where("announcement_id = ?", id).Delete(&models.Announcement{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete announcement"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
