package main

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/dreamseak/bibprojekt2/pkg/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func listLoans(c *gin.Context) {
	var loans []models.Loan
	err := db.Where("end_date > ?", time.Now()).
		Order("borrowed_at DESC").
		Find(&loans).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	items := make([]gin.H, len(loans))
	for i, loan := range loans {
		items[i] = gin.H{
			"id":         loan.BookID,
			"username":   loan.Username,
			"title":      loan.Title,
			"author":     loan.Author,
			"borrowedAt": loan.BorrowedAt,
			"endDate":    loan.EndDate,
		}
	}
	c.JSON(http.StatusOK, gin.H{"loans": items})
}

func createLoan(c *gin.Context) {
	var request struct {
		ID       string `json:"id"`
		Username string `json:"username"`
		User     string `json:"user"`
		Title    string `json:"title"`
		Author   string `json:"author"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	username := request.Username
	if username == "" {
		username = request.User
	}
	if request.ID == "" || username == "" || request.Title == "" || request.Author == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields required"})
		return
	}

	now := time.Now()

	// An expired loan no longer blocks the book; clear it before the
	// insert so the unique index only guards live loans.
	err := db.Where("book_id = ? AND end_date <= ?", request.ID, now).
		Delete(&models.Loan{}).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create loan"})
		return
	}

	loan := models.Loan{
		BookID:     request.ID,
		Username:   strings.ToLower(username),
		Title:      request.Title,
		Author:     request.Author,
		BorrowedAt: now,
		EndDate:    now.Add(models.LoanPeriod),
	}
	if err := db.Create(&loan).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "Book is already on loan"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create loan"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// deleteLoan returns a book. Idempotent: an unknown id answers success.
func deleteLoan(c *gin.Context) {
	id := c.Param("id")

	if err := db.Where("book_id = ?", id).Delete(&models.Loan{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete loan"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
