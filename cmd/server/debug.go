package main

import (
	"net/http"
	"time"

	"github.com/dreamseak/bibprojekt2/pkg/config"
	"github.com/dreamseak/bibprojekt2/pkg/models"
	"github.com/gin-gonic/gin"
)

var startedAt = time.Now()

func getVersion(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"version": config.Version,
		"builtAt": startedAt.Format(time.RFC3339),
	})
}

func debugStatus(c *gin.Context) {
	sqlDB, err := db.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "DOWN",
			"error":  err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"storage": config.GetEnv("DB_DRIVER", "sqlite"),
	})
}

func debugUsers(c *gin.Context) {
	var accounts []models.Account
	if err := db.Find(&accounts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	users := make([]gin.H, len(accounts))
	for i, account := range accounts {
		users[i] = gin.H{
			"username":  account.Username,
			"role":      account.Role,
			"createdAt": account.CreatedAt,
		}
	}
	c.JSON(http.StatusOK, gin.H{"users": users, "usersCount": len(users)})
}

// debugReset clears every collection. Dev/test convenience only.
func debugReset(c *gin.Context) {
	for _, model := range []interface{}{&models.Account{}, &models.Announcement{}, &models.Loan{}} {
		if err := db.Where("1 = 1").Delete(model).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"message": "All data cleared. Create a fresh DreamSeak account."})
}

func healthCheck(c *gin.Context) {
	sqlDB, err := db.DB()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "DOWN",
			"details": "Database connection failed",
			"error":   err.Error(),
		})
		return
	}
	if err := sqlDB.Ping(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "DOWN",
			"details": "Database ping failed",
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "UP",
	})
}
