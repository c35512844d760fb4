package main

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dreamseak/bibprojekt2/pkg/auth"
	"github.com/dreamseak/bibprojekt2/pkg/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func createAccount(c *gin.Context) {
	var request struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&request); err != nil || request.Username == "" || request.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password required"})
		return
	}

	username := strings.ToLower(request.Username)

	role := models.RoleStudent
	if username == models.SuperuserName {
		role = models.RoleAdmin
	}

	hash, err := auth.HashPassword(request.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create account"})
		return
	}

	account := models.Account{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
	}
	// The unique index on username is the uniqueness check: a losing
	// concurrent insert surfaces here as a duplicated-key error.
	if err := db.Create(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "User already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create account"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Account created",
		"role":    account.Role,
	})
}

func login(c *gin.Context) {
	var request struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&request); err != nil || request.Username == "" || request.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password required"})
		return
	}

	username := strings.ToLower(request.Username)

	var account models.Account
	err := db.Where("username = ?", username).First(&account).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to look up account"})
		return
	}
	// Unknown username and wrong password answer identically so the
	// response does not reveal which accounts exist.
	if err != nil || !auth.CheckPassword(account.PasswordHash, request.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"username": account.Username,
		"role":     account.Role,
		"message":  "Login successful",
	})
}

func getAccountMe(c *gin.Context) {
	username := strings.ToLower(c.Query("username"))
	if username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username required"})
		return
	}

	var account models.Account
	if err := db.Where("username = ?", username).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to look up account"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"username":  account.Username,
		"role":      account.Role,
		"createdAt": account.CreatedAt,
	})
}

func listAccounts(c *gin.Context) {
	var accounts []models.Account
	if err := db.Order("created_at").Find(&accounts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	items := make([]gin.H, len(accounts))
	for i, account := range accounts {
		items[i] = gin.H{
			"username":  account.Username,
			"role":      account.Role,
			"createdAt": account.CreatedAt,
		}
	}
	c.JSON(http.StatusOK, gin.H{"accounts": items})
}

func updateRole(c *gin.Context) {
	username := strings.ToLower(c.Param("username"))

	var request struct {
		Role string `json:"role"`
	}
	if err := c.ShouldBindJSON(&request); err != nil || request.Role == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and role required"})
		return
	}
	if !models.IsValidRole(request.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Role must be student, teacher, or admin"})
		return
	}

	var account models.Account
	if err := db.Where("username = ?", username).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to look up account"})
		return
	}

	account.Role = request.Role
	if err := db.Save(&account).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update role"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Role updated"})
}
