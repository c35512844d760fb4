package main

import (
	"embed"
	"io/fs"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/dreamseak/bibprojekt2/pkg/breaker"
	"github.com/dreamseak/bibprojekt2/pkg/config"
	"github.com/dreamseak/bibprojekt2/pkg/database"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

//go:embed all:static
var staticFiles embed.FS

var (
	db             *gorm.DB
	storageBreaker *breaker.Breaker
)

func main() {
	log.Println("Starting bibprojekt server...")

	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	var err error
	db, err = database.Init()
	if err != nil {
		log.Fatalf("Storage init failed: %v", err)
	}

	storageBreaker = breaker.New(5, 30*time.Second)

	server := gin.Default()
	registerRoutes(server)

	addr := config.ListenAddr()
	log.Printf("Server starting on %s", addr)
	if err := server.Run(addr); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func registerRoutes(server *gin.Engine) {
	api := server.Group("/api", storageGuard())
	api.GET("/version", getVersion)
	api.GET("/debug/status", debugStatus)
	api.GET("/debug/users", debugUsers)
	api.GET("/debug/reset", debugReset)

	api.POST("/account/create", createAccount)
	api.POST("/account/login", login)
	api.GET("/account/me", getAccountMe)
	api.GET("/accounts", listAccounts)
	api.PUT("/account/:username/role", updateRole)

	api.GET("/announcements", listAnnouncements)
	api.POST("/announcements", createAnnouncement)
	api.DELETE("/announcements/:id", deleteAnnouncement)

	api.GET("/loans", listLoans)
	api.POST("/loans", createLoan)
	api.DELETE("/loans/:id", deleteLoan)

	server.GET("/manage/health", healthCheck)

	static, err := fs.Sub(staticFiles, "static")
	if err != nil {
		log.Fatalf("Static assets missing: %v", err)
	}
	server.NoRoute(spaHandler(static))
}

// storageGuard fast-fails API requests while the storage breaker is
// open, and feeds it from the response status of everything else.
func storageGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !storageBreaker.Allow() {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "storage temporarily unavailable"})
			return
		}
		c.Next()
		if c.Writer.Status() >= http.StatusInternalServerError {
			storageBreaker.RecordFailure()
		} else {
			storageBreaker.RecordSuccess()
		}
	}
}

// spaHandler serves the embedded frontend; unknown paths fall back to
// index.html for client-side routing.
func spaHandler(static fs.FS) gin.HandlerFunc {
	fileServer := http.FileServer(http.FS(static))
	return func(c *gin.Context) {
		path := strings.TrimPrefix(c.Request.URL.Path, "/")
		if path != "" && path != "index.html" {
			if _, err := fs.Stat(static, path); err == nil {
				fileServer.ServeHTTP(c.Writer, c.Request)
				return
			}
		}
		data, err := fs.ReadFile(static, "index.html")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "frontend not available"})
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", data)
	}
}
