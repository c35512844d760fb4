package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dreamseak/bibprojekt2/pkg/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCreateAnnouncementGeneratesID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db = setupTestDB()

	w := postJSON(createAnnouncement, "/api/announcements", `{"title":"Book fair","body":"Friday in the library"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var announcement models.Announcement
	assert.NoError(t, db.First(&announcement).Error)
	assert.NotEmpty(t, announcement.AnnouncementID)
	assert.Equal(t, "Book fair", announcement.Title)
	assert.Equal(t, "Friday in the library", announcement.Content)
}

func TestCreateAnnouncementLegacyShape(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db = setupTestDB()

	w := postJSON(createAnnouncement, "/api/announcements",
		`{"id":"ann-1","username":"DreamSeak","title":"Hours","content":"Closed Monday"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var announcement models.Announcement
	assert.NoError(t, db.Where("announcement_id = ?", "ann-1").First(&announcement).Error)
	assert.Equal(t, "dreamseak", announcement.Username)
	assert.Equal(t, "Closed Monday", announcement.Content)
}

func TestCreateAnnouncementRejectsEmpty(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db = setupTestDB()

	w := postJSON(createAnnouncement, "/api/announcements", `{"title":"","body":""}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	db.Model(&models.Announcement{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCreateAnnouncementDuplicateID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db = setupTestDB()

	w := postJSON(createAnnouncement, "/api/announcements", `{"id":"ann-1","title":"First","body":"x"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = postJSON(createAnnouncement, "/api/announcements", `{"id":"ann-1","title":"Second","body":"y"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestListAnnouncementsNewestFirst(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db = setupTestDB()

	db.Create(&models.Announcement{
		AnnouncementID: "old",
		Title:          "Old news",
		Content:        "stale",
		CreatedAt:      time.Now().Add(-time.Hour),
	})
	db.Create(&models.Announcement{
		AnnouncementID: "new",
		Title:          "Fresh news",
		Content:        "hot",
		CreatedAt:      time.Now(),
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/announcements", nil)

	listAnnouncements(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	announcements := response["announcements"].([]interface{})
	assert.Equal(t, 2, len(announcements))
	first := announcements[0].(map[string]interface{})
	assert.Equal(t, "new", first["id"])
}

func TestDeleteAnnouncementIdempotent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db = setupTestDB()

	db.Create(&models.Announcement{AnnouncementID: "ann-1", Title: "Keep me", Content: "x"})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("DELETE", "/api/announcements/no-such-id", nil)
	c.Params = gin.Params{gin.Param{Key: "id", Value: "no-such-id"}}

	deleteAnnouncement(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, true, response["success"])

	var count int64
	db.Model(&models.Announcement{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestDeleteAnnouncement(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db = setupTestDB()

	db.Create(&models.Announcement{AnnouncementID: "ann-1", Title: "Delete me", Content: "x"})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("DELETE", "/api/announcements/ann-1", nil)
	c.Params = gin.Params{gin.Param{Key: "id", Value: "ann-1"}}

	deleteAnnouncement(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var count int64
	db.Model(&models.Announcement{}).Count(&count)
	assert.Equal(t, int64(0), count)
}
