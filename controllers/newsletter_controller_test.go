package controllers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvidal-dev/ArtisanCart/models"
)

func newsletterRouter() *gin.Engine {
	router := gin.New()
	router.POST("/newsletter/subscribe", Subscribe)
	router.POST("/newsletter/unsubscribe", Unsubscribe)
	return router
}

func TestSubscribeNewAddress(t *testing.T) {
	db := setupTestDB(t)
	router := newsletterRouter()

	w := performAuthed(router, jsonRequest(http.MethodPost, "/newsletter/subscribe", SubscribeRequest{Email: "Ana@Example.com", Name: "Ana"}), "")
	require.Equal(t, http.StatusCreated, w.Code)

	var sub models.NewsletterSubscriber
	require.NoError(t, db.Where("email = ?", "ana@example.com").First(&sub).Error)
	assert.True(t, sub.IsActive)
	assert.Equal(t, "Ana", sub.Name)
}

func TestSubscribeActiveDuplicate(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&models.NewsletterSubscriber{Email: "ana@example.com", IsActive: true}).Error)
	router := newsletterRouter()

	w := performAuthed(router, jsonRequest(http.MethodPost, "/newsletter/subscribe", SubscribeRequest{Email: "ana@example.com"}), "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubscribeReactivatesUnsubscribed(t *testing.T) {
	db := setupTestDB(t)
	unsubscribedAt := time.Now().Add(-24 * time.Hour)
	require.NoError(t, db.Create(&models.NewsletterSubscriber{
		Email:          "ana@example.com",
		IsActive:       false,
		UnsubscribedAt: &unsubscribedAt,
	}).Error)
	router := newsletterRouter()

	w := performAuthed(router, jsonRequest(http.MethodPost, "/newsletter/subscribe", SubscribeRequest{Email: "ana@example.com", Name: "Ana"}), "")
	require.Equal(t, http.StatusOK, w.Code)

	var sub models.NewsletterSubscriber
	require.NoError(t, db.Where("email = ?", "ana@example.com").First(&sub).Error)
	assert.True(t, sub.IsActive)
	assert.Nil(t, sub.UnsubscribedAt)
}

func TestUnsubscribe(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&models.NewsletterSubscriber{Email: "ana@example.com", IsActive: true}).Error)
	router := newsletterRouter()

	w := performAuthed(router, jsonRequest(http.MethodPost, "/newsletter/unsubscribe", SubscribeRequest{Email: "ana@example.com"}), "")
	require.Equal(t, http.StatusOK, w.Code)

	var sub models.NewsletterSubscriber
	require.NoError(t, db.Where("email = ?", "ana@example.com").First(&sub).Error)
	assert.False(t, sub.IsActive)
	require.NotNil(t, sub.UnsubscribedAt)
}

func TestUnsubscribeUnknownAddress(t *testing.T) {
	setupTestDB(t)
	router := newsletterRouter()

	w := performAuthed(router, jsonRequest(http.MethodPost, "/newsletter/unsubscribe", SubscribeRequest{Email: "ghost@example.com"}), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListSubscribersIncludesUnsubscribed(t *testing.T) {
	db := setupTestDB(t)
	unsubscribedAt := time.Now().Add(-time.Hour)
	require.NoError(t, db.Create(&models.NewsletterSubscriber{Email: "active@example.com", IsActive: true}).Error)
	require.NoError(t, db.Create(&models.NewsletterSubscriber{
		Email:          "gone@example.com",
		IsActive:       false,
		UnsubscribedAt: &unsubscribedAt,
	}).Error)

	router := gin.New()
	router.GET("/newsletter", ListSubscribers)

	w := performAuthed(router, jsonRequest(http.MethodGet, "/newsletter", nil), "")
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(2), data["count"])

	emails := make([]string, 0, 2)
	for _, raw := range data["subscribers"].([]interface{}) {
		sub := raw.(map[string]interface{})
		emails = append(emails, sub["email"].(string))
		if sub["email"] == "gone@example.com" {
			assert.Equal(t, false, sub["is_active"])
			assert.NotNil(t, sub["unsubscribed_at"])
		}
	}
	assert.Contains(t, emails, "active@example.com")
	assert.Contains(t, emails, "gone@example.com")
}

func TestSubscribeRejectsInvalidEmail(t *testing.T) {
	setupTestDB(t)
	router := newsletterRouter()

	w := performAuthed(router, jsonRequest(http.MethodPost, "/newsletter/subscribe", SubscribeRequest{Email: "not-an-email"}), "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
