package controllers

import (
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mvidal-dev/ArtisanCart/config"
	"github.com/mvidal-dev/ArtisanCart/models"
	"github.com/mvidal-dev/ArtisanCart/utils"
)

// SubscribeRequest is a newsletter signup
type SubscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
}

// Subscribe adds an address to the newsletter list. A previously unsubscribed
// address is reactivated; an already active one is rejected.
func Subscribe(c *gin.Context) {
	utils.LogInfo("Subscribe called")

	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "A valid email is required", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var existing models.NewsletterSubscriber
	err := config.DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		if existing.IsActive {
			utils.LogDebug("Duplicate subscription attempt for %s", email)
			utils.BadRequest(c, "Email is already subscribed", nil)
			return
		}
		updates := map[string]interface{}{
			"is_active":       true,
			"unsubscribed_at": nil,
		}
		if req.Name != "" {
			updates["name"] = req.Name
		}
		if err := config.DB.Model(&existing).Updates(updates).Error; err != nil {
			utils.LogError("Failed to reactivate subscriber %s: %v", email, err)
			utils.InternalServerError(c, "Failed to subscribe", nil)
			return
		}
		utils.LogInfo("Reactivated newsletter subscriber %s", email)
		utils.Success(c, "Subscription reactivated", nil)
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.LogError("Subscriber lookup failed for %s: %v", email, err)
		utils.InternalServerError(c, "Failed to subscribe", nil)
		return
	}

	subscriber := models.NewsletterSubscriber{
		Email:    email,
		Name:     req.Name,
		IsActive: true,
	}
	if err := config.DB.Create(&subscriber).Error; err != nil {
		utils.LogError("Failed to create subscriber %s: %v", email, err)
		utils.InternalServerError(c, "Failed to subscribe", nil)
		return
	}

	go func() {
		if err := utils.SendNewsletterWelcome(email, req.Name); err != nil {
			utils.LogError("Failed to send newsletter welcome to %s: %v", email, err)
		}
	}()

	utils.LogInfo("New newsletter subscriber %s", email)
	utils.Created(c, "Subscribed successfully", nil)
}

// Unsubscribe deactivates a subscription, keeping the row for reactivation
func Unsubscribe(c *gin.Context) {
	utils.LogInfo("Unsubscribe called")

	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "A valid email is required", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var subscriber models.NewsletterSubscriber
	if err := config.DB.Where("email = ?", email).First(&subscriber).Error; err != nil {
		utils.NotFound(c, "Email is not subscribed")
		return
	}

	now := time.Now()
	updates := map[string]interface{}{
		"is_active":       false,
		"unsubscribed_at": &now,
	}
	if err := config.DB.Model(&subscriber).Updates(updates).Error; err != nil {
		utils.LogError("Failed to unsubscribe %s: %v", email, err)
		utils.InternalServerError(c, "Failed to unsubscribe", nil)
		return
	}

	utils.LogInfo("Unsubscribed %s from the newsletter", email)
	utils.Success(c, "Unsubscribed successfully", nil)
}

// ListSubscribers returns every subscriber for back-office use, including
// unsubscribed addresses with their unsubscribed_at timestamps
func ListSubscribers(c *gin.Context) {
	utils.LogInfo("ListSubscribers called")

	var subscribers []models.NewsletterSubscriber
	if err := config.DB.Order("created_at DESC").Find(&subscribers).Error; err != nil {
		utils.LogError("Failed to fetch subscribers: %v", err)
		utils.InternalServerError(c, "Failed to fetch subscribers", nil)
		return
	}

	utils.Success(c, "Subscribers loaded", gin.H{
		"subscribers": subscribers,
		"count":       len(subscribers),
	})
}
