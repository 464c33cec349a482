package controllers

import (
	"errors"
	"log"

	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
)

const historyWindow = 20

// SendMessage forwards a student's question to the AI assistant with recent
// conversation history as context and stores both turns
func SendMessage(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedChatMessage").(*struct {
		Content  string `json:"content"`
		CourseID *uint  `json:"course_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	// Optional course context for the system prompt
	courseTitle := ""
	if reqData.CourseID != nil {
		var course courseModels.Course
		if err := db.Where("id = ? AND is_deleted = ?", *reqData.CourseID, false).First(&course).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		courseTitle = course.Title
	}

	userMessage := models.ChatMessage{
		UserID:   userID,
		Role:     models.ChatRoleUser,
		Content:  reqData.Content,
		CourseID: reqData.CourseID,
	}
	if err := db.Create(&userMessage).Error; err != nil {
		log.Printf("Error saving chat message: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to send message!", nil)
	}

	// Recent history, oldest first, for completion context
	var history []models.ChatMessage
	db.Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("created_at desc").Limit(historyWindow).Find(&history)
	for i, j := 0, len(history)-1; i < j; i, j = i+1, j-1 {
		history[i], history[j] = history[j], history[i]
	}

	reply, err := utils.CompleteChat(c.Context(), history, courseTitle)
	if err != nil {
		if errors.Is(err, utils.ErrAssistantUnavailable) {
			return middleware.JsonResponse(c, fiber.StatusServiceUnavailable, false, "Assistant is unavailable right now. Please try again later.", nil)
		}
		log.Printf("Chat completion error: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to get assistant reply!", nil)
	}

	assistantMessage := models.ChatMessage{
		UserID:   userID,
		Role:     models.ChatRoleAssistant,
		Content:  reply,
		CourseID: reqData.CourseID,
	}
	if err := db.Create(&assistantMessage).Error; err != nil {
		log.Printf("Error saving assistant reply: %v", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Message sent successfully!", fiber.Map{
		"message": userMessage,
		"reply":   assistantMessage,
	})
}

// GetHistory returns the caller's conversation history, newest first
func GetHistory(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, _ := c.Locals("validatedList").(*struct {
		Page  *int `json:"page"`
		Limit *int `json:"limit"`
	})

	var page, limit, offset int
	if reqData != nil {
		page, limit, offset = utils.Pagination(reqData.Page, reqData.Limit)
	} else {
		page, limit, offset = utils.Pagination(nil, nil)
	}

	db := database.Database.Db.Model(&models.ChatMessage{}).Where("user_id = ? AND is_deleted = ?", userID, false)

	var total int64
	db.Count(&total)

	var messages []models.ChatMessage
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&messages).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch chat history!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chat history fetched successfully!", fiber.Map{
		"messages": messages,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}
