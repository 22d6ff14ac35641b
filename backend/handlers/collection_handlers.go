package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	webmodels "github.com/kappatrack/kappatrack/backend/models"
	"github.com/kappatrack/kappatrack/backend/utils"
	"github.com/kappatrack/kappatrack/kappatrack/database/models"
	"github.com/kappatrack/kappatrack/kappatrack/services"
)

// =============================================================================
// COLLECTOR API
// =============================================================================

func CollectorList(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := currentUserID(c)
		if !ok {
			return utils.SendSuccess(c, fiber.Map{"items": []services.CollectorItemWithProgress{}}, "Collector items retrieved")
		}

		items, err := webApp.CollectorService.List(c.Context(), userID, c.Query("search"))
		if err != nil {
			slog.Error("Failed to list collector items",
				slog.Int64("user_id", userID),
				slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to load collector items")
		}

		return utils.SendSuccess(c, fiber.Map{"items": items}, "Collector items retrieved")
	}
}

func CollectorToggle(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := currentUserID(c)
		if !ok {
			return utils.SendUnauthorized(c, "Authentication required")
		}

		var req webmodels.CollectorToggleRequest
		if err := c.BodyParser(&req); err != nil || req.ItemName == "" {
			return utils.SendBadRequest(c, "item_name is required", nil)
		}

		found, err := webApp.CollectorService.Toggle(c.Context(), userID, req.ItemName)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				return utils.SendNotFound(c, "Unknown collector item")
			}
			slog.Error("Failed to toggle collector item",
				slog.Int64("user_id", userID),
				slog.String("item_name", req.ItemName),
				slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to toggle collector item")
		}

		return utils.SendSuccess(c, fiber.Map{
			"item_name": req.ItemName,
			"found":     found,
		}, "Collector item toggled")
	}
}

// =============================================================================
// LIGHTKEEPER API
// =============================================================================

func LightkeeperList(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := currentUserID(c)
		if !ok {
			return utils.SendSuccess(c, fiber.Map{"quests": []services.LightkeeperQuestWithProgress{}}, "Lightkeeper quests retrieved")
		}

		quests, err := webApp.LightkeeperService.List(c.Context(), userID)
		if err != nil {
			slog.Error("Failed to list lightkeeper quests",
				slog.Int64("user_id", userID),
				slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to load lightkeeper quests")
		}

		return utils.SendSuccess(c, fiber.Map{"quests": quests}, "Lightkeeper quests retrieved")
	}
}

func LightkeeperQuestToggle(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := currentUserID(c)
		if !ok {
			return utils.SendUnauthorized(c, "Authentication required")
		}

		var req webmodels.LightkeeperQuestToggleRequest
		if err := c.BodyParser(&req); err != nil || req.QuestName == "" {
			return utils.SendBadRequest(c, "quest_name is required", nil)
		}

		completed, err := webApp.LightkeeperService.ToggleQuest(c.Context(), userID, req.QuestName, req.InitialState)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				return utils.SendNotFound(c, "Unknown lightkeeper quest")
			}
			slog.Error("Failed to toggle lightkeeper quest",
				slog.Int64("user_id", userID),
				slog.String("quest_name", req.QuestName),
				slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to toggle lightkeeper quest")
		}

		return utils.SendSuccess(c, fiber.Map{
			"quest_name": req.QuestName,
			"completed":  completed,
		}, "Lightkeeper quest toggled")
	}
}

func LightkeeperSubTaskToggle(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := currentUserID(c)
		if !ok {
			return utils.SendUnauthorized(c, "Authentication required")
		}

		var req webmodels.LightkeeperSubTaskToggleRequest
		if err := c.BodyParser(&req); err != nil || req.QuestName == "" {
			return utils.SendBadRequest(c, "quest_name is required", nil)
		}

		indices, err := webApp.LightkeeperService.ToggleSubTask(c.Context(), userID, req.QuestName, req.Index)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				return utils.SendNotFound(c, "Unknown lightkeeper quest or sub-task")
			}
			slog.Error("Failed to toggle lightkeeper sub-task",
				slog.Int64("user_id", userID),
				slog.String("quest_name", req.QuestName),
				slog.Int("index", req.Index),
				slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to toggle lightkeeper sub-task")
		}

		return utils.SendSuccess(c, fiber.Map{
			"quest_name":          req.QuestName,
			"sub_tasks_completed": indices,
		}, "Lightkeeper sub-task toggled")
	}
}

// =============================================================================
// NOTES API
// =============================================================================

func NoteGet(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := currentUserID(c)
		if !ok {
			return utils.SendSuccess(c, &models.UserNote{Content: ""}, "Note retrieved")
		}

		note, err := webApp.NoteService.Get(c.Context(), userID)
		if err != nil {
			slog.Error("Failed to load note",
				slog.Int64("user_id", userID),
				slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to load note")
		}

		return utils.SendSuccess(c, note, "Note retrieved")
	}
}

func NoteSave(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := currentUserID(c)
		if !ok {
			return utils.SendUnauthorized(c, "Authentication required")
		}

		var req webmodels.NoteSaveRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "Invalid note payload", nil)
		}

		note, err := webApp.NoteService.Save(c.Context(), userID, req.Content)
		if err != nil {
			slog.Error("Failed to save note",
				slog.Int64("user_id", userID),
				slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to save note")
		}

		return utils.SendSuccess(c, note, "Note saved")
	}
}
