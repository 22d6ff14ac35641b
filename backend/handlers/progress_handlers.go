package handlers

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"

	webmodels "github.com/kappatrack/kappatrack/backend/models"
	"github.com/kappatrack/kappatrack/backend/utils"
	"github.com/kappatrack/kappatrack/kappatrack/database/models"
	"github.com/kappatrack/kappatrack/kappatrack/services"
)

// =============================================================================
// KAPPA TASK API
// =============================================================================

func TasksList(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := currentUserID(c)
		if !ok {
			return utils.SendSuccess(c, fiber.Map{
				"tasks":   []services.TaskWithProgress{},
				"traders": webApp.TaskService.Traders(),
			}, "Tasks retrieved")
		}

		filter := services.TaskFilter{
			Status: services.TaskStatusFilter(c.Query("filter", string(services.TaskStatusAll))),
			Trader: c.Query("trader"),
			Search: c.Query("search"),
		}

		tasks, err := webApp.TaskService.List(c.Context(), userID, filter)
		if err != nil {
			slog.Error("Failed to list tasks",
				slog.Int64("user_id", userID),
				slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to load tasks")
		}

		return utils.SendSuccess(c, fiber.Map{
			"tasks":   tasks,
			"traders": webApp.TaskService.Traders(),
		}, "Tasks retrieved")
	}
}

func TasksToggle(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := currentUserID(c)
		if !ok {
			return utils.SendUnauthorized(c, "Authentication required")
		}

		var req webmodels.TaskToggleRequest
		if err := c.BodyParser(&req); err != nil || req.TaskKey == "" {
			return utils.SendBadRequest(c, "task_key is required", nil)
		}

		completed, err := webApp.TaskService.Toggle(c.Context(), userID, req.TaskKey)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				return utils.SendNotFound(c, "Unknown task")
			}
			slog.Error("Failed to toggle task",
				slog.Int64("user_id", userID),
				slog.String("task_key", req.TaskKey),
				slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to toggle task")
		}

		return utils.SendSuccess(c, fiber.Map{
			"task_key":  req.TaskKey,
			"completed": completed,
		}, "Task toggled")
	}
}

// =============================================================================
// BOSS CHAIN API
// =============================================================================

func BossesList(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := currentUserID(c)
		if !ok {
			return utils.SendSuccess(c, fiber.Map{"bosses": services.DefaultBossData()}, "Boss data retrieved")
		}

		bosses, err := webApp.BossService.GetBossData(c.Context(), userID)
		if err != nil {
			slog.Error("Failed to load boss data",
				slog.Int64("user_id", userID),
				slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to load boss data")
		}

		return utils.SendSuccess(c, fiber.Map{"bosses": bosses}, "Boss data retrieved")
	}
}

func BossesDetail(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := currentUserID(c)
		if !ok {
			boss, err := services.DefaultBoss(c.Params("name"))
			if err != nil {
				return utils.SendNotFound(c, "Unknown boss")
			}
			return utils.SendSuccess(c, boss, "Boss retrieved")
		}

		boss, err := webApp.BossService.GetBoss(c.Context(), userID, c.Params("name"))
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				return utils.SendNotFound(c, "Unknown boss")
			}
			slog.Error("Failed to load boss",
				slog.Int64("user_id", userID),
				slog.String("boss", c.Params("name")),
				slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to load boss")
		}

		return utils.SendSuccess(c, boss, "Boss retrieved")
	}
}

func BossCompletedTasks(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := currentUserID(c)
		if !ok {
			if _, err := services.DefaultBoss(c.Params("name")); err != nil {
				return utils.SendNotFound(c, "Unknown boss")
			}
			return utils.SendSuccess(c, fiber.Map{
				"boss":      c.Params("name"),
				"completed": []string{},
			}, "Completed boss tasks retrieved")
		}

		completed, err := webApp.BossService.CompletedForBoss(c.Context(), userID, c.Params("name"))
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				return utils.SendNotFound(c, "Unknown boss")
			}
			slog.Error("Failed to load completed boss tasks",
				slog.Int64("user_id", userID),
				slog.String("boss", c.Params("name")),
				slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to load completed boss tasks")
		}

		return utils.SendSuccess(c, fiber.Map{
			"boss":      c.Params("name"),
			"completed": completed,
		}, "Completed boss tasks retrieved")
	}
}

func BossTasksToggle(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := currentUserID(c)
		if !ok {
			return utils.SendUnauthorized(c, "Authentication required")
		}

		var req webmodels.BossTaskToggleRequest
		if err := c.BodyParser(&req); err != nil || req.TaskName == "" {
			return utils.SendBadRequest(c, "task_name is required", nil)
		}

		completed, err := webApp.BossService.ToggleTask(c.Context(), userID, req.TaskName)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				return utils.SendNotFound(c, "Unknown boss task")
			}
			slog.Error("Failed to toggle boss task",
				slog.Int64("user_id", userID),
				slog.String("task_name", req.TaskName),
				slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to toggle boss task")
		}

		return utils.SendSuccess(c, fiber.Map{
			"task_name": req.TaskName,
			"completed": completed,
		}, "Boss task toggled")
	}
}

// =============================================================================
// PRESTIGE API
// =============================================================================

func PrestigeProfile(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := currentUserID(c)
		if !ok {
			return utils.SendSuccess(c, models.DefaultPrestigeProfile(), "Prestige profile retrieved")
		}

		profile, err := webApp.PrestigeService.GetProfile(c.Context(), userID)
		if err != nil {
			slog.Error("Failed to load prestige profile",
				slog.Int64("user_id", userID),
				slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to load prestige profile")
		}

		return utils.SendSuccess(c, profile, "Prestige profile retrieved")
	}
}

func PrestigeUpdate(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := currentUserID(c)
		if !ok {
			return utils.SendUnauthorized(c, "Authentication required")
		}

		var req webmodels.PrestigeUpdateRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "Invalid prestige profile", nil)
		}

		if err := webApp.PrestigeService.UpdateProfile(c.Context(), userID, req.Profile); err != nil {
			slog.Error("Failed to update prestige profile",
				slog.Int64("user_id", userID),
				slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to update prestige profile")
		}

		return utils.SendSuccess(c, req.Profile, "Prestige profile updated")
	}
}

func PrestigeRequirements(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		level, err := strconv.Atoi(c.Params("level"))
		if err != nil {
			return utils.SendBadRequest(c, "Invalid prestige level", nil)
		}

		req, err := webApp.PrestigeService.Requirements(level)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				return utils.SendNotFound(c, "Unknown prestige level")
			}
			return utils.SendInternalServerError(c, "Failed to load prestige requirements")
		}

		return utils.SendSuccess(c, req, "Prestige requirements retrieved")
	}
}

func PrestigeCompletion(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		level, err := strconv.Atoi(c.Params("level"))
		if err != nil {
			return utils.SendBadRequest(c, "Invalid prestige level", nil)
		}

		userID, ok := currentUserID(c)
		if !ok {
			result, err := services.DefaultCompletion(level)
			if err != nil {
				return utils.SendNotFound(c, "Unknown prestige level")
			}
			return utils.SendSuccess(c, result, "Prestige completion calculated")
		}

		result, err := webApp.PrestigeService.CalculateCompletion(c.Context(), userID, level)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				return utils.SendNotFound(c, "Unknown prestige level")
			}
			slog.Error("Failed to calculate prestige completion",
				slog.Int64("user_id", userID),
				slog.Int("level", level),
				slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to calculate prestige completion")
		}

		return utils.SendSuccess(c, result, "Prestige completion calculated")
	}
}

// =============================================================================
// HIDEOUT API
// =============================================================================

func HideoutGet(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := currentUserID(c)
		if !ok {
			return utils.SendSuccess(c, models.DefaultHideoutProgress(), "Hideout progress retrieved")
		}

		progress, err := webApp.HideoutService.Get(c.Context(), userID)
		if err != nil {
			slog.Error("Failed to load hideout progress",
				slog.Int64("user_id", userID),
				slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to load hideout progress")
		}

		return utils.SendSuccess(c, progress, "Hideout progress retrieved")
	}
}

func HideoutUpdate(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := currentUserID(c)
		if !ok {
			return utils.SendUnauthorized(c, "Authentication required")
		}

		var req webmodels.HideoutUpdateRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "Invalid hideout progress", nil)
		}

		if err := webApp.HideoutService.Update(c.Context(), userID, req.Progress); err != nil {
			slog.Error("Failed to update hideout progress",
				slog.Int64("user_id", userID),
				slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to update hideout progress")
		}

		return utils.SendSuccess(c, req.Progress, "Hideout progress updated")
	}
}

func HideoutSummary(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := currentUserID(c)
		if !ok {
			return utils.SendSuccess(c, services.DefaultHideoutSummary(), "Hideout summary retrieved")
		}

		summary, err := webApp.HideoutService.Summary(c.Context(), userID)
		if err != nil {
			slog.Error("Failed to build hideout summary",
				slog.Int64("user_id", userID),
				slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to build hideout summary")
		}

		return utils.SendSuccess(c, summary, "Hideout summary retrieved")
	}
}
