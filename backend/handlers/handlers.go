package handlers

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/kappatrack/kappatrack/backend/config"
	webmodels "github.com/kappatrack/kappatrack/backend/models"
	webservices "github.com/kappatrack/kappatrack/backend/services"
	"github.com/kappatrack/kappatrack/backend/utils"
	"github.com/kappatrack/kappatrack/kappatrack/database"
	"github.com/kappatrack/kappatrack/kappatrack/services"
)

// WebApp represents the web application with all dependencies
type WebApp struct {
	Config             *config.WebAppConfig
	DB                 *database.DB
	Repos              *webmodels.Repositories
	TaskService        *services.TaskService
	BossService        *services.BossService
	PrestigeService    *services.PrestigeService
	HideoutService     *services.HideoutService
	CollectorService   *services.CollectorService
	LightkeeperService *services.LightkeeperService
	NoteService        *services.NoteService
	OAuthService       *webservices.OAuthService
	SessionService     *webservices.SessionService
	Version            string
	Commit             string
}

// GetSession gets the current user session
func (w *WebApp) GetSession(c *fiber.Ctx) (*webmodels.UserSession, error) {
	return w.SessionService.GetSession(c)
}

func HealthCheck(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return utils.SendSuccess(c, fiber.Map{
			"status":  "healthy",
			"version": webApp.Version,
			"commit":  webApp.Commit,
		}, "Health check successful")
	}
}

func Login(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		state, err := webApp.OAuthService.GenerateState()
		if err != nil {
			slog.Error("Failed to generate OAuth state", slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to initiate authentication")
		}

		if err := webApp.SessionService.SetState(c, state); err != nil {
			slog.Error("Failed to set OAuth state", slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to initiate authentication")
		}

		return c.Redirect(webApp.OAuthService.GenerateAuthURL(state))
	}
}

func OAuthCallback(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.Context()
		frontend := webApp.Config.FrontendURL()

		expectedState, err := webApp.SessionService.GetAndClearState(c)
		if err != nil {
			slog.Warn("OAuth callback: invalid or missing state", slog.String("error", err.Error()))
			return c.Redirect(frontend + "/login?error=invalid_state")
		}

		if !webApp.OAuthService.ValidateState(c, expectedState) {
			slog.Warn("OAuth callback: state mismatch")
			return c.Redirect(frontend + "/login?error=state_mismatch")
		}

		if errorParam := c.Query("error"); errorParam != "" {
			slog.Warn("OAuth callback: provider returned error",
				slog.String("error", errorParam),
				slog.String("description", c.Query("error_description")))
			return c.Redirect(frontend + "/login?error=oauth_error")
		}

		code := c.Query("code")
		if code == "" {
			slog.Warn("OAuth callback: missing authorization code")
			return c.Redirect(frontend + "/login?error=missing_code")
		}

		accessToken, err := webApp.OAuthService.ExchangeCodeForToken(ctx, code)
		if err != nil {
			slog.Error("OAuth callback: failed to exchange code for token",
				slog.String("error", err.Error()))
			return c.Redirect(frontend + "/login?error=token_exchange_failed")
		}

		user, err := webApp.OAuthService.GetUserInfo(ctx, accessToken)
		if err != nil {
			slog.Error("OAuth callback: failed to get user info",
				slog.String("error", err.Error()))
			return c.Redirect(frontend + "/login?error=user_info_failed")
		}

		dbUser, err := webApp.Repos.User.EnsureUser(ctx, user.ID, user.Username, user.Avatar)
		if err != nil {
			slog.Error("OAuth callback: failed to upsert user",
				slog.String("external_id", user.ID),
				slog.String("error", err.Error()))
			return c.Redirect(frontend + "/login?error=user_upsert_failed")
		}

		userSession := &webmodels.UserSession{
			UserID:     dbUser.ID,
			ExternalID: dbUser.ExternalID,
			Username:   dbUser.Username,
			Avatar:     dbUser.Avatar,
			ExpiresAt:  time.Now().Add(24 * time.Hour),
		}

		if err := webApp.SessionService.CreateSession(c, userSession); err != nil {
			slog.Error("OAuth callback: failed to create session cookie",
				slog.Int64("user_id", dbUser.ID),
				slog.String("error", err.Error()))
			return c.Redirect(frontend + "/login?error=session_cookie_failed")
		}

		slog.Info("OAuth callback: user authenticated successfully",
			slog.Int64("user_id", dbUser.ID),
			slog.String("username", dbUser.Username))

		return c.Redirect(frontend + "/dashboard")
	}
}

func Logout(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		webApp.SessionService.DestroySession(c)
		return utils.SendSuccess(c, nil, "Logged out successfully")
	}
}

func ValidateSession(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, err := webApp.GetSession(c)
		if err != nil {
			return utils.SendUnauthorized(c, "Invalid session")
		}

		if session.ExpiresAt.Before(time.Now()) {
			return utils.SendUnauthorized(c, "Session expired")
		}

		return utils.SendSuccess(c, fiber.Map{
			"user":       session,
			"valid":      true,
			"expires_at": session.ExpiresAt,
		}, "Session valid")
	}
}

// currentUserID returns the authenticated user's database id. The auth
// middleware guarantees it is set on protected routes.
func currentUserID(c *fiber.Ctx) (int64, bool) {
	session, ok := utils.ExtractUserSession(c)
	if !ok {
		return 0, false
	}
	return session.UserID, true
}
