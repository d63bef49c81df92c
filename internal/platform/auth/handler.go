package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/nutridash/nutridash/internal/platform/remote"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the auth endpoints. The /me endpoint verifies
// its own token, so the whole group stays outside RequireSession.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/signup", h.SignUp)
	g.POST("/login", h.Login)
	g.POST("/logout", h.Logout)
	g.POST("/reset-password", h.ResetPassword)
	g.POST("/reset-password/confirm", h.ConfirmReset)
	g.GET("/me", h.Me)
}

type credentials struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) SignUp(c echo.Context) error {
	var body credentials
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	sess, err := h.svc.SignUp(c.Request().Context(), body.Name, body.Email, body.Password)
	if err != nil {
		if remote.IsValidation(err) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	return c.JSON(http.StatusCreated, sess)
}

func (h *Handler) Login(c echo.Context) error {
	var body credentials
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	sess, err := h.svc.SignIn(c.Request().Context(), body.Email, body.Password)
	if err != nil {
		if remote.IsValidation(err) {
			return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
		}
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	return c.JSON(http.StatusOK, sess)
}

func (h *Handler) Logout(c echo.Context) error {
	tokenStr, err := bearerToken(c)
	if err == nil {
		h.svc.SignOut(tokenStr)
	}
	// Logout always succeeds from the client's point of view.
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ResetPassword(c echo.Context) error {
	var body struct {
		Email string `json:"email"`
	}
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, err := h.svc.ResetPassword(c.Request().Context(), body.Email)
	switch {
	case err == nil:
		// There is no mailer; the token is logged for the operator to
		// hand over out of band.
		log.Info().Str("email", body.Email).Str("reset_token", token).
			Msg("password reset requested")
	case remote.IsNotFound(err):
		// Fall through: the response must not reveal whether the
		// email has an account.
	default:
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "If an account exists for this email, a reset link has been issued.",
	})
}

func (h *Handler) ConfirmReset(c echo.Context) error {
	var body struct {
		Token    string `json:"token"`
		Password string `json:"password"`
	}
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.ConfirmReset(c.Request().Context(), body.Token, body.Password); err != nil {
		if remote.IsValidation(err) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Password updated."})
}

func (h *Handler) Me(c echo.Context) error {
	tokenStr, err := bearerToken(c)
	if err != nil {
		return err
	}
	claims, err := h.svc.Verify(tokenStr)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid session")
	}
	a, err := h.svc.Account(c.Request().Context(), claims)
	if err != nil {
		if remote.IsNotFound(err) {
			return echo.NewHTTPError(http.StatusUnauthorized, "account no longer exists")
		}
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	return c.JSON(http.StatusOK, a)
}
