package handler

import (
	"net/http"
	"warehouse-service/pkg/config"
	"warehouse-service/pkg/jwtutil"
	"warehouse-service/pkg/logger"
	"warehouse-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	adminUsername     string
	adminPasswordHash []byte
)

// InitAuth hashes the configured shared credential once at startup so the
// plain password never sits in memory past this point.
func InitAuth(cfg *config.AuthConfig) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	adminUsername = cfg.AdminUsername
	adminPasswordHash = hash
	return nil
}

// Login checks the shared warehouse credential and issues a session token
func Login(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.LoginAttemptsCounter.Inc()

	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse login request", zap.Error(err))
		prometheus.RecordAuthError("invalid_request")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	if req.Username != adminUsername {
		log.Warn("Unknown login username", zap.String("username", req.Username))
		prometheus.RecordAuthError("unknown_user")
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	if err := bcrypt.CompareHashAndPassword(adminPasswordHash, []byte(req.Password)); err != nil {
		log.Warn("Invalid password", zap.String("username", req.Username))
		prometheus.RecordAuthError("invalid_password")
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	token, err := jwtutil.GenerateToken(req.Username)
	if err != nil {
		log.Error("Failed to generate session token", zap.Error(err))
		prometheus.RecordAuthError("token_generation_failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "token error"})
	}

	prometheus.LoginSuccessCounter.Inc()
	log.Info("Login successful", zap.String("username", req.Username))
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Login successful",
		"token":   token,
	})
}
