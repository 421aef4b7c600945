package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	intconfig "travelstore/internal/config"
	"travelstore/internal/http/middleware"
	"travelstore/internal/utils"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates the staff account configured in the environment and
// issues a 24h token for the admin endpoints.
// POST /api/auth/login
func Login(env intconfig.Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if !BindJSONOrError(c, &req) {
			return
		}

		if env.StaffEmail == "" || env.StaffPasswordHash == "" {
			RespondError(c, http.StatusServiceUnavailable, "staff login is not configured", nil)
			return
		}

		if req.Email != env.StaffEmail {
			RespondError(c, http.StatusUnauthorized, "invalid email or password", nil)
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(env.StaffPasswordHash), []byte(req.Password)); err != nil {
			RespondError(c, http.StatusUnauthorized, "invalid email or password", nil)
			return
		}

		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub":  env.StaffEmail,
			"role": "staff",
			"exp":  time.Now().Add(24 * time.Hour).Unix(),
		})

		tokenString, err := token.SignedString([]byte(env.JWTSecret))
		if err != nil {
			RespondError(c, http.StatusInternalServerError, "failed to sign token", err)
			return
		}

		utils.LogEvent(middleware.GetRequestID(c), "auth", "login", "staff login ok")
		c.JSON(http.StatusOK, gin.H{"token": tokenString})
	}
}
