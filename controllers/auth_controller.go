package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-site-backend/middleware"
	"hotel-site-backend/services"
	"hotel-site-backend/utils"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

type credentialsPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

func (ac *AuthController) Login(c *gin.Context) {
	var payload credentialsPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	token, account, err := ac.auth.SignIn(payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"token":    token,
		"user":     account,
		"is_admin": account.IsAdmin,
	})
}

func (ac *AuthController) Register(c *gin.Context) {
	var payload credentialsPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	account, err := ac.auth.SignUp(payload.Email, payload.Password, payload.FullName)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailTaken):
			utils.JSONError(c, http.StatusConflict, err.Error())
		case errors.Is(err, services.ErrWeakPassword):
			utils.JSONError(c, http.StatusBadRequest, err.Error())
		default:
			utils.JSONError(c, http.StatusBadRequest, err.Error())
		}
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, account)
}

// Me returns the session account together with its admin flag. The panel
// waits for both before deciding on a redirect, so there is no flicker from
// a premature non-admin verdict.
func (ac *AuthController) Me(c *gin.Context) {
	account, err := ac.auth.GetAccount(middleware.SessionUserID(c))
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "Session account no longer exists")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"user":     account,
		"is_admin": account.IsAdmin,
	})
}

type changePasswordPayload struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (ac *AuthController) ChangePassword(c *gin.Context) {
	var payload changePasswordPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	err := ac.auth.ChangePassword(middleware.SessionUserID(c), payload.CurrentPassword, payload.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrWrongPassword):
			utils.JSONError(c, http.StatusUnauthorized, err.Error())
		case errors.Is(err, services.ErrWeakPassword):
			utils.JSONError(c, http.StatusBadRequest, err.Error())
		default:
			utils.JSONError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Password updated"})
}
