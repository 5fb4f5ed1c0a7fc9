package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yourname/wellnesstracker/internal"
	"github.com/yourname/wellnesstracker/internal/service"
	"github.com/yourname/wellnesstracker/internal/store"
)

func PostLogin(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var data internal.LoginData
		if err := c.ShouldBindJSON(&data); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}
		if err := service.ValidateLoginRequest(&data); err != nil {
			HandleError(c, app.Logger(), err, 400, "Validation failed")
			return
		}
		res, err := service.Login(c.Request.Context(), app.Users(), app.Config(), data)
		if err != nil {
			if errors.Is(err, service.ErrInvalidCredentials) {
				HandleError(c, app.Logger(), err, 401, "Invalid credentials")
				return
			}
			HandleError(c, app.Logger(), err, 500, "Failed to log in")
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

func PostSignup(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var data internal.SignupData
		if err := c.ShouldBindJSON(&data); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}
		if err := service.ValidateSignupRequest(&data); err != nil {
			HandleError(c, app.Logger(), err, 400, "Validation failed")
			return
		}
		res, err := service.Signup(c.Request.Context(), app.Users(), app.Config(), data)
		if err != nil {
			if errors.Is(err, store.ErrDuplicateEmail) {
				HandleError(c, app.Logger(), err, 409, "User with this email already exists")
				return
			}
			HandleError(c, app.Logger(), err, 500, "Failed to create user")
			return
		}
		c.JSON(http.StatusCreated, res)
	}
}
