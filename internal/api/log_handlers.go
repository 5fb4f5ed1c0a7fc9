package api

import (
	"errors"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/yourname/wellnesstracker/internal"
	"github.com/yourname/wellnesstracker/internal/service"
	"github.com/yourname/wellnesstracker/internal/store"
)

func GetLogs(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.MustGet("user").(*internal.User)

		logs, err := app.Logs().ListLogs(c.Request.Context(), user.ID)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch logs")
			return
		}

		sort.Slice(logs, func(i, j int) bool {
			return logs[i].CreatedAt.After(logs[j].CreatedAt)
		})

		c.JSON(http.StatusOK, logs)
	}
}

func PostLog(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.MustGet("user").(*internal.User)

		var form internal.WellnessLogForm
		if err := c.ShouldBindJSON(&form); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}
		if err := service.ValidateWellnessLogRequest(&form); err != nil {
			HandleError(c, app.Logger(), err, 400, "Validation failed")
			return
		}

		log, err := service.CreateWellnessLog(c.Request.Context(), app.Logs(), user, form)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to save log")
			return
		}

		c.JSON(http.StatusCreated, log)
	}
}

func PutLog(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var patch internal.WellnessLogPatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}

		log, err := service.UpdateWellnessLog(c.Request.Context(), app.Logs(), c.Param("id"), patch)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				HandleError(c, app.Logger(), err, 404, "Log not found")
				return
			}
			HandleError(c, app.Logger(), err, 500, "Failed to update log")
			return
		}

		c.JSON(http.StatusOK, log)
	}
}

func DeleteLog(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := service.DeleteWellnessLog(c.Request.Context(), app.Logs(), c.Param("id")); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				HandleError(c, app.Logger(), err, 404, "Log not found")
				return
			}
			HandleError(c, app.Logger(), err, 500, "Failed to delete log")
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Wellness log deleted"})
	}
}
