package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"worldwise/internal/citystore"
	"worldwise/internal/types"
)

// handleListCities godoc
// @Summary List cities
// @Description Every stored city, in insertion order
// @Tags cities
// @Produce json
// @Success 200 {array} types.City
// @Router /cities [get]
func (app *App) handleListCities(c *gin.Context) {
	c.JSON(http.StatusOK, app.store.List())
}

// handleGetCity godoc
// @Summary Get a city
// @Tags cities
// @Produce json
// @Param id path string true "City id"
// @Success 200 {object} types.City
// @Failure 404 {object} map[string]string
// @Router /cities/{id} [get]
func (app *App) handleGetCity(c *gin.Context) {
	city, err := app.store.Get(types.CityID(c.Param("id")))
	if err != nil {
		app.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, city)
}

// handleCreateCity godoc
// @Summary Create a city
// @Description Stores a city. A random UUID is assigned when the body has no id.
// @Tags cities
// @Accept json
// @Produce json
// @Param city body types.City true "City to store"
// @Success 201 {object} types.City
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /cities [post]
func (app *App) handleCreateCity(c *gin.Context) {
	var city types.City
	if err := c.ShouldBindJSON(&city); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := app.store.Create(city)
	if err != nil {
		app.respondError(c, err)
		return
	}

	app.logger.Info("city created", "id", created.ID, "city", created.CityName, "country", created.Country)
	c.JSON(http.StatusCreated, created)
}

// handleDeleteCity godoc
// @Summary Delete a city
// @Tags cities
// @Produce json
// @Param id path string true "City id"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cities/{id} [delete]
func (app *App) handleDeleteCity(c *gin.Context) {
	id := types.CityID(c.Param("id"))
	if err := app.store.Delete(id); err != nil {
		app.respondError(c, err)
		return
	}

	app.logger.Info("city deleted", "id", id)
	c.JSON(http.StatusOK, gin.H{})
}

func (app *App) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, citystore.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, citystore.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		app.logger.Error("city store failure",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
