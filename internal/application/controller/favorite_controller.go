package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"weather-api/internal/domain/model"
	"weather-api/internal/domain/usecase/favorite"
	"weather-api/pkg/util/numberutils"
)

type FavoriteController struct {
	api     *echo.Group
	useCase favorite.UseCase
}

func NewFavoriteController(api *echo.Group, useCase favorite.UseCase) *FavoriteController {
	return &FavoriteController{api: api, useCase: useCase}
}

// InitFavoriteRoutes initializes favorite city routes
func (controller *FavoriteController) InitFavoriteRoutes() {
	controller.api.GET("/api/favorites", controller.FindAll)
	controller.api.POST("/api/favorites", controller.Add)
	controller.api.DELETE("/api/favorites/:city", controller.Remove)
}

// FindAll godoc
// @Summary List favorite cities
// @Description Favorite cities with pagination, oldest first
// @Tags favorites
// @Produce json
// @Param page query int false "Page number" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} model.Page[entity.Favorite]
// @Failure 500 {object} middleware.ErrorResponse "Internal server error"
// @Router /api/favorites [get]
func (controller *FavoriteController) FindAll(c echo.Context) error {
	var page int = numberutils.ToIntWithDefault(c.QueryParam("page"), 0)
	var size int = numberutils.ToIntWithDefault(c.QueryParam("size"), 10)

	favorites, err := controller.useCase.FindAll(c.Request().Context(), page, size)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)).SetInternal(err)
	}
	return c.JSON(http.StatusOK, favorites)
}

// Add godoc
// @Summary Add a favorite city
// @Description Stores a city once, adding an existing city returns it with 200
// @Tags favorites
// @Accept json
// @Produce json
// @Param favorite body model.CreateFavoriteDTO true "City to add"
// @Success 200 {object} entity.Favorite "Already a favorite"
// @Success 201 {object} entity.Favorite "Favorite created"
// @Failure 422 {object} middleware.ErrorResponse "Invalid request body or empty city"
// @Failure 500 {object} middleware.ErrorResponse "Internal server error"
// @Router /api/favorites [post]
func (controller *FavoriteController) Add(c echo.Context) error {
	var dto model.CreateFavoriteDTO
	if err := c.Bind(&dto); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "Invalid request body")
	}

	created, isNew, err := controller.useCase.Add(c.Request().Context(), dto.City)
	if errors.Is(err, favorite.ErrEmptyCity) {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)).SetInternal(err)
	}

	if isNew {
		return c.JSON(http.StatusCreated, created)
	}
	return c.JSON(http.StatusOK, created)
}

// Remove godoc
// @Summary Remove a favorite city
// @Tags favorites
// @Param city path string true "City name"
// @Success 204 "Favorite removed"
// @Failure 404 {object} middleware.ErrorResponse "Not a favorite"
// @Failure 500 {object} middleware.ErrorResponse "Internal server error"
// @Router /api/favorites/{city} [delete]
func (controller *FavoriteController) Remove(c echo.Context) error {
	err := controller.useCase.Remove(c.Request().Context(), pathParam(c, "city"))
	switch {
	case errors.Is(err, favorite.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Favorite not found")
	case errors.Is(err, favorite.ErrEmptyCity):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	case err != nil:
		return echo.NewHTTPError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)).SetInternal(err)
	}
	return c.NoContent(http.StatusNoContent)
}
