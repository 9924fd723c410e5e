package stubserver

import (
	"net/http"

	"app/internal/domain/model"

	"github.com/labstack/echo/v4"
)

func (s *Server) listFoodItems(c echo.Context) error {
	s.mu.Lock()
	items := make([]model.FoodItem, len(s.foods))
	copy(items, s.foods)
	s.mu.Unlock()

	return c.JSON(http.StatusOK, items)
}

func (s *Server) findFoodItem(c echo.Context) error {
	id := model.ItemID(c.Param("id")).Normalized()

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, f := range s.foods {
		if f.ID == id {
			return c.JSON(http.StatusOK, f)
		}
	}
	return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
}
