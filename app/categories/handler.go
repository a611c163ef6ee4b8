package categories

import (
	"github.com/gin-gonic/gin"

	"product-api/app/api"
	"product-api/models"
)

// CategoryResponse exposes only the fields the dropdown-style listing
// needs; timestamps and the active flag stay internal.
type CategoryResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type CategoryProvider interface {
	ListActive() ([]models.Category, error)
}

type Handler struct {
	repo CategoryProvider
}

func NewHandler(r CategoryProvider) *Handler {
	return &Handler{repo: r}
}

// HandleList serves GET /v1/categories: active categories, name order.
func (h *Handler) HandleList(c *gin.Context) {
	res, err := h.repo.ListActive()
	if err != nil {
		api.Internal(c, "Failed to load categories", err)
		return
	}

	categories := make([]CategoryResponse, len(res))
	for i, cat := range res {
		categories[i] = CategoryResponse{
			ID:   cat.ID,
			Name: cat.Name,
		}
	}
	api.OK(c, categories)
}
