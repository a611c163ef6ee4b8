package products

import (
	"errors"
	"io"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"product-api/app/api"
	"product-api/models"
)

type CategoryResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// ProductResponse is the wire shape of a product. FormattedPrice and
// Status are presentation fields computed here, never stored.
type ProductResponse struct {
	ID             uint             `json:"id"`
	Name           string           `json:"name"`
	CategoryID     uint             `json:"category_id"`
	Category       CategoryResponse `json:"category"`
	Price          float64          `json:"price"`
	FormattedPrice string           `json:"formatted_price"`
	Active         bool             `json:"active"`
	Status         string           `json:"status"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

func newProductResponse(p *models.Product) ProductResponse {
	status := "Inactive"
	if p.Active {
		status = "Active"
	}
	return ProductResponse{
		ID:         p.ID,
		Name:       p.Name,
		CategoryID: p.CategoryID,
		Category: CategoryResponse{
			ID:   p.Category.ID,
			Name: p.Category.Name,
		},
		Price:          p.Price.InexactFloat64(),
		FormattedPrice: "$" + p.Price.StringFixed(2),
		Active:         p.Active,
		Status:         status,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

type ProductProvider interface {
	Create(p *models.Product) error
	GetAll() ([]models.Product, error)
	GetByID(id uint) (*models.Product, error)
	Update(id uint, fields map[string]any) (*models.Product, error)
	Delete(id uint) (bool, error)
}

type Handler struct {
	repo      ProductProvider
	validator *Validator
}

func NewHandler(repo ProductProvider, validator *Validator) *Handler {
	return &Handler{
		repo:      repo,
		validator: validator,
	}
}

// HandleList serves GET /v1/products.
func (h *Handler) HandleList(c *gin.Context) {
	res, err := h.repo.GetAll()
	if err != nil {
		api.Internal(c, "Failed to load products", err)
		return
	}

	products := make([]ProductResponse, len(res))
	for i := range res {
		products[i] = newProductResponse(&res[i])
	}
	api.OK(c, products)
}

// HandleGet serves GET /v1/products/:id.
func (h *Handler) HandleGet(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	product, err := h.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			api.NotFound(c, "Product not found")
			return
		}
		api.Internal(c, "Failed to load product", err)
		return
	}
	api.OK(c, newProductResponse(product))
}

// HandleCreate serves POST /v1/products. All fields are required; a
// single invalid field rejects the whole write before the store is
// touched.
func (h *Handler) HandleCreate(c *gin.Context) {
	payload, ok := bindPayload(c)
	if !ok {
		return
	}

	fields, verrs, err := h.validator.Validate(payload, false)
	if err != nil {
		api.Internal(c, "Failed to create product", err)
		return
	}
	if verrs != nil {
		api.ValidationFailed(c, verrs)
		return
	}

	product := &models.Product{
		Name:       *fields.Name,
		CategoryID: *fields.CategoryID,
		Price:      *fields.Price,
		Active:     *fields.Active,
	}
	if err := h.repo.Create(product); err != nil {
		api.Internal(c, "Failed to create product", err)
		return
	}
	api.Created(c, "Product created successfully", newProductResponse(product))
}

// HandleUpdate serves PUT and PATCH /v1/products/:id. Only fields
// present in the body are validated and replaced, which gives PUT its
// full-replace semantics when every field is sent.
func (h *Handler) HandleUpdate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	payload, ok := bindPayload(c)
	if !ok {
		return
	}

	fields, verrs, err := h.validator.Validate(payload, true)
	if err != nil {
		api.Internal(c, "Failed to update product", err)
		return
	}
	if verrs != nil {
		api.ValidationFailed(c, verrs)
		return
	}

	product, err := h.repo.Update(id, fields.Fields())
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			api.NotFound(c, "Product not found")
			return
		}
		api.Internal(c, "Failed to update product", err)
		return
	}
	api.OKMessage(c, "Product updated successfully", newProductResponse(product))
}

// HandleDelete serves DELETE /v1/products/:id. Hard delete.
func (h *Handler) HandleDelete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	deleted, err := h.repo.Delete(id)
	if err != nil {
		api.Internal(c, "Failed to delete product", err)
		return
	}
	if !deleted {
		api.NotFound(c, "Product not found")
		return
	}
	api.OKMessage(c, "Product deleted successfully", nil)
}

// parseID reads the :id path segment. A non-numeric id can never match
// a row, so it renders the same 404 an absent id does.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		api.NotFound(c, "Product not found")
		return 0, false
	}
	return uint(id), true
}

// bindPayload decodes the body. An empty body is a valid "no fields"
// payload so the validator can report the required fields; malformed
// JSON is a 400.
func bindPayload(c *gin.Context) (ProductPayload, bool) {
	var payload ProductPayload
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		api.BadRequest(c, "Invalid JSON body")
		return ProductPayload{}, false
	}
	return payload, true
}
