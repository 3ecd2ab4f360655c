package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"product-catalog/internal/models"
	"product-catalog/internal/store"
)

// ProductHandler serves the /products resource.
type ProductHandler struct {
	store store.ProductStore
}

func NewProductHandler(s store.ProductStore) *ProductHandler {
	return &ProductHandler{store: s}
}

// Create handles POST /products. On success it returns 201 with a Location
// header pointing at the new resource.
func (h *ProductHandler) Create(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// The store assigns identity; a client-supplied id is ignored.
	product.ID = ""

	if err := h.store.Create(c.Request.Context(), &product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create product"})
		return
	}

	c.Header("Location", "/products/"+product.ID)
	c.JSON(http.StatusCreated, product)
}

// Get handles GET /products/:id.
func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.store.Find(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch product"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// Update handles PUT /products/:id. It replaces all mutable fields of the
// product; the id in the path always wins over anything in the payload.
func (h *ProductHandler) Update(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product.ID = c.Param("id")

	if err := h.store.Update(c.Request.Context(), &product); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update product"})
		return
	}

	c.JSON(http.StatusOK, product)
}

// Delete handles DELETE /products/:id and answers 204 with an empty body.
func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.store.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete product"})
		return
	}
	c.Status(http.StatusNoContent)
}

// List handles GET /products with optional name, category and available
// filters. An empty result set is a 204 with no body, not an error.
func (h *ProductHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		products []models.Product
		err      error
	)
	switch {
	case c.Query("name") != "":
		products, err = h.store.FindByName(ctx, c.Query("name"))
	case c.Query("category") != "":
		products, err = h.store.FindByCategory(ctx, models.ParseCategory(c.Query("category")))
	case c.Query("available") != "":
		products, err = h.store.FindByAvailability(ctx, parseAvailable(c.Query("available")))
	default:
		products, err = h.store.All(ctx)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list products"})
		return
	}

	if len(products) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, products)
}

// parseAvailable treats "true", "yes" and "1" as true and anything else as
// false, matching how the availability filter has always behaved.
func parseAvailable(value string) bool {
	switch strings.ToLower(value) {
	case "true", "yes", "1":
		return true
	}
	return false
}
