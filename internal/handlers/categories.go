package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"

	"github.com/devicepro80/dhstore/internal/models"
	"github.com/devicepro80/dhstore/internal/stores"
)

const categoriesCacheKey = "categories"

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// CategoryHandler serves the category list through a short-lived
// in-memory cache, invalidated on every write.
type CategoryHandler struct {
	Categories stores.CategoryStore
	Cache      *cache.Cache
}

func NewCategoryHandler(categories stores.CategoryStore, c *cache.Cache) *CategoryHandler {
	return &CategoryHandler{Categories: categories, Cache: c}
}

func (h *CategoryHandler) List(c *gin.Context) {
	if cached, found := h.Cache.Get(categoriesCacheKey); found {
		if categories, ok := cached.([]models.Category); ok {
			c.JSON(http.StatusOK, categories)
			return
		}
	}

	categories, err := h.Categories.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch categories"})
		return
	}

	h.Cache.Set(categoriesCacheKey, categories, cache.DefaultExpiration)
	c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category := &models.Category{Name: req.Name}
	if err := h.Categories.Create(category); err != nil {
		if errors.Is(err, stores.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "category already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create category"})
		return
	}

	h.Cache.Delete(categoriesCacheKey)
	c.JSON(http.StatusCreated, category)
}
