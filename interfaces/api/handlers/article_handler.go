package handlers

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Kimnjuki/faceless-sub001/domain/services"
	"github.com/Kimnjuki/faceless-sub001/pkg/utils"
)

type ArticleHandler struct {
	articleService services.ArticleService
	validate       *validator.Validate
}

func NewArticleHandler(articleService services.ArticleService) *ArticleHandler {
	return &ArticleHandler{
		articleService: articleService,
		validate:       validator.New(),
	}
}

// List handles GET /api/v1/articles
func (h *ArticleHandler) List(c *fiber.Ctx) error {
	opts := services.ListOptions{
		Status:   c.Query("status"),
		Category: c.Query("category"),
		SortBy:   c.Query("sortBy"),
		Limit:    c.QueryInt("limit"),
	}

	if err := h.validate.Struct(opts); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid listing parameters", err)
	}

	articles, err := h.articleService.List(c.Context(), opts)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list articles", err)
	}

	return utils.SuccessResponse(c, "Articles retrieved", articles)
}

// ListPaginated handles GET /api/v1/articles/paged
func (h *ArticleHandler) ListPaginated(c *fiber.Ctx) error {
	opts := services.ListOptions{
		Status:   c.Query("status"),
		Category: c.Query("category"),
		SortBy:   c.Query("sortBy"),
	}
	page := services.PaginationOptions{
		NumItems: c.QueryInt("numItems", 20),
		Cursor:   c.Query("cursor"),
	}

	if err := h.validate.Struct(opts); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid listing parameters", err)
	}
	if err := h.validate.Struct(page); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid pagination parameters", err)
	}

	result, err := h.articleService.ListPaginated(c.Context(), opts, page)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list articles", err)
	}

	return utils.SuccessResponse(c, "Articles retrieved", result)
}

// Get handles GET /api/v1/articles/:slug — the resolver endpoint. A miss is
// a 404, never a 500.
func (h *ArticleHandler) Get(c *fiber.Ctx) error {
	slug := c.Params("slug")

	article, err := h.articleService.Resolve(c.Context(), slug)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to resolve article", err)
	}
	if article == nil {
		return utils.NotFoundResponse(c, "Article not found")
	}

	return utils.SuccessResponse(c, "Article retrieved", article)
}

// Related handles GET /api/v1/articles/:slug/related
func (h *ArticleHandler) Related(c *fiber.Ctx) error {
	opts := services.RelatedOptions{
		Slug:  c.Params("slug"),
		Limit: c.QueryInt("limit"),
	}

	if tags := c.Query("tags"); tags != "" {
		for _, tag := range strings.Split(tags, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				opts.Tags = append(opts.Tags, tag)
			}
		}
	}

	if category := c.Query("categoryId"); category != "" {
		id, err := uuid.Parse(category)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid category id", err)
		}
		opts.CategoryID = &id
	}

	articles, err := h.articleService.ListRelated(c.Context(), opts)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list related articles", err)
	}

	return utils.SuccessResponse(c, "Related articles retrieved", articles)
}

// View handles POST /api/v1/articles/:slug/view. A miss is a silent no-op so
// the client can fire and forget.
func (h *ArticleHandler) View(c *fiber.Ctx) error {
	slug := c.Params("slug")

	if err := h.articleService.IncrementView(c.Context(), slug); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to record view", err)
	}

	return utils.SuccessResponse(c, "View recorded", fiber.Map{"slug": slug})
}
