package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/Kimnjuki/faceless-sub001/domain/dto"
	"github.com/Kimnjuki/faceless-sub001/domain/repositories"
	"github.com/Kimnjuki/faceless-sub001/domain/services"
	"github.com/Kimnjuki/faceless-sub001/infrastructure/worker"
	"github.com/Kimnjuki/faceless-sub001/pkg/utils"
)

// AdminHandler exposes the administrative mutations: article import, publish
// repair, bulk clear, manual ingestion triggering and the ingested-news view.
type AdminHandler struct {
	articleService services.ArticleService
	newsItemRepo   repositories.NewsItemRepository
	ingestWorker   *worker.IngestWorker
	validate       *validator.Validate
}

func NewAdminHandler(
	articleService services.ArticleService,
	newsItemRepo repositories.NewsItemRepository,
	ingestWorker *worker.IngestWorker,
) *AdminHandler {
	return &AdminHandler{
		articleService: articleService,
		newsItemRepo:   newsItemRepo,
		ingestWorker:   ingestWorker,
		validate:       validator.New(),
	}
}

// ImportArticlesRequest is the request body for bulk article import
type ImportArticlesRequest struct {
	Articles []services.ArticleInput `json:"articles" validate:"required,min=1,dive"`
}

// ImportArticles handles POST /api/v1/admin/articles/import
func (h *AdminHandler) ImportArticles(c *fiber.Ctx) error {
	var req ImportArticlesRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	if err := h.validate.Struct(req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid import payload", err)
	}

	imported, err := h.articleService.Import(c.Context(), req.Articles)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Import failed", err)
	}

	return utils.SuccessResponse(c, "Articles imported", fiber.Map{"imported": imported})
}

// RepairPublished handles POST /api/v1/admin/articles/repair-published
func (h *AdminHandler) RepairPublished(c *fiber.Ctx) error {
	repaired, err := h.articleService.RepairPublishedAt(c.Context())
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Repair failed", err)
	}

	return utils.SuccessResponse(c, "Publish times repaired", fiber.Map{"repaired": repaired})
}

// ClearArticles handles DELETE /api/v1/admin/articles
func (h *AdminHandler) ClearArticles(c *fiber.Ctx) error {
	deleted, err := h.articleService.ClearAll(c.Context())
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Clear failed", err)
	}

	return utils.SuccessResponse(c, "Articles cleared", fiber.Map{"deleted": deleted})
}

// TriggerIngest handles POST /api/v1/admin/ingest/run. The run happens on
// the worker goroutine; this only queues it.
func (h *AdminHandler) TriggerIngest(c *fiber.Ctx) error {
	h.ingestWorker.Trigger()
	return utils.SuccessResponse(c, "Ingestion run queued", nil)
}

// IngestStatus handles GET /api/v1/admin/ingest/status
func (h *AdminHandler) IngestStatus(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, "Ingest status", fiber.Map{
		"worker_running": h.ingestWorker.IsRunning(),
		"last_result":    h.ingestWorker.LastResult(),
	})
}

// ListNews handles GET /api/v1/admin/news
func (h *AdminHandler) ListNews(c *fiber.Ctx) error {
	offset := c.QueryInt("offset", 0)
	limit := c.QueryInt("limit", 50)
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	items, total, err := h.newsItemRepo.List(c.Context(), offset, limit)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list news items", err)
	}

	responses := make([]dto.NewsItemResponse, 0, len(items))
	for i := range items {
		responses = append(responses, *dto.NewsItemToResponse(&items[i]))
	}

	return utils.SuccessResponse(c, "News items retrieved", fiber.Map{
		"items": responses,
		"total": total,
	})
}
