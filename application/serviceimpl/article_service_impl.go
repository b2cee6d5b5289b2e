package serviceimpl

import (
	"context"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Kimnjuki/faceless-sub001/domain/dto"
	"github.com/Kimnjuki/faceless-sub001/domain/models"
	"github.com/Kimnjuki/faceless-sub001/domain/repositories"
	"github.com/Kimnjuki/faceless-sub001/domain/services"
	"github.com/Kimnjuki/faceless-sub001/pkg/logger"
)

const (
	defaultListLimit    = 50
	defaultRelatedLimit = 5

	// Candidate pool cap when ranking by tag overlap. A hard bound, not
	// configurable.
	relatedTagPoolSize = 20
)

// legacyUUIDPattern matches the hyphenated 8-4-4-4-12 hex form preserved
// from the pre-migration system.
var legacyUUIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

type ArticleServiceImpl struct {
	articleRepo  repositories.ArticleRepository
	tagRepo      repositories.TagRepository
	categoryRepo repositories.CategoryRepository
	profileRepo  repositories.ProfileRepository

	// now is swappable so publish-boundary behavior is testable.
	now func() time.Time
}

func NewArticleService(
	articleRepo repositories.ArticleRepository,
	tagRepo repositories.TagRepository,
	categoryRepo repositories.CategoryRepository,
	profileRepo repositories.ProfileRepository,
) services.ArticleService {
	return &ArticleServiceImpl{
		articleRepo:  articleRepo,
		tagRepo:      tagRepo,
		categoryRepo: categoryRepo,
		profileRepo:  profileRepo,
		now:          time.Now,
	}
}

// looksLikeArticleID reports whether the input has the compact primary-key
// shape: alphanumeric, at least 20 characters, no hyphens. The hyphenless
// form of a UUID parses directly to the key; anything else falls through to
// slug resolution.
func looksLikeArticleID(s string) bool {
	if len(s) < 20 {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		default:
			return false
		}
	}
	return true
}

func looksLikeLegacyUUID(s string) bool {
	return legacyUUIDPattern.MatchString(s)
}

// Resolve maps a slug-like string to at most one enriched article. The
// lookup cascade is: id-shape short-circuit, exact slug, legacy UUID, full
// scan. Absence is (nil, nil); only storage failures return an error.
func (s *ArticleServiceImpl) Resolve(ctx context.Context, slug string) (*dto.ArticleResponse, error) {
	input := strings.TrimSpace(slug)
	if input == "" {
		return nil, nil
	}

	if looksLikeArticleID(input) {
		// A malformed or unknown id is swallowed and falls through to slug
		// resolution of the same literal string.
		if id, err := uuid.Parse(input); err == nil {
			article, err := s.articleRepo.GetByID(ctx, id)
			if err != nil {
				return nil, err
			}
			if article != nil && article.VisibleAt(s.now()) {
				return s.enrich(ctx, article)
			}
		}
	}

	candidates, err := s.resolveCandidates(ctx, input)
	if err != nil {
		return nil, err
	}

	pick := pickCandidate(candidates, s.now())
	if pick == nil {
		return nil, nil
	}

	return s.enrich(ctx, pick)
}

type resolveStrategy func(ctx context.Context, input string) ([]models.Article, error)

// resolveCandidates walks the ordered strategies and returns the first
// non-empty candidate set.
func (s *ArticleServiceImpl) resolveCandidates(ctx context.Context, input string) ([]models.Article, error) {
	strategies := []resolveStrategy{
		s.candidatesBySlug,
		s.candidatesByLegacyID,
		s.candidatesByScan,
	}

	for _, strategy := range strategies {
		candidates, err := strategy(ctx, input)
		if err != nil {
			return nil, err
		}
		if len(candidates) > 0 {
			return candidates, nil
		}
	}

	return nil, nil
}

func (s *ArticleServiceImpl) candidatesBySlug(ctx context.Context, input string) ([]models.Article, error) {
	return s.articleRepo.GetBySlug(ctx, input)
}

func (s *ArticleServiceImpl) candidatesByLegacyID(ctx context.Context, input string) ([]models.Article, error) {
	if !looksLikeLegacyUUID(input) {
		return nil, nil
	}
	return s.articleRepo.GetByLegacyID(ctx, input)
}

// candidatesByScan re-checks the slug over a full read. Kept so a row missed
// by a lagging index still resolves; the cascade tolerates eventual
// consistency instead of failing.
func (s *ArticleServiceImpl) candidatesByScan(ctx context.Context, input string) ([]models.Article, error) {
	all, err := s.articleRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	var matched []models.Article
	for _, article := range all {
		if article.Slug == input {
			matched = append(matched, article)
		}
	}
	return matched, nil
}

// pickCandidate prefers the first visible candidate and otherwise falls back
// to the first in persisted order, so a draft previewed via direct link
// still resolves to something.
func pickCandidate(candidates []models.Article, now time.Time) *models.Article {
	if len(candidates) == 0 {
		return nil
	}
	for i := range candidates {
		if candidates[i].VisibleAt(now) {
			return &candidates[i]
		}
	}
	return &candidates[0]
}

// enrich attaches category, author and tags via independent lookups. Absent
// references resolve to null; only storage failures surface.
func (s *ArticleServiceImpl) enrich(ctx context.Context, article *models.Article) (*dto.ArticleResponse, error) {
	var category *models.Category
	if article.CategoryID != nil {
		var err error
		category, err = s.categoryRepo.GetByID(ctx, *article.CategoryID)
		if err != nil {
			return nil, err
		}
	}

	var author *models.Profile
	if article.AuthorID != nil {
		var err error
		author, err = s.profileRepo.GetByID(ctx, *article.AuthorID)
		if err != nil {
			return nil, err
		}
	}

	tags, err := s.tagRepo.ListByArticle(ctx, article.ID)
	if err != nil {
		return nil, err
	}

	return dto.ArticleToResponse(article, category, author, tags), nil
}

func (s *ArticleServiceImpl) enrichAll(ctx context.Context, articles []models.Article) ([]dto.ArticleResponse, error) {
	responses := make([]dto.ArticleResponse, 0, len(articles))
	for i := range articles {
		resp, err := s.enrich(ctx, &articles[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

// collect reads the full status-matched set and applies the visibility and
// category filters plus the requested sort in memory. The status read is
// deliberate: the composite publish-time index skips rows with a null
// publish time, which freshly imported rows have.
func (s *ArticleServiceImpl) collect(ctx context.Context, opts services.ListOptions) ([]models.Article, error) {
	status := models.ArticleStatus(opts.Status)
	if opts.Status == "" {
		status = models.ArticleStatusPublished
	}

	articles, err := s.articleRepo.ListByStatus(ctx, status)
	if err != nil {
		return nil, err
	}

	now := s.now()
	filtered := make([]models.Article, 0, len(articles))
	for _, article := range articles {
		if status == models.ArticleStatusPublished && !article.VisibleAt(now) {
			continue
		}
		if !matchesCategory(&article, opts.Category) {
			continue
		}
		filtered = append(filtered, article)
	}

	sortArticles(filtered, opts.SortBy)
	return filtered, nil
}

func matchesCategory(article *models.Article, category string) bool {
	if category == "" {
		return true
	}
	if category == services.CategoryUncategorized {
		return article.CategoryID == nil
	}
	id, err := uuid.Parse(category)
	if err != nil {
		return false
	}
	return article.CategoryID != nil && *article.CategoryID == id
}

func sortArticles(articles []models.Article, sortBy string) {
	switch sortBy {
	case services.SortViews:
		sort.SliceStable(articles, func(i, j int) bool {
			return articles[i].ViewCount > articles[j].ViewCount
		})
	case services.SortShares:
		sort.SliceStable(articles, func(i, j int) bool {
			return articles[i].ShareCount > articles[j].ShareCount
		})
	case services.SortTitle:
		sort.SliceStable(articles, func(i, j int) bool {
			return articles[i].Title < articles[j].Title
		})
	default: // newest
		sort.SliceStable(articles, func(i, j int) bool {
			return articles[i].SortTime().After(articles[j].SortTime())
		})
	}
}

func (s *ArticleServiceImpl) List(ctx context.Context, opts services.ListOptions) ([]dto.ArticleResponse, error) {
	articles, err := s.collect(ctx, opts)
	if err != nil {
		return nil, err
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if len(articles) > limit {
		articles = articles[:limit]
	}

	return s.enrichAll(ctx, articles)
}

// ListPaginated materializes the whole filtered-and-sorted set and pages it
// with a decimal offset cursor. O(total matching rows) per call, acceptable
// at this content volume.
func (s *ArticleServiceImpl) ListPaginated(ctx context.Context, opts services.ListOptions, page services.PaginationOptions) (*dto.ArticlePage, error) {
	articles, err := s.collect(ctx, opts)
	if err != nil {
		return nil, err
	}

	numItems := page.NumItems
	if numItems <= 0 {
		numItems = defaultListLimit
	}

	offset := 0
	if page.Cursor != "" {
		if parsed, err := strconv.Atoi(page.Cursor); err == nil && parsed > 0 {
			offset = parsed
		}
	}
	if offset > len(articles) {
		offset = len(articles)
	}

	end := offset + numItems
	if end > len(articles) {
		end = len(articles)
	}

	responses, err := s.enrichAll(ctx, articles[offset:end])
	if err != nil {
		return nil, err
	}

	return &dto.ArticlePage{
		Page:           responses,
		IsDone:         end >= len(articles),
		ContinueCursor: strconv.Itoa(end),
	}, nil
}

func (s *ArticleServiceImpl) ListRelated(ctx context.Context, opts services.RelatedOptions) ([]dto.ArticleResponse, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = defaultRelatedLimit
	}

	published, err := s.collect(ctx, services.ListOptions{Status: string(models.ArticleStatusPublished)})
	if err != nil {
		return nil, err
	}

	candidates := make([]models.Article, 0, len(published))
	for _, article := range published {
		if article.Slug == opts.Slug {
			continue
		}
		if opts.CategoryID != nil {
			if article.CategoryID == nil || *article.CategoryID != *opts.CategoryID {
				continue
			}
		}
		candidates = append(candidates, article)
	}

	if len(opts.Tags) == 0 {
		if len(candidates) > limit {
			candidates = candidates[:limit]
		}
		return s.enrichAll(ctx, candidates)
	}

	if len(candidates) > relatedTagPoolSize {
		candidates = candidates[:relatedTagPoolSize]
	}

	type scored struct {
		article models.Article
		overlap int
	}

	queryTags := make(map[string]struct{}, len(opts.Tags))
	for _, tag := range opts.Tags {
		queryTags[tag] = struct{}{}
	}

	var ranked []scored
	for _, candidate := range candidates {
		tags, err := s.tagRepo.ListByArticle(ctx, candidate.ID)
		if err != nil {
			return nil, err
		}
		overlap := 0
		for _, tag := range tags {
			if _, ok := queryTags[tag]; ok {
				overlap++
			}
		}
		if overlap == 0 {
			continue
		}
		ranked = append(ranked, scored{article: candidate, overlap: overlap})
	}

	// Ties keep arrival order; callers must not depend on tie order.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].overlap > ranked[j].overlap
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	result := make([]models.Article, 0, len(ranked))
	for _, entry := range ranked {
		result = append(result, entry.article)
	}
	return s.enrichAll(ctx, result)
}

// IncrementView bumps the view counter of the article resolving from the
// slug. A plain get-then-patch: concurrent increments may lose updates,
// which is accepted for a vanity counter. A miss is a silent no-op.
func (s *ArticleServiceImpl) IncrementView(ctx context.Context, slug string) error {
	candidates, err := s.articleRepo.GetBySlug(ctx, strings.TrimSpace(slug))
	if err != nil {
		return err
	}

	article := pickCandidate(candidates, s.now())
	if article == nil {
		return nil
	}

	article.ViewCount++
	return s.articleRepo.Update(ctx, article)
}

func (s *ArticleServiceImpl) Import(ctx context.Context, inputs []services.ArticleInput) (int, error) {
	imported := 0
	for _, input := range inputs {
		article := &models.Article{
			ID:         uuid.New(),
			LegacyID:   input.LegacyID,
			Slug:       input.Slug,
			Title:      input.Title,
			Content:    input.Content,
			Excerpt:    input.Excerpt,
			Status:     models.ArticleStatus(input.Status),
			CategoryID: input.CategoryID,
			AuthorID:   input.AuthorID,
		}
		if input.Status == "" {
			article.Status = models.ArticleStatusDraft
		}
		if input.PublishedAt != nil {
			publishedAt := time.UnixMilli(*input.PublishedAt)
			article.PublishedAt = &publishedAt
		}

		if err := s.articleRepo.Create(ctx, article); err != nil {
			return imported, err
		}

		if len(input.Tags) > 0 {
			tags := make([]*models.ArticleTag, 0, len(input.Tags))
			for _, tag := range input.Tags {
				tags = append(tags, &models.ArticleTag{ArticleID: article.ID, Tag: tag})
			}
			if err := s.tagRepo.CreateBatch(ctx, tags); err != nil {
				return imported, err
			}
		}

		imported++
	}

	logger.Article("import_completed", "Articles imported", map[string]interface{}{"count": imported})
	return imported, nil
}

// RepairPublishedAt advances a missing or future-stuck publish time to now
// for rows already marked published.
func (s *ArticleServiceImpl) RepairPublishedAt(ctx context.Context) (int, error) {
	articles, err := s.articleRepo.ListByStatus(ctx, models.ArticleStatusPublished)
	if err != nil {
		return 0, err
	}

	now := s.now()
	repaired := 0
	for i := range articles {
		article := &articles[i]
		if article.PublishedAt != nil && !article.PublishedAt.After(now) {
			continue
		}
		publishedAt := now
		article.PublishedAt = &publishedAt
		if err := s.articleRepo.Update(ctx, article); err != nil {
			return repaired, err
		}
		repaired++
	}

	if repaired > 0 {
		logger.Article("publish_repaired", "Repaired publish times", map[string]interface{}{"count": repaired})
	}
	return repaired, nil
}

func (s *ArticleServiceImpl) ClearAll(ctx context.Context) (int64, error) {
	deleted, err := s.articleRepo.DeleteAll(ctx)
	if err != nil {
		return 0, err
	}
	logger.Article("articles_cleared", "All articles deleted", map[string]interface{}{"count": deleted})
	return deleted, nil
}
