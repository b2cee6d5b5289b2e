package serviceimpl

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kimnjuki/faceless-sub001/domain/models"
	"github.com/Kimnjuki/faceless-sub001/domain/services"
)

// In-memory repository fakes. Persisted order is slice order.

type fakeArticleRepo struct {
	articles []models.Article
	updates  []models.Article
}

func (f *fakeArticleRepo) Create(_ context.Context, article *models.Article) error {
	f.articles = append(f.articles, *article)
	return nil
}

func (f *fakeArticleRepo) CreateBatch(_ context.Context, articles []*models.Article) error {
	for _, article := range articles {
		f.articles = append(f.articles, *article)
	}
	return nil
}

func (f *fakeArticleRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Article, error) {
	for i := range f.articles {
		if f.articles[i].ID == id {
			article := f.articles[i]
			return &article, nil
		}
	}
	return nil, nil
}

func (f *fakeArticleRepo) GetBySlug(_ context.Context, slug string) ([]models.Article, error) {
	var matched []models.Article
	for _, article := range f.articles {
		if article.Slug == slug {
			matched = append(matched, article)
		}
	}
	return matched, nil
}

func (f *fakeArticleRepo) GetByLegacyID(_ context.Context, legacyID string) ([]models.Article, error) {
	var matched []models.Article
	for _, article := range f.articles {
		if article.LegacyID == legacyID {
			matched = append(matched, article)
		}
	}
	return matched, nil
}

func (f *fakeArticleRepo) ListByStatus(_ context.Context, status models.ArticleStatus) ([]models.Article, error) {
	var matched []models.Article
	for _, article := range f.articles {
		if article.Status == status {
			matched = append(matched, article)
		}
	}
	return matched, nil
}

func (f *fakeArticleRepo) ListAll(_ context.Context) ([]models.Article, error) {
	return append([]models.Article(nil), f.articles...), nil
}

func (f *fakeArticleRepo) Update(_ context.Context, article *models.Article) error {
	f.updates = append(f.updates, *article)
	for i := range f.articles {
		if f.articles[i].ID == article.ID {
			f.articles[i] = *article
			return nil
		}
	}
	return nil
}

func (f *fakeArticleRepo) DeleteAll(_ context.Context) (int64, error) {
	deleted := int64(len(f.articles))
	f.articles = nil
	return deleted, nil
}

type fakeTagRepo struct {
	tags map[uuid.UUID][]string
}

func newFakeTagRepo() *fakeTagRepo {
	return &fakeTagRepo{tags: map[uuid.UUID][]string{}}
}

func (f *fakeTagRepo) CreateBatch(_ context.Context, tags []*models.ArticleTag) error {
	for _, tag := range tags {
		f.tags[tag.ArticleID] = append(f.tags[tag.ArticleID], tag.Tag)
	}
	return nil
}

func (f *fakeTagRepo) ListByArticle(_ context.Context, articleID uuid.UUID) ([]string, error) {
	return append([]string(nil), f.tags[articleID]...), nil
}

func (f *fakeTagRepo) DeleteByArticle(_ context.Context, articleID uuid.UUID) (int64, error) {
	deleted := int64(len(f.tags[articleID]))
	delete(f.tags, articleID)
	return deleted, nil
}

type fakeCategoryRepo struct {
	categories []models.Category
}

func (f *fakeCategoryRepo) Create(_ context.Context, category *models.Category) error {
	f.categories = append(f.categories, *category)
	return nil
}

func (f *fakeCategoryRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Category, error) {
	for i := range f.categories {
		if f.categories[i].ID == id {
			category := f.categories[i]
			return &category, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) GetBySlug(_ context.Context, slug string) (*models.Category, error) {
	for i := range f.categories {
		if f.categories[i].Slug == slug {
			category := f.categories[i]
			return &category, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) List(_ context.Context) ([]models.Category, error) {
	return append([]models.Category(nil), f.categories...), nil
}

type fakeProfileRepo struct {
	profiles []models.Profile
}

func (f *fakeProfileRepo) Create(_ context.Context, profile *models.Profile) error {
	f.profiles = append(f.profiles, *profile)
	return nil
}

func (f *fakeProfileRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Profile, error) {
	for i := range f.profiles {
		if f.profiles[i].ID == id {
			profile := f.profiles[i]
			return &profile, nil
		}
	}
	return nil, nil
}

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

type serviceFixture struct {
	articleRepo  *fakeArticleRepo
	tagRepo      *fakeTagRepo
	categoryRepo *fakeCategoryRepo
	profileRepo  *fakeProfileRepo
	service      *ArticleServiceImpl
}

func newServiceFixture() *serviceFixture {
	articleRepo := &fakeArticleRepo{}
	tagRepo := newFakeTagRepo()
	categoryRepo := &fakeCategoryRepo{}
	profileRepo := &fakeProfileRepo{}

	service := NewArticleService(articleRepo, tagRepo, categoryRepo, profileRepo).(*ArticleServiceImpl)
	service.now = func() time.Time { return testNow }

	return &serviceFixture{
		articleRepo:  articleRepo,
		tagRepo:      tagRepo,
		categoryRepo: categoryRepo,
		profileRepo:  profileRepo,
		service:      service,
	}
}

func publishedArticle(slug string, publishedAt time.Time) models.Article {
	return models.Article{
		ID:          uuid.New(),
		Slug:        slug,
		Title:       slug,
		Status:      models.ArticleStatusPublished,
		PublishedAt: &publishedAt,
	}
}

func TestResolveEmptyInput(t *testing.T) {
	f := newServiceFixture()

	for _, input := range []string{"", "   "} {
		resp, err := f.service.Resolve(context.Background(), input)
		require.NoError(t, err)
		assert.Nil(t, resp)
	}
}

func TestResolveMissReturnsNilNil(t *testing.T) {
	f := newServiceFixture()
	f.articleRepo.articles = []models.Article{publishedArticle("other-slug", testNow.Add(-time.Hour))}

	resp, err := f.service.Resolve(context.Background(), "no-such-slug")
	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestResolvePrefersVisibleAmongDuplicateSlugs(t *testing.T) {
	f := newServiceFixture()

	draft := models.Article{ID: uuid.New(), Slug: "dup", Title: "draft copy", Status: models.ArticleStatusDraft}
	visible := publishedArticle("dup", testNow.Add(-time.Hour))
	f.articleRepo.articles = []models.Article{draft, visible}

	resp, err := f.service.Resolve(context.Background(), "dup")
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, visible.ID, resp.ID)
}

func TestResolveFallsBackToFirstWhenNoneVisible(t *testing.T) {
	f := newServiceFixture()

	first := models.Article{ID: uuid.New(), Slug: "dup", Title: "first", Status: models.ArticleStatusDraft}
	second := models.Article{ID: uuid.New(), Slug: "dup", Title: "second", Status: models.ArticleStatusArchived}
	f.articleRepo.articles = []models.Article{first, second}

	resp, err := f.service.Resolve(context.Background(), "dup")
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, first.ID, resp.ID)
}

func TestResolveByLegacyID(t *testing.T) {
	f := newServiceFixture()

	legacy := "a1b2c3d4-e5f6-7890-abcd-ef1234567890"
	article := publishedArticle("current-slug", testNow.Add(-time.Hour))
	article.LegacyID = legacy
	f.articleRepo.articles = []models.Article{article}

	resp, err := f.service.Resolve(context.Background(), legacy)
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, article.ID, resp.ID)
	assert.Equal(t, "current-slug", resp.Slug)
}

func TestResolveCompactIDShortCircuit(t *testing.T) {
	f := newServiceFixture()

	article := publishedArticle("some-slug", testNow.Add(-time.Hour))
	f.articleRepo.articles = []models.Article{article}

	compact := strings.ReplaceAll(article.ID.String(), "-", "")
	resp, err := f.service.Resolve(context.Background(), compact)
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, article.ID, resp.ID)
}

// A compact id of a non-visible article does not short-circuit; the literal
// falls through the slug cascade and misses.
func TestResolveCompactIDOfDraftFallsThrough(t *testing.T) {
	f := newServiceFixture()

	draft := models.Article{ID: uuid.New(), Slug: "hidden", Title: "hidden", Status: models.ArticleStatusDraft}
	f.articleRepo.articles = []models.Article{draft}

	compact := strings.ReplaceAll(draft.ID.String(), "-", "")
	resp, err := f.service.Resolve(context.Background(), compact)
	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestResolveEnrichesWithCategoryAuthorTags(t *testing.T) {
	f := newServiceFixture()

	category := models.Category{ID: uuid.New(), Name: "Growth", Slug: "growth"}
	author := models.Profile{ID: uuid.New(), FullName: "Dana Writer"}
	f.categoryRepo.categories = []models.Category{category}
	f.profileRepo.profiles = []models.Profile{author}

	article := publishedArticle("enriched", testNow.Add(-time.Hour))
	article.CategoryID = &category.ID
	article.AuthorID = &author.ID
	f.articleRepo.articles = []models.Article{article}
	f.tagRepo.tags[article.ID] = []string{"seo", "growth"}

	resp, err := f.service.Resolve(context.Background(), "enriched")
	require.NoError(t, err)
	require.NotNil(t, resp)
	require.NotNil(t, resp.Category)
	assert.Equal(t, "Growth", resp.Category.Name)
	require.NotNil(t, resp.Author)
	assert.Equal(t, "Dana Writer", resp.Author.FullName)
	assert.Equal(t, []string{"seo", "growth"}, resp.Tags)
}

// A dangling category reference and an untagged article both degrade to
// null/empty, never to an error.
func TestResolveAbsentReferencesAreNull(t *testing.T) {
	f := newServiceFixture()

	danglingCategory := uuid.New()
	article := publishedArticle("bare", testNow.Add(-time.Hour))
	article.CategoryID = &danglingCategory
	f.articleRepo.articles = []models.Article{article}

	resp, err := f.service.Resolve(context.Background(), "bare")
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Nil(t, resp.Category)
	assert.Nil(t, resp.Author)
	assert.NotNil(t, resp.Tags)
	assert.Empty(t, resp.Tags)
}

func TestListIncludesNullPublishTimeExcludesFuture(t *testing.T) {
	f := newServiceFixture()

	noPublishTime := models.Article{ID: uuid.New(), Slug: "no-time", Title: "no-time", Status: models.ArticleStatusPublished}
	past := publishedArticle("past", testNow.Add(-time.Hour))
	future := publishedArticle("future", testNow.Add(time.Hour))
	draft := models.Article{ID: uuid.New(), Slug: "draft", Title: "draft", Status: models.ArticleStatusDraft}
	f.articleRepo.articles = []models.Article{noPublishTime, past, future, draft}

	results, err := f.service.List(context.Background(), services.ListOptions{})
	require.NoError(t, err)

	slugs := make([]string, 0, len(results))
	for _, result := range results {
		slugs = append(slugs, result.Slug)
	}
	assert.ElementsMatch(t, []string{"no-time", "past"}, slugs)
}

func TestListSortOrders(t *testing.T) {
	f := newServiceFixture()

	a := publishedArticle("alpha", testNow.Add(-3*time.Hour))
	a.ViewCount = 10
	a.ShareCount = 1
	b := publishedArticle("bravo", testNow.Add(-1*time.Hour))
	b.ViewCount = 30
	b.ShareCount = 2
	c := publishedArticle("charlie", testNow.Add(-2*time.Hour))
	c.ViewCount = 20
	c.ShareCount = 3
	f.articleRepo.articles = []models.Article{a, b, c}

	tests := []struct {
		sortBy string
		want   []string
	}{
		{services.SortNewest, []string{"bravo", "charlie", "alpha"}},
		{services.SortViews, []string{"bravo", "charlie", "alpha"}},
		{services.SortShares, []string{"charlie", "bravo", "alpha"}},
		{services.SortTitle, []string{"alpha", "bravo", "charlie"}},
	}

	for _, tt := range tests {
		t.Run(tt.sortBy, func(t *testing.T) {
			results, err := f.service.List(context.Background(), services.ListOptions{SortBy: tt.sortBy})
			require.NoError(t, err)

			got := make([]string, 0, len(results))
			for _, result := range results {
				got = append(got, result.Slug)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestListCategoryFilter(t *testing.T) {
	f := newServiceFixture()

	categoryID := uuid.New()
	inCategory := publishedArticle("in-category", testNow.Add(-time.Hour))
	inCategory.CategoryID = &categoryID
	uncategorized := publishedArticle("uncategorized-one", testNow.Add(-time.Hour))
	f.articleRepo.articles = []models.Article{inCategory, uncategorized}

	results, err := f.service.List(context.Background(), services.ListOptions{Category: categoryID.String()})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "in-category", results[0].Slug)

	results, err = f.service.List(context.Background(), services.ListOptions{Category: services.CategoryUncategorized})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "uncategorized-one", results[0].Slug)

	results, err = f.service.List(context.Background(), services.ListOptions{Category: "not-a-uuid"})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestListStatusFilterSkipsVisibilityForDrafts(t *testing.T) {
	f := newServiceFixture()

	draft := models.Article{ID: uuid.New(), Slug: "draft", Title: "draft", Status: models.ArticleStatusDraft}
	published := publishedArticle("published", testNow.Add(-time.Hour))
	f.articleRepo.articles = []models.Article{draft, published}

	results, err := f.service.List(context.Background(), services.ListOptions{Status: string(models.ArticleStatusDraft)})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "draft", results[0].Slug)
}

// Walking the cursor chain until isDone must visit every matching article
// exactly once.
func TestListPaginatedExhaustive(t *testing.T) {
	f := newServiceFixture()

	total := 7
	for i := 0; i < total; i++ {
		f.articleRepo.articles = append(f.articleRepo.articles,
			publishedArticle("article-"+string(rune('a'+i)), testNow.Add(-time.Duration(i+1)*time.Hour)))
	}

	seen := map[string]int{}
	cursor := ""
	pages := 0
	for {
		page, err := f.service.ListPaginated(context.Background(),
			services.ListOptions{},
			services.PaginationOptions{NumItems: 3, Cursor: cursor})
		require.NoError(t, err)

		for _, item := range page.Page {
			seen[item.Slug]++
		}
		pages++
		if page.IsDone {
			break
		}
		cursor = page.ContinueCursor
	}

	assert.Equal(t, 3, pages)
	assert.Len(t, seen, total)
	for slug, count := range seen {
		assert.Equal(t, 1, count, "slug %s seen more than once", slug)
	}
}

func TestListPaginatedCursorEdgeCases(t *testing.T) {
	f := newServiceFixture()
	f.articleRepo.articles = []models.Article{
		publishedArticle("one", testNow.Add(-time.Hour)),
		publishedArticle("two", testNow.Add(-2*time.Hour)),
	}

	// A garbage cursor starts from the beginning.
	page, err := f.service.ListPaginated(context.Background(),
		services.ListOptions{},
		services.PaginationOptions{NumItems: 10, Cursor: "garbage"})
	require.NoError(t, err)
	assert.Len(t, page.Page, 2)
	assert.True(t, page.IsDone)
	assert.Equal(t, "2", page.ContinueCursor)

	// A cursor past the end yields an empty, done page.
	page, err = f.service.ListPaginated(context.Background(),
		services.ListOptions{},
		services.PaginationOptions{NumItems: 10, Cursor: "99"})
	require.NoError(t, err)
	assert.Empty(t, page.Page)
	assert.True(t, page.IsDone)
}

func TestListRelatedRanksByTagOverlap(t *testing.T) {
	f := newServiceFixture()

	twoOverlap := publishedArticle("two-overlap", testNow.Add(-3*time.Hour))
	oneOverlap := publishedArticle("one-overlap", testNow.Add(-time.Hour))
	zeroOverlap := publishedArticle("zero-overlap", testNow.Add(-2*time.Hour))
	source := publishedArticle("source", testNow.Add(-4*time.Hour))
	f.articleRepo.articles = []models.Article{source, oneOverlap, zeroOverlap, twoOverlap}

	f.tagRepo.tags[twoOverlap.ID] = []string{"go", "backend", "unrelated"}
	f.tagRepo.tags[oneOverlap.ID] = []string{"go", "frontend"}
	f.tagRepo.tags[zeroOverlap.ID] = []string{"cooking"}
	f.tagRepo.tags[source.ID] = []string{"go", "backend"}

	results, err := f.service.ListRelated(context.Background(), services.RelatedOptions{
		Slug: "source",
		Tags: []string{"go", "backend"},
	})
	require.NoError(t, err)

	got := make([]string, 0, len(results))
	for _, result := range results {
		got = append(got, result.Slug)
	}
	assert.Equal(t, []string{"two-overlap", "one-overlap"}, got)
}

func TestListRelatedNoTagsFallsBackToRecency(t *testing.T) {
	f := newServiceFixture()

	newest := publishedArticle("newest", testNow.Add(-time.Hour))
	older := publishedArticle("older", testNow.Add(-2*time.Hour))
	oldest := publishedArticle("oldest", testNow.Add(-3*time.Hour))
	source := publishedArticle("source", testNow.Add(-4*time.Hour))
	f.articleRepo.articles = []models.Article{oldest, newest, source, older}

	results, err := f.service.ListRelated(context.Background(), services.RelatedOptions{
		Slug:  "source",
		Limit: 2,
	})
	require.NoError(t, err)

	got := make([]string, 0, len(results))
	for _, result := range results {
		got = append(got, result.Slug)
	}
	assert.Equal(t, []string{"newest", "older"}, got)
}

func TestListRelatedCategoryScope(t *testing.T) {
	f := newServiceFixture()

	categoryID := uuid.New()
	sameCategory := publishedArticle("same-category", testNow.Add(-time.Hour))
	sameCategory.CategoryID = &categoryID
	otherCategory := publishedArticle("other-category", testNow.Add(-time.Hour))
	f.articleRepo.articles = []models.Article{sameCategory, otherCategory}

	results, err := f.service.ListRelated(context.Background(), services.RelatedOptions{
		Slug:       "source",
		CategoryID: &categoryID,
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "same-category", results[0].Slug)
}

func TestIncrementViewBumpsCounter(t *testing.T) {
	f := newServiceFixture()

	article := publishedArticle("counted", testNow.Add(-time.Hour))
	article.ViewCount = 41
	f.articleRepo.articles = []models.Article{article}

	err := f.service.IncrementView(context.Background(), "counted")
	require.NoError(t, err)

	require.Len(t, f.articleRepo.updates, 1)
	assert.Equal(t, int64(42), f.articleRepo.updates[0].ViewCount)
}

func TestIncrementViewMissIsNoOp(t *testing.T) {
	f := newServiceFixture()

	err := f.service.IncrementView(context.Background(), "no-such-slug")
	require.NoError(t, err)
	assert.Empty(t, f.articleRepo.updates)
}

func TestImportCreatesArticlesAndTags(t *testing.T) {
	f := newServiceFixture()

	publishedMs := testNow.Add(-time.Hour).UnixMilli()
	count, err := f.service.Import(context.Background(), []services.ArticleInput{
		{
			Slug:        "imported",
			Title:       "Imported",
			Status:      "published",
			PublishedAt: &publishedMs,
			Tags:        []string{"migration"},
		},
		{
			Slug:  "defaulted",
			Title: "Defaulted",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	require.Len(t, f.articleRepo.articles, 2)

	imported := f.articleRepo.articles[0]
	assert.Equal(t, models.ArticleStatusPublished, imported.Status)
	require.NotNil(t, imported.PublishedAt)
	assert.Equal(t, publishedMs, imported.PublishedAt.UnixMilli())
	assert.Equal(t, []string{"migration"}, f.tagRepo.tags[imported.ID])

	defaulted := f.articleRepo.articles[1]
	assert.Equal(t, models.ArticleStatusDraft, defaulted.Status)
	assert.Nil(t, defaulted.PublishedAt)
}

func TestRepairPublishedAt(t *testing.T) {
	f := newServiceFixture()

	missing := models.Article{ID: uuid.New(), Slug: "missing", Title: "missing", Status: models.ArticleStatusPublished}
	stuck := publishedArticle("stuck", testNow.Add(time.Hour))
	fine := publishedArticle("fine", testNow.Add(-time.Hour))
	draft := models.Article{ID: uuid.New(), Slug: "draft", Title: "draft", Status: models.ArticleStatusDraft}
	f.articleRepo.articles = []models.Article{missing, stuck, fine, draft}

	repaired, err := f.service.RepairPublishedAt(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, repaired)

	for _, update := range f.articleRepo.updates {
		require.NotNil(t, update.PublishedAt)
		assert.Equal(t, testNow, *update.PublishedAt)
	}

	// The already-correct row was left alone.
	current, err := f.articleRepo.GetByID(context.Background(), fine.ID)
	require.NoError(t, err)
	assert.Equal(t, fine.PublishedAt.Unix(), current.PublishedAt.Unix())
}

func TestClearAll(t *testing.T) {
	f := newServiceFixture()
	f.articleRepo.articles = []models.Article{
		publishedArticle("one", testNow),
		publishedArticle("two", testNow),
	}

	deleted, err := f.service.ClearAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)
	assert.Empty(t, f.articleRepo.articles)
}
