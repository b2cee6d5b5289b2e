package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestArticleVisibleAt(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name        string
		status      ArticleStatus
		publishedAt *time.Time
		want        bool
	}{
		{"published with past publish time", ArticleStatusPublished, &past, true},
		{"published at exactly now", ArticleStatusPublished, &now, true},
		{"published with future publish time", ArticleStatusPublished, &future, false},
		{"published with no publish time", ArticleStatusPublished, nil, true},
		{"draft with past publish time", ArticleStatusDraft, &past, false},
		{"archived with past publish time", ArticleStatusArchived, &past, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			article := &Article{Status: tt.status, PublishedAt: tt.publishedAt}
			assert.Equal(t, tt.want, article.VisibleAt(now))
		})
	}
}

// A future-dated article must flip visible once the clock passes its publish
// time, with no other state change.
func TestArticleVisibleAtBecomesVisibleOverTime(t *testing.T) {
	publishAt := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	article := &Article{Status: ArticleStatusPublished, PublishedAt: &publishAt}

	assert.False(t, article.VisibleAt(publishAt.Add(-time.Second)))
	assert.True(t, article.VisibleAt(publishAt))
	assert.True(t, article.VisibleAt(publishAt.Add(time.Second)))
}

func TestArticleSortTime(t *testing.T) {
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	published := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	withPublish := &Article{CreatedAt: created, PublishedAt: &published}
	assert.Equal(t, published, withPublish.SortTime())

	withoutPublish := &Article{CreatedAt: created}
	assert.Equal(t, created, withoutPublish.SortTime())
}
