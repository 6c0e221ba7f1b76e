package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/aladdin-code/addvocate-meeting-summeriser/internal/exchange/domain"
	"github.com/aladdin-code/addvocate-meeting-summeriser/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) ExchangeRepository {
	return NewGormExchangeRepository(testutil.NewSQLiteDB(t, &domain.Exchange{}, &domain.Message{}))
}

func TestCreateAndFindByID_KeepsMessageOrder(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	ex := &domain.Exchange{
		Title: "Kickoff",
		Messages: []domain.Message{
			{Speaker: "Alice", SpeakerID: 1, Text: "first"},
			{Speaker: "Bob", SpeakerID: 2, Text: "second"},
			{Speaker: "Alice", SpeakerID: 1, Text: "third"},
		},
	}
	require.NoError(t, repo.Create(ctx, ex))
	require.NotEmpty(t, ex.ID)

	got, err := repo.FindByID(ctx, ex.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Len(t, got.Messages, 3)
	assert.Equal(t, "first", got.Messages[0].Text)
	assert.Equal(t, "second", got.Messages[1].Text)
	assert.Equal(t, "third", got.Messages[2].Text)
	assert.Equal(t, ex.ID, got.Messages[1].ExchangeID)
	assert.Equal(t, []string{"Alice", "Bob"}, got.Speakers())
}

func TestFindByID_Missing(t *testing.T) {
	got, err := newRepo(t).FindByID(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestList_PagesWithoutMessages(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(ctx, &domain.Exchange{
			Title:    fmt.Sprintf("exchange %d", i),
			Messages: []domain.Message{{Speaker: "S", Text: "hi"}},
		}))
		time.Sleep(2 * time.Millisecond)
	}

	items, total, err := repo.List(ctx, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, items, 2)
	assert.Equal(t, "exchange 2", items[0].Title)
	assert.Equal(t, "exchange 1", items[1].Title)
	assert.Empty(t, items[0].Messages)

	items, total, err = repo.List(ctx, 10, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Empty(t, items)
}

func TestSearchCandidates(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Exchange{
		Title: "Design review",
		Messages: []domain.Message{
			{Speaker: "Alice", Text: "a"},
			{Speaker: "Alice", Text: "b"},
			{Speaker: "", Text: "c"},
		},
	}))
	require.NoError(t, repo.Create(ctx, &domain.Exchange{Title: "Empty"}))

	candidates, err := repo.SearchCandidates(ctx)
	require.NoError(t, err)
	require.Len(t, candidates, 2)

	byTitle := map[string][]string{}
	for _, c := range candidates {
		byTitle[c.Exchange.Title] = c.Speakers
	}
	assert.Equal(t, []string{"Alice"}, byTitle["Design review"])
	assert.Empty(t, byTitle["Empty"])

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}
