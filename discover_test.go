package pocketcast

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategories(t *testing.T) {
	fake := newFakeAPI(t)
	client := newTestClient(t, fake)

	categories, err := client.Categories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Technology", categories[0].Name)
	assert.Contains(t, categories[0].Source, "[regionCode]")
}

func TestCategoryByName(t *testing.T) {
	fake := newFakeAPI(t)
	client := newTestClient(t, fake)
	ctx := context.Background()

	category, err := client.CategoryByName(ctx, "tEcHnOlOgY")
	require.NoError(t, err)
	assert.Equal(t, "Technology", category.Name)

	_, err = client.CategoryByName(ctx, "Sports")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCategoryPodcastsSubstitutesRegion(t *testing.T) {
	fake := newFakeAPI(t)
	client := newTestClient(t, fake)
	ctx := context.Background()

	category, err := client.CategoryByName(ctx, "Technology")
	require.NoError(t, err)

	podcasts, err := client.CategoryPodcasts(ctx, category, "de")
	require.NoError(t, err)
	require.Len(t, podcasts, 1)
	assert.Equal(t, "Go Time (de chart)", podcasts[0].Title)

	// An empty region falls back to the default.
	podcasts, err = client.CategoryPodcasts(ctx, category, "")
	require.NoError(t, err)
	require.Len(t, podcasts, 1)
	assert.Equal(t, "Go Time (us chart)", podcasts[0].Title)
}

func TestCuratedLists(t *testing.T) {
	fake := newFakeAPI(t)
	client := newTestClient(t, fake)
	ctx := context.Background()

	type tTestCase struct {
		name string
		call func() ([]Podcast, error)
		path string
	}
	testCases := []tTestCase{
		{"trending", func() ([]Podcast, error) { return client.Trending(ctx) }, "/trending.json"},
		{"popular", func() ([]Podcast, error) { return client.Popular(ctx) }, "/popular.json"},
		{"featured", func() ([]Podcast, error) { return client.Featured(ctx) }, "/featured.json"},
		{"content", func() ([]Podcast, error) { return client.Content(ctx, "fixture-list") }, "/fixture-list.json"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			podcasts, err := testCase.call()
			require.NoError(t, err)
			require.Len(t, podcasts, 1)
			assert.Equal(t, "Radiolab", podcasts[0].Title)
			assert.Equal(t, 1, fake.callCount(testCase.path))
		})
	}
}

func TestContentEmptyListID(t *testing.T) {
	fake := newFakeAPI(t)
	client := newTestClient(t, fake)

	_, err := client.Content(context.Background(), "  ")
	require.Error(t, err)
}

func TestNetworksIsEmpty(t *testing.T) {
	fake := newFakeAPI(t)
	client := newTestClient(t, fake)

	networks, err := client.Networks(context.Background())
	require.NoError(t, err)
	assert.Empty(t, networks)
}
