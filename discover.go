package pocketcast

import (
	"context"
	"fmt"
	"strings"

	"github.com/thoas/go-funk"
)

const (
	endpointRecommendations = "discover/recommend_episodes"

	categoriesPath = "/discover/json/categories_v2.json"

	// DefaultRegion is the region used for category charts when the
	// caller does not specify one.
	DefaultRegion = "us"

	regionPlaceholder = "[regionCode]"
)

// Recommendations returns episodes the service recommends for the
// account.
func (c *Client) Recommendations(ctx context.Context) ([]Episode, error) {
	return c.episodeList(ctx, endpointRecommendations)
}

// Categories returns the discovery category catalogue.
func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	var result []Category
	if err := c.get(ctx, c.staticBase+categoriesPath, &result, false); err != nil {
		return nil, err
	}
	return result, nil
}

// CategoryByName finds a category by its name, case-insensitively.
func (c *Client) CategoryByName(ctx context.Context, name string) (*Category, error) {
	categories, err := c.Categories(ctx)
	if err != nil {
		return nil, err
	}

	found := funk.Find(categories, func(category Category) bool {
		return strings.EqualFold(category.Name, name)
	})
	if found == nil {
		return nil, fmt.Errorf("category %q: %w", name, ErrNotFound)
	}

	category := found.(Category)
	return &category, nil
}

// CategoryPodcasts returns the chart of a category for a region. An
// empty region falls back to DefaultRegion.
func (c *Client) CategoryPodcasts(ctx context.Context, category *Category, region string) ([]Podcast, error) {
	if region == "" {
		region = DefaultRegion
	}

	var result podcastsResponse
	source := strings.ReplaceAll(category.Source, regionPlaceholder, region)
	if err := c.get(ctx, source, &result, false); err != nil {
		return nil, err
	}
	return result.Podcasts, nil
}

// Trending returns the trending podcasts list.
func (c *Client) Trending(ctx context.Context) ([]Podcast, error) {
	return c.curatedList(ctx, "trending")
}

// Popular returns the popular podcasts list.
func (c *Client) Popular(ctx context.Context) ([]Podcast, error) {
	return c.curatedList(ctx, "popular")
}

// Featured returns the featured podcasts list.
func (c *Client) Featured(ctx context.Context) ([]Podcast, error) {
	return c.curatedList(ctx, "featured")
}

// Content returns the podcasts of an arbitrary curated list by its ID.
func (c *Client) Content(ctx context.Context, listID string) ([]Podcast, error) {
	if strings.TrimSpace(listID) == "" {
		return nil, fmt.Errorf("empty list ID")
	}
	return c.curatedList(ctx, listID)
}

// Networks returns the podcast networks catalogue. The upstream
// endpoint was retired, so the list is always empty.
func (c *Client) Networks(_ context.Context) ([]Podcast, error) {
	return []Podcast{}, nil
}

func (c *Client) curatedList(ctx context.Context, name string) ([]Podcast, error) {
	var result podcastsResponse
	if err := c.get(ctx, c.listURL(name), &result, false); err != nil {
		return nil, err
	}
	return result.Podcasts, nil
}
