package pocketcast

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Endpoints of the authenticated API used for podcast management.
const (
	endpointSubscriptions   = "user/podcast/list"
	endpointPodcastEpisodes = "user/podcast/episodes"
	endpointSubscribe       = "user/podcast/subscribe"
	endpointUnsubscribe     = "user/podcast/unsubscribe"
	endpointSearch          = "discover/search"
)

func validateUUID(kind, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("invalid %s UUID %q: %w", kind, id, err)
	}
	return nil
}

// Subscriptions returns the podcasts the account is subscribed to.
func (c *Client) Subscriptions(ctx context.Context) ([]Podcast, error) {
	var result podcastsResponse
	if err := c.post(ctx, endpointSubscriptions, subscriptionsRequest{V: 1}, &result); err != nil {
		return nil, err
	}
	return result.Podcasts, nil
}

// Subscribe subscribes the account to the podcast.
func (c *Client) Subscribe(ctx context.Context, podcastUUID string) error {
	if err := validateUUID("podcast", podcastUUID); err != nil {
		return err
	}
	return c.post(ctx, endpointSubscribe, uuidRequest{UUID: podcastUUID}, nil)
}

// Unsubscribe removes the podcast from the account's subscriptions.
func (c *Client) Unsubscribe(ctx context.Context, podcastUUID string) error {
	if err := validateUUID("podcast", podcastUUID); err != nil {
		return err
	}
	return c.post(ctx, endpointUnsubscribe, uuidRequest{UUID: podcastUUID}, nil)
}

// PodcastByUUID fetches the full podcast record from the public
// podcast cache. No authentication is required.
func (c *Client) PodcastByUUID(ctx context.Context, podcastUUID string) (*Podcast, error) {
	if err := validateUUID("podcast", podcastUUID); err != nil {
		return nil, err
	}

	var result podcastEnvelope
	err := c.get(ctx, c.cacheBase+"/podcast/full/"+podcastUUID, &result, false)
	if err != nil {
		return nil, err
	}
	if result.Podcast.UUID == "" {
		return nil, fmt.Errorf("podcast %s: %w", podcastUUID, ErrNotFound)
	}

	return &result.Podcast, nil
}

// Episodes returns the episodes of a podcast together with the
// account's listening state.
func (c *Client) Episodes(ctx context.Context, podcastUUID string) ([]Episode, error) {
	if err := validateUUID("podcast", podcastUUID); err != nil {
		return nil, err
	}

	var result episodesResponse
	if err := c.post(ctx, endpointPodcastEpisodes, uuidRequest{UUID: podcastUUID}, &result); err != nil {
		return nil, err
	}
	return result.Episodes, nil
}

// Search looks up podcasts by a keyword.
func (c *Client) Search(ctx context.Context, term string) ([]Podcast, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, fmt.Errorf("empty search term")
	}

	var result podcastsResponse
	if err := c.post(ctx, endpointSearch, searchRequest{Term: term}, &result); err != nil {
		return nil, err
	}
	return result.Podcasts, nil
}
