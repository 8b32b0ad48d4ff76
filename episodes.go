package pocketcast

import (
	"context"
	"fmt"

	"github.com/thoas/go-funk"
)

const (
	endpointNewReleases    = "user/new_releases"
	endpointInProgress     = "user/in_progress"
	endpointStarred        = "user/starred"
	endpointHistory        = "user/history"
	endpointUpdateEpisode  = "sync/update_episode"
	endpointEpisodeStar    = "sync/update_episode_star"
	endpointEpisodeArchive = "sync/update_episode_archive"
)

func (c *Client) episodeList(ctx context.Context, endpoint string) ([]Episode, error) {
	var result episodesResponse
	if err := c.post(ctx, endpoint, nil, &result); err != nil {
		return nil, err
	}
	return result.Episodes, nil
}

// NewReleases returns recently published episodes of subscribed
// podcasts.
func (c *Client) NewReleases(ctx context.Context) ([]Episode, error) {
	return c.episodeList(ctx, endpointNewReleases)
}

// InProgress returns episodes with started but unfinished playback.
func (c *Client) InProgress(ctx context.Context) ([]Episode, error) {
	return c.episodeList(ctx, endpointInProgress)
}

// Starred returns the account's starred episodes.
func (c *Client) Starred(ctx context.Context) ([]Episode, error) {
	return c.episodeList(ctx, endpointStarred)
}

// History returns the account's playback history.
func (c *Client) History(ctx context.Context) ([]Episode, error) {
	return c.episodeList(ctx, endpointHistory)
}

// refFor resolves the episode/podcast UUID pair the sync endpoints
// require. podcastUUID overrides the episode's own PodcastUUID when
// non-empty.
func refFor(episode *Episode, podcastUUID string) (episodeRef, error) {
	if podcastUUID == "" {
		podcastUUID = episode.PodcastUUID
	}
	if episode.UUID == "" || podcastUUID == "" {
		return episodeRef{}, fmt.Errorf("episode %q: %w", episode.Title, ErrMissingPodcastUUID)
	}
	return episodeRef{UUID: episode.UUID, Podcast: podcastUUID}, nil
}

func (c *Client) updatePlayingStatus(ctx context.Context, episode *Episode, status int, position *int) error {
	ref, err := refFor(episode, "")
	if err != nil {
		return err
	}
	return c.post(ctx, endpointUpdateEpisode, playStatusRequest{
		UUID:     ref.UUID,
		Podcast:  ref.Podcast,
		Status:   status,
		Position: position,
	}, nil)
}

// MarkPlayed marks the episode as played.
func (c *Client) MarkPlayed(ctx context.Context, episode *Episode) error {
	return c.updatePlayingStatus(ctx, episode, PlayingStatusPlayed, nil)
}

// MarkUnplayed marks the episode as unplayed and rewinds its position.
func (c *Client) MarkUnplayed(ctx context.Context, episode *Episode) error {
	position := 0
	return c.updatePlayingStatus(ctx, episode, PlayingStatusUnplayed, &position)
}

func (c *Client) setStar(ctx context.Context, episode *Episode, star bool) error {
	ref, err := refFor(episode, "")
	if err != nil {
		return err
	}
	return c.post(ctx, endpointEpisodeStar, starRequest{
		UUID:    ref.UUID,
		Podcast: ref.Podcast,
		Star:    star,
	}, nil)
}

// Star stars the episode.
func (c *Client) Star(ctx context.Context, episode *Episode) error {
	return c.setStar(ctx, episode, true)
}

// Unstar removes the star from the episode.
func (c *Client) Unstar(ctx context.Context, episode *Episode) error {
	return c.setStar(ctx, episode, false)
}

func (c *Client) setArchived(ctx context.Context, archive bool, episodes []*Episode) error {
	if len(episodes) == 0 {
		return nil
	}

	refs := make([]episodeRef, 0, len(episodes))
	for _, episode := range episodes {
		ref, err := refFor(episode, "")
		if err != nil {
			return err
		}
		refs = append(refs, ref)
	}

	return c.post(ctx, endpointEpisodeArchive, archiveRequest{
		Episodes: funk.Uniq(refs).([]episodeRef),
		Archive:  archive,
	}, nil)
}

// Archive archives the episodes in a single batch request.
func (c *Client) Archive(ctx context.Context, episodes ...*Episode) error {
	return c.setArchived(ctx, true, episodes)
}

// Unarchive restores the episodes in a single batch request.
func (c *Client) Unarchive(ctx context.Context, episodes ...*Episode) error {
	return c.setArchived(ctx, false, episodes)
}

// ShowNotes fetches the rendered show notes of an episode. Unlike the
// rest of the podcast cache this endpoint requires the bearer token.
func (c *Client) ShowNotes(ctx context.Context, episodeUUID string) (string, error) {
	if err := validateUUID("episode", episodeUUID); err != nil {
		return "", err
	}

	var result showNotesResponse
	err := c.get(ctx, c.cacheBase+"/episode/show_notes/"+episodeUUID, &result, true)
	if err != nil {
		return "", err
	}
	return result.ShowNotes, nil
}
