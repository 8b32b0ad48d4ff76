package pocketcast

import "context"

const (
	endpointUpNextList = "up_next/list"
	endpointPlayNext   = "up_next/play_next"
	endpointPlayLast   = "up_next/play_last"

	// The web player speaks version 2 of the Up Next sync protocol.
	upNextVersion = 2
	upNextModel   = "webplayer"
)

// UpNext returns the episodes queued for playback.
func (c *Client) UpNext(ctx context.Context) ([]Episode, error) {
	var result episodesResponse
	err := c.post(ctx, endpointUpNextList, upNextRequest{
		Version: upNextVersion,
		Model:   upNextModel,
	}, &result)
	if err != nil {
		return nil, err
	}
	return result.Episodes, nil
}

func (c *Client) queuePush(ctx context.Context, endpoint string, episode *Episode) error {
	ref, err := refFor(episode, "")
	if err != nil {
		return err
	}
	return c.post(ctx, endpoint, queuePushRequest{
		Version: upNextVersion,
		Episode: queueEpisode{
			UUID:      ref.UUID,
			Title:     episode.Title,
			URL:       episode.URL,
			Podcast:   ref.Podcast,
			Published: episode.Published,
		},
	}, nil)
}

// PlayNext puts the episode at the front of the Up Next queue.
func (c *Client) PlayNext(ctx context.Context, episode *Episode) error {
	return c.queuePush(ctx, endpointPlayNext, episode)
}

// PlayLast appends the episode to the Up Next queue.
func (c *Client) PlayLast(ctx context.Context, episode *Episode) error {
	return c.queuePush(ctx, endpointPlayLast, episode)
}
