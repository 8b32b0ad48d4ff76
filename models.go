package pocketcast

import "time"

// Timestamp wraps time.Time with the tolerant parsing the Pocket Casts
// API requires: a publication date that fails to parse unmarshals as the
// zero time instead of failing the whole payload.
type Timestamp struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	raw := string(data)
	if raw == "null" || raw == `""` {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := time.Parse(`"`+time.RFC3339+`"`, raw)
	if err != nil {
		t.Time = time.Time{}
		return nil
	}
	t.Time = parsed
	return nil
}

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(`"` + t.Format(time.RFC3339) + `"`), nil
}

// Podcast describes a single show as returned by the API.
type Podcast struct {
	UUID        string `json:"uuid"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description"`
	Feed        string `json:"feed"`
	ITunes      string `json:"itunes"`
	Website     string `json:"website"`
}

// Playing statuses understood by the sync endpoints.
const (
	PlayingStatusUnplayed   = 1
	PlayingStatusInProgress = 2
	PlayingStatusPlayed     = 3
)

// Episode describes a single podcast episode together with the
// account's listening state for it.
type Episode struct {
	UUID          string    `json:"uuid"`
	Title         string    `json:"title"`
	URL           string    `json:"url"`
	Published     Timestamp `json:"published"`
	Duration      int       `json:"duration"`
	Size          int64     `json:"size"`
	FileType      string    `json:"fileType"`
	Type          string    `json:"episodeType"`
	Season        int       `json:"episodeSeason"`
	Number        int       `json:"episodeNumber"`
	PlayedUpTo    int       `json:"playedUpTo"`
	PlayingStatus int       `json:"playing_status"`
	Starred       bool      `json:"starred"`
	Deleted       bool      `json:"isDeleted"`
	PodcastUUID   string    `json:"podcastUuid"`
	PodcastTitle  string    `json:"podcastTitle"`
}

// Playing reports whether playback of the episode has been started.
func (e *Episode) Playing() bool {
	return e.PlayingStatus > PlayingStatusUnplayed
}

// Category is an entry of the discovery category catalogue. Source is a
// URL template containing a `[regionCode]` placeholder.
type Category struct {
	Name   string `json:"name"`
	Icon   string `json:"icon"`
	Source string `json:"source"`
}

// Account is the subscription status of the authenticated account.
type Account struct {
	Paid         int    `json:"paid"`
	Platform     string `json:"platform"`
	ExpiryDate   string `json:"expiryDate"`
	AutoRenewing bool   `json:"autoRenewing"`
	GiftDays     int    `json:"giftDays"`
	CancelURL    string `json:"cancelUrl"`
	UpdateURL    string `json:"updateURL"`
	Frequency    string `json:"frequency"`
	Web          string `json:"web"`
}

// Premium reports whether the account has a paid subscription.
func (a *Account) Premium() bool {
	return a.Paid == 1
}

// Stats is the listening-time summary returned by `user/stats/summary`.
// The endpoint's key set is not versioned, so it is kept as a free-form
// map.
type Stats map[string]interface{}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Scope    string `json:"scope"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type podcastsResponse struct {
	Podcasts []Podcast `json:"podcasts"`
}

type episodesResponse struct {
	Episodes []Episode `json:"episodes"`
}

type podcastEnvelope struct {
	Podcast Podcast `json:"podcast"`
}

type uuidRequest struct {
	UUID string `json:"uuid"`
}

type subscriptionsRequest struct {
	V int `json:"v"`
}

type searchRequest struct {
	Term string `json:"term"`
}

type upNextRequest struct {
	Version int    `json:"version"`
	Model   string `json:"model"`
}

type playStatusRequest struct {
	UUID     string `json:"uuid"`
	Podcast  string `json:"podcast"`
	Status   int    `json:"status"`
	Position *int   `json:"position,omitempty"`
}

type starRequest struct {
	UUID    string `json:"uuid"`
	Podcast string `json:"podcast"`
	Star    bool   `json:"star"`
}

type episodeRef struct {
	UUID    string `json:"uuid"`
	Podcast string `json:"podcast"`
}

type archiveRequest struct {
	Episodes []episodeRef `json:"episodes"`
	Archive  bool         `json:"archive"`
}

type queueEpisode struct {
	UUID      string    `json:"uuid"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	Podcast   string    `json:"podcast"`
	Published Timestamp `json:"published"`
}

type queuePushRequest struct {
	Version int          `json:"version"`
	Episode queueEpisode `json:"episode"`
}

type showNotesResponse struct {
	ShowNotes string `json:"show_notes"`
}
