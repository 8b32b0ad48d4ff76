// Package app initializes and runs the pocketcast command-line tool.
// It configures logging, builds an authenticated API client, and
// dispatches the requested command.
package app

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/thoas/go-funk"

	"github.com/patric-chuzhbe/pocketcast"
	"github.com/patric-chuzhbe/pocketcast/internal/config"
	"github.com/patric-chuzhbe/pocketcast/internal/logger"
)

// App holds the configuration, the API client, and the command to run.
type App struct {
	cfg     *config.Config
	client  *pocketcast.Client
	command string
	args    []string
	out     io.Writer
}

// New loads the configuration, initializes the logger, and captures
// the command-line arguments left after flag parsing.
func New() (*App, error) {
	var err error
	app := &App{out: os.Stdout}

	app.cfg, err = config.New()
	if err != nil {
		return nil, err
	}

	err = logger.Init(app.cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	app.command = flag.Arg(0)
	if app.command == "" {
		app.command = "subscriptions"
	}
	if flag.NArg() > 1 {
		app.args = flag.Args()[1:]
	}

	return app, nil
}

// Run logs in and executes the requested command. It aborts on
// SIGINT/SIGTERM via context cancellation.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := pocketcast.New(
		ctx,
		a.cfg.Email,
		a.cfg.Password,
		pocketcast.WithTimeout(a.cfg.HTTPTimeout),
	)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	a.client = client

	logger.Log.Debugln("authenticated", "email", a.cfg.Email, "command", a.command)

	return a.dispatch(ctx)
}

// Close finalizes resources used by App such as logging.
func (a *App) Close() {
	if err := logger.Sync(); err != nil {
		fmt.Println("Logger sync error:", err)
	}
}

func (a *App) dispatch(ctx context.Context) error {
	switch a.command {
	case "subscriptions":
		return a.printPodcastList(a.client.Subscriptions(ctx))

	case "search":
		return a.printPodcastList(a.client.Search(ctx, strings.Join(a.args, " ")))

	case "trending":
		return a.printPodcastList(a.client.Trending(ctx))

	case "popular":
		return a.printPodcastList(a.client.Popular(ctx))

	case "featured":
		return a.printPodcastList(a.client.Featured(ctx))

	case "content":
		if len(a.args) < 1 {
			return fmt.Errorf("usage: content <list-id>")
		}
		return a.printPodcastList(a.client.Content(ctx, a.args[0]))

	case "podcast":
		if len(a.args) < 1 {
			return fmt.Errorf("usage: podcast <uuid>")
		}
		podcast, err := a.client.PodcastByUUID(ctx, a.args[0])
		if err != nil {
			return err
		}
		return a.printJSON(podcast)

	case "episodes":
		if len(a.args) < 1 {
			return fmt.Errorf("usage: episodes <podcast-uuid>")
		}
		return a.printEpisodeList(a.client.Episodes(ctx, a.args[0]))

	case "subscribe":
		if len(a.args) < 1 {
			return fmt.Errorf("usage: subscribe <podcast-uuid>")
		}
		return a.client.Subscribe(ctx, a.args[0])

	case "unsubscribe":
		if len(a.args) < 1 {
			return fmt.Errorf("usage: unsubscribe <podcast-uuid>")
		}
		return a.client.Unsubscribe(ctx, a.args[0])

	case "up-next":
		return a.printEpisodeList(a.client.UpNext(ctx))

	case "history":
		return a.printEpisodeList(a.client.History(ctx))

	case "in-progress":
		return a.printEpisodeList(a.client.InProgress(ctx))

	case "starred":
		return a.printEpisodeList(a.client.Starred(ctx))

	case "new-releases":
		return a.printEpisodeList(a.client.NewReleases(ctx))

	case "recommendations":
		return a.printEpisodeList(a.client.Recommendations(ctx))

	case "categories":
		categories, err := a.client.Categories(ctx)
		if err != nil {
			return err
		}
		for _, name := range funk.Map(categories, func(category pocketcast.Category) string {
			return category.Name
		}).([]string) {
			fmt.Fprintln(a.out, name)
		}
		return nil

	case "category":
		if len(a.args) < 1 {
			return fmt.Errorf("usage: category <name>")
		}
		category, err := a.client.CategoryByName(ctx, a.args[0])
		if err != nil {
			return err
		}
		return a.printPodcastList(a.client.CategoryPodcasts(ctx, category, a.cfg.Region))

	case "show-notes":
		if len(a.args) < 1 {
			return fmt.Errorf("usage: show-notes <episode-uuid>")
		}
		notes, err := a.client.ShowNotes(ctx, a.args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, notes)
		return nil

	case "stats":
		stats, err := a.client.Stats(ctx)
		if err != nil {
			return err
		}
		return a.printJSON(stats)

	case "account":
		account, err := a.client.Account(ctx)
		if err != nil {
			return err
		}
		return a.printJSON(account)
	}

	return fmt.Errorf("unknown command %q", a.command)
}

func (a *App) printPodcastList(podcasts []pocketcast.Podcast, err error) error {
	if err != nil {
		return err
	}
	for _, podcast := range podcasts {
		fmt.Fprintf(a.out, "%s - %s (%s)\n", podcast.Title, podcast.Author, podcast.UUID)
	}
	return nil
}

func (a *App) printEpisodeList(episodes []pocketcast.Episode, err error) error {
	if err != nil {
		return err
	}
	for _, episode := range episodes {
		fmt.Fprintf(a.out, "%s / %s (%s)\n", episode.PodcastTitle, episode.Title, episode.UUID)
	}
	return nil
}

func (a *App) printJSON(value interface{}) error {
	encoded, err := json.MarshalIndent(value, "", "\t")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, string(encoded))
	return err
}
