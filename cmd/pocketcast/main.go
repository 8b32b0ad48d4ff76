// The pocketcast command is a thin CLI over the Pocket Casts API
// client. Credentials come from flags, a .env file, or environment
// variables; the first positional argument selects the command
// (subscriptions, search, up-next, ...).
package main

import "github.com/patric-chuzhbe/pocketcast/internal/app"

func main() {
	application, err := app.New()
	if err != nil {
		panic(err)
	}
	defer application.Close()

	if err := application.Run(); err != nil {
		panic(err)
	}
}
