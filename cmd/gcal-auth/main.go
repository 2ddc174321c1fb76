// Command gcal-auth runs the OAuth desktop flow once and stores token.json so
// the API can mirror events into Google Calendar.
//
// Usage:
//
//	go run ./cmd/gcal-auth -credentials google-credentials.json
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"

	"smart-task-scheduler/pkg/gcalendar"
	"smart-task-scheduler/pkg/log"
)

func main() {
	credsPath := flag.String("credentials", "google-credentials.json", "OAuth desktop app credentials file")
	tokenPath := flag.String("token", gcalendar.TokenFile, "where to write the token")
	flag.Parse()

	ctx := context.Background()
	logger := log.Init(log.ZapConfig{Level: "info", Mode: "debug", Encoding: "console", ColorEnabled: true})

	data, err := os.ReadFile(*credsPath)
	if err != nil {
		logger.Fatalf(ctx, "Failed to read credentials file %q: %v", *credsPath, err)
	}

	config, err := google.ConfigFromJSON(data, calendar.CalendarScope)
	if err != nil {
		logger.Fatalf(ctx, "Failed to parse credentials (expected an OAuth desktop app file): %v", err)
	}

	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Println("Step 1: open this URL and sign in with the calendar owner's Google account:")
	fmt.Println()
	fmt.Println(authURL)
	fmt.Println()
	fmt.Print("Step 2: paste the authorization code here and press Enter: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		logger.Fatalf(ctx, "Failed to read authorization code: %v", err)
	}

	tok, err := config.Exchange(ctx, code)
	if err != nil {
		logger.Fatalf(ctx, "Failed to exchange authorization code: %v", err)
	}

	if err := gcalendar.SaveToken(*tokenPath, tok); err != nil {
		logger.Fatalf(ctx, "%v", err)
	}

	logger.Infof(ctx, "Token saved to %s. Restart the API to enable calendar mirroring.", *tokenPath)
}
