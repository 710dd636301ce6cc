package main

import (
	"fmt"
	"log"

	"github.com/slack-go/slack"
)

// notifyRunComplete posts a short completion notice to the configured Slack
// channel. Entirely optional: missing config means no-op, and failures are
// logged and swallowed.
func notifyRunComplete(cfg Config, patternCount int) {
	if cfg.SlackBotToken == "" || cfg.SlackChannelID == "" {
		return
	}

	api := slack.New(cfg.SlackBotToken)
	text := fmt.Sprintf("Pattern sheet updated: %d patterns written to https://docs.google.com/spreadsheets/d/%s",
		patternCount, cfg.SpreadsheetID)

	_, _, err := api.PostMessage(cfg.SlackChannelID, slack.MsgOptionText(text, false))
	if err != nil {
		log.Printf("slack notify failed channel=%s err=%v", cfg.SlackChannelID, err)
		return
	}
	log.Printf("slack notify sent channel=%s", cfg.SlackChannelID)
}
