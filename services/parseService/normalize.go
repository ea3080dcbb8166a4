package parseService

import (
	"regexp"
	"strings"
)

var spaceRE = regexp.MustCompile(`\s+`)

// StripBotMention removes every mention of the bot itself from the message and
// trims the result. Idempotent, so callers can re-clean already-clean text.
func StripBotMention(text, botID string) string {
	text = strings.ReplaceAll(text, "<@!"+botID+">", "")
	text = strings.ReplaceAll(text, "<@"+botID+">", "")
	return strings.TrimSpace(text)
}

// CollapseWhitespace squeezes runs of whitespace into single spaces.
func CollapseWhitespace(text string) string {
	return strings.TrimSpace(spaceRE.ReplaceAllString(text, " "))
}
