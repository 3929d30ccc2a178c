package commands

import (
	"os"
	"runtime"
)

// EmojiEnabled can be set to false to never print emojis
var EmojiEnabled = os.Getenv("HELIX_NO_EMOJI") == ""

var emojiSupport = detectEmojiSupport(runtime.GOOS, os.Getenv)

// detectEmojiSupport guesses if the terminal can render emojis. Everything
// but the classic windows console usually can.
func detectEmojiSupport(goos string, getenv func(string) string) bool {
	if goos != "windows" {
		return true
	}
	// windows terminal sets WT_SESSION, conhost does not
	return getenv("WT_SESSION") != ""
}

// Emoji returns e if the current terminal (probably) supports it
func Emoji(e string) string {
	if emojiSupport && EmojiEnabled {
		return e
	}
	return ""
}
