// Package chat colorizes, strips, and prefixes chat messages before they are
// dispatched to a message sink.
package chat

import (
	"strings"
	"unicode"
)

// DefaultMarker is the alternate color-code marker typed by humans in config files.
const DefaultMarker = '&'

// NativeMarker is the platform's in-band color escape character.
const NativeMarker = '§'

// validCodes lists every code character that may follow a marker.
const validCodes = "0123456789AaBbCcDdEeFfKkLlMmNnOoRrXx"

// IsBlank reports whether s is empty or consists only of whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsColorCode reports whether c is a recognised color or format code.
func IsColorCode(c rune) bool {
	return strings.ContainsRune(validCodes, c)
}

// Colorize translates '&' color codes in text to native color escapes.
//
// Postcondition: Returns ("", false) for blank input; otherwise the translated text and true.
func Colorize(text string) (string, bool) {
	return TranslateMarker(DefaultMarker, text)
}

// TranslateMarker translates every marker+code pair in text into the native
// escape followed by the lower-cased code. A marker not followed by a valid
// code is kept verbatim.
//
// Postcondition: Returns ("", false) for blank input.
func TranslateMarker(marker rune, text string) (string, bool) {
	if IsBlank(text) {
		return "", false
	}
	runes := []rune(text)
	for i := 0; i < len(runes)-1; i++ {
		if runes[i] == marker && IsColorCode(runes[i+1]) {
			runes[i] = NativeMarker
			runes[i+1] = toLowerCode(runes[i+1])
		}
	}
	return string(runes), true
}

// StripColorCodes removes every native color escape from text.
//
// Postcondition: Returns ("", false) for blank input.
func StripColorCodes(text string) (string, bool) {
	if IsBlank(text) {
		return "", false
	}
	var b strings.Builder
	b.Grow(len(text))
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		if runes[i] == NativeMarker && i+1 < len(runes) && IsColorCode(runes[i+1]) {
			i++
			continue
		}
		b.WriteRune(runes[i])
	}
	return b.String(), true
}

func toLowerCode(c rune) rune {
	return unicode.ToLower(c)
}
