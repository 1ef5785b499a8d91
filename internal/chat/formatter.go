package chat

import (
	"fmt"
	"io"
)

// Sink receives fully formatted chat text, typically a player or the console.
type Sink interface {
	SendMessage(text string)
}

// SinkFunc adapts a plain function to the Sink interface.
type SinkFunc func(text string)

// SendMessage calls f(text).
func (f SinkFunc) SendMessage(text string) { f(text) }

// ConsoleSink writes each message to w on its own line, rendering native color
// codes as ANSI escapes.
type ConsoleSink struct {
	W io.Writer
}

// SendMessage renders text and writes it followed by a reset and newline.
func (c ConsoleSink) SendMessage(text string) {
	fmt.Fprintln(c.W, ToANSI(text)+Reset)
}

// Formatter prefixes and colorizes outgoing messages for one plugin.
//
// Formatter is not safe for concurrent mutation of its prefix.
type Formatter struct {
	prefix string
	marker rune
}

// NewFormatter returns a Formatter using the default '&' marker.
// A blank prefix disables prefixing.
func NewFormatter(prefix string) *Formatter {
	return NewFormatterWithMarker(prefix, DefaultMarker)
}

// NewFormatterWithMarker returns a Formatter translating the given marker.
func NewFormatterWithMarker(prefix string, marker rune) *Formatter {
	f := &Formatter{marker: marker}
	f.SetPrefix(prefix)
	return f
}

// Prefix returns the configured prefix, or "" if none is set.
func (f *Formatter) Prefix() string {
	return f.prefix
}

// SetPrefix replaces the prefix. A blank prefix disables prefixing.
func (f *Formatter) SetPrefix(prefix string) {
	if IsBlank(prefix) {
		f.prefix = ""
		return
	}
	f.prefix = prefix
}

// HasPrefix reports whether messages will be prefixed.
func (f *Formatter) HasPrefix() bool {
	return f.prefix != ""
}

// Marker returns the alternate color-code marker this formatter translates.
func (f *Formatter) Marker() rune {
	return f.marker
}

// Colorize translates this formatter's marker codes into native escapes.
//
// Postcondition: Returns ("", false) for blank input.
func (f *Formatter) Colorize(text string) (string, bool) {
	return TranslateMarker(f.marker, text)
}

// FormatMessage prepends the prefix and a separating space when a prefix is set.
//
// Postcondition: Returns "" for blank input; text unchanged when no prefix is set.
func (f *Formatter) FormatMessage(text string) string {
	if IsBlank(text) {
		return ""
	}
	if f.HasPrefix() {
		return f.prefix + " " + text
	}
	return text
}

// SendColorCached sends text that the caller has already colorized, applying only
// the prefix. Blank text is silently dropped.
func (f *Formatter) SendColorCached(sink Sink, text string) {
	if IsBlank(text) {
		return
	}
	sink.SendMessage(f.FormatMessage(text))
}

// Send prefixes then colorizes text, so marker codes in the prefix are translated
// too. Blank text is silently dropped.
func (f *Formatter) Send(sink Sink, text string) {
	if IsBlank(text) {
		return
	}
	colored, _ := f.Colorize(f.FormatMessage(text))
	sink.SendMessage(colored)
}

// SendAll delivers the same colorized message to every sink. The message is
// formatted once.
func (f *Formatter) SendAll(sinks []Sink, text string) {
	if IsBlank(text) {
		return
	}
	colored, _ := f.Colorize(f.FormatMessage(text))
	for _, s := range sinks {
		s.SendMessage(colored)
	}
}
