package chat

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ANSI escape code constants used when rendering chat text on a terminal.
const (
	Reset         = "\033[0m"
	Bold          = "\033[1m"
	Italic        = "\033[3m"
	Underline     = "\033[4m"
	Blink         = "\033[5m"
	Strikethrough = "\033[9m"

	// Foreground colors
	Black   = "\033[30m"
	Red     = "\033[31m"
	Green   = "\033[32m"
	Yellow  = "\033[33m"
	Blue    = "\033[34m"
	Magenta = "\033[35m"
	Cyan    = "\033[36m"
	White   = "\033[37m"

	// Bright foreground colors
	BrightBlack   = "\033[90m"
	BrightRed     = "\033[91m"
	BrightGreen   = "\033[92m"
	BrightYellow  = "\033[93m"
	BrightBlue    = "\033[94m"
	BrightMagenta = "\033[95m"
	BrightCyan    = "\033[96m"
	BrightWhite   = "\033[97m"
)

// ansiByCode maps native color and format codes to their closest terminal escape.
// A lone 'x' hex introducer that is not followed by six digit codes maps to "".
var ansiByCode = map[rune]string{
	'0': Black,
	'1': Blue,
	'2': Green,
	'3': Cyan,
	'4': Red,
	'5': Magenta,
	'6': Yellow,
	'7': White,
	'8': BrightBlack,
	'9': BrightBlue,
	'a': BrightGreen,
	'b': BrightCyan,
	'c': BrightRed,
	'd': BrightMagenta,
	'e': BrightYellow,
	'f': BrightWhite,
	'k': Blink,
	'l': Bold,
	'm': Strikethrough,
	'n': Underline,
	'o': Italic,
	'r': Reset,
	'x': "",
}

// ToANSI renders native color codes as ANSI escapes so colorized chat text can be
// shown on a console. Hex colors (§x followed by six §-prefixed digits) become
// 24-bit escapes. Unknown codes are left untouched.
//
// Postcondition: The result contains no valid native color code.
func ToANSI(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		if esc, n, ok := hexColor(runes[i:]); ok {
			b.WriteString(esc)
			i += n - 1
			continue
		}
		if runes[i] == NativeMarker && i+1 < len(runes) {
			if esc, ok := ansiByCode[toLowerCode(runes[i+1])]; ok {
				b.WriteString(esc)
				i++
				continue
			}
		}
		b.WriteRune(runes[i])
	}
	return b.String()
}

// hexSequenceLen is the rune length of §x§R§R§G§G§B§B.
const hexSequenceLen = 14

// hexColor decodes a hex color sequence at the start of runes and returns its
// 24-bit escape and rune length.
func hexColor(runes []rune) (string, int, bool) {
	if len(runes) < hexSequenceLen || runes[0] != NativeMarker || toLowerCode(runes[1]) != 'x' {
		return "", 0, false
	}
	digits := make([]rune, 0, 6)
	for i := 2; i < hexSequenceLen; i += 2 {
		if runes[i] != NativeMarker {
			return "", 0, false
		}
		digits = append(digits, runes[i+1])
	}
	c, err := colorful.Hex("#" + string(digits))
	if err != nil {
		return "", 0, false
	}
	r, g, bl := c.RGB255()
	return fmt.Sprintf("\033[38;2;%d;%d;%dm", r, g, bl), hexSequenceLen, true
}

// StripANSI removes all ANSI escape sequences from a string.
// This is useful for measuring the printable width of rendered text.
//
// Postcondition: Returns text with all \033[...m sequences removed.
func StripANSI(s string) string {
	result := make([]byte, 0, len(s))
	i := 0
	for i < len(s) {
		if s[i] == '\033' && i+1 < len(s) && s[i+1] == '[' {
			j := i + 2
			for j < len(s) && s[j] != 'm' {
				j++
			}
			if j < len(s) {
				i = j + 1
				continue
			}
		}
		result = append(result, s[i])
		i++
	}
	return string(result)
}
