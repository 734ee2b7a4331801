// Package render composes month grids and event listings into the
// final printable text. Nothing here writes to a sink; callers print
// the returned strings.
package render

import "ecal/internal/rule"

const (
	escReset  = "\x1b[0m"
	escBold   = "\x1b[1m"
	escInvert = "\x1b[7m"

	escRed    = "\x1b[31m"
	escGreen  = "\x1b[32m"
	escBlue   = "\x1b[34m"
	escBlackF = "\x1b[30m"
	escYelloB = "\x1b[43m"
)

// fg/bg escape codes indexed by rule.Color; index 0 (ColorNone) is "".
var (
	fgCodes = [9]string{
		"", "\x1b[30m", "\x1b[31m", "\x1b[32m", "\x1b[33m",
		"\x1b[34m", "\x1b[35m", "\x1b[36m", "\x1b[37m",
	}
	bgCodes = [9]string{
		"", "\x1b[40m", "\x1b[41m", "\x1b[42m", "\x1b[43m",
		"\x1b[44m", "\x1b[45m", "\x1b[46m", "\x1b[47m",
	}
)

// styler applies escape sequences when color output is enabled and
// passes text through untouched otherwise, so piped output stays clean.
type styler struct {
	enabled bool
}

func (s styler) paint(codes, text string) string {
	if !s.enabled || codes == "" {
		return text
	}
	return codes + text + escReset
}

func (s styler) fg(c rule.Color) string {
	if !s.enabled {
		return ""
	}
	return fgCodes[c]
}

func (s styler) bg(c rule.Color) string {
	if !s.enabled {
		return ""
	}
	return bgCodes[c]
}
