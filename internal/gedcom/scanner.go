package gedcom

import (
	"bytes"
	"strconv"
	"strings"
	"unicode/utf8"
)

const bom = "\ufeff"

// Line is one non-blank line of GEDCOM input.
type Line struct {
	// Number is the 1-based position of the line in the input.
	Number int
	Level  int
	// Rest is everything after the level token, e.g. "@P1@ INDI" or "NAME Alice /A/".
	Rest string
	// Raw is the trimmed line text.
	Raw string
}

// Tag returns the first token of Rest.
func (l Line) Tag() string {
	tag, _, _ := strings.Cut(l.Rest, " ")
	return tag
}

// Value returns the text of Rest after the first token.
func (l Line) Value() string {
	_, value, _ := strings.Cut(l.Rest, " ")
	return value
}

// splitLines splits buf on CRLF when the buffer contains any CRLF, and on LF
// otherwise.
func splitLines(buf []byte) [][]byte {
	if bytes.Contains(buf, []byte("\r\n")) {
		return bytes.Split(buf, []byte("\r\n"))
	}
	return bytes.Split(buf, []byte("\n"))
}

// Scan splits buf into lines and parses their level. Blank lines are skipped
// but still counted for line numbers. The first failure is returned as a
// *LineError.
func Scan(buf []byte) ([]Line, error) {
	var lines []Line
	first := true
	for i, raw := range splitLines(buf) {
		number := i + 1
		raw = bytes.TrimSpace(raw)
		if len(raw) == 0 {
			continue
		}
		if !utf8.Valid(raw) {
			return nil, &LineError{Number: number, Raw: strconv.Quote(string(raw)), Err: &EncodingError{}}
		}

		text := string(raw)
		levelToken, rest, _ := strings.Cut(text, " ")
		if first {
			levelToken = strings.TrimPrefix(levelToken, bom)
			first = false
		}
		level, err := strconv.Atoi(levelToken)
		if err != nil {
			return nil, &LineError{Number: number, Raw: text, Err: &MalformedLevelError{Token: levelToken}}
		}

		lines = append(lines, Line{Number: number, Level: level, Rest: rest, Raw: text})
	}
	return lines, nil
}

// Detect reports whether buf looks like a GEDCOM file, that is its first
// non-blank line is a level 0 HEAD record.
func Detect(buf []byte) bool {
	for _, raw := range splitLines(buf) {
		raw = bytes.TrimSpace(raw)
		if len(raw) == 0 {
			continue
		}
		line := strings.TrimPrefix(string(raw), bom)
		return line == "0 HEAD" || strings.HasPrefix(line, "0 HEAD ")
	}
	return false
}
