package logparse

import (
	"strconv"
	"strings"

	"github.com/tinytelemetry/warnsum/internal/model"
)

// UnknownFlag is the flag recorded for warnings without a [-W<flag>] bracket.
const UnknownFlag = "unknown"

const (
	warningMarker = ": warning:"
	flagOpen      = "[-W"
)

// MatchWarning recognizes a single compiler warning line of the form
//
//	<path>:<line>:<col>: warning: <message> [-W<flag>]
//
// and returns the parsed record. Errors, notes, "In function" context lines
// and source excerpt or caret lines report false.
func MatchWarning(line string) (model.WarningRecord, bool) {
	line = strings.TrimRight(line, "\r\n")

	idx := strings.Index(line, warningMarker)
	if idx < 0 {
		return model.WarningRecord{}, false
	}

	path, lineNo, col, ok := splitLocation(line[:idx])
	if !ok {
		return model.WarningRecord{}, false
	}

	message, flag := splitFlag(line[idx+len(warningMarker):])

	return model.WarningRecord{
		FilePath: path,
		Line:     lineNo,
		Column:   col,
		Message:  message,
		Flag:     flag,
	}, true
}

// splitLocation parses "<path>:<line>:<col>" from the right so that colons
// inside the path (Windows drive letters) stay part of it.
func splitLocation(prefix string) (path string, lineNo, col int, ok bool) {
	colIdx := strings.LastIndexByte(prefix, ':')
	if colIdx < 0 {
		return "", 0, 0, false
	}
	col, ok = parseDigits(prefix[colIdx+1:])
	if !ok {
		return "", 0, 0, false
	}

	rest := prefix[:colIdx]
	lineIdx := strings.LastIndexByte(rest, ':')
	if lineIdx < 0 {
		return "", 0, 0, false
	}
	lineNo, ok = parseDigits(rest[lineIdx+1:])
	if !ok {
		return "", 0, 0, false
	}

	path = rest[:lineIdx]
	if strings.TrimSpace(path) == "" {
		return "", 0, 0, false
	}
	return path, lineNo, col, true
}

func parseDigits(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// splitFlag separates the message from a trailing [-W<flag>] bracket.
// GCC prints some flags with a trailing '=' (e.g. [-Wformat=]); it is dropped.
func splitFlag(rest string) (message, flag string) {
	rest = strings.TrimSpace(rest)
	if !strings.HasSuffix(rest, "]") {
		return rest, UnknownFlag
	}

	open := strings.LastIndex(rest, flagOpen)
	if open < 0 {
		return rest, UnknownFlag
	}

	name := strings.TrimSuffix(rest[open+len(flagOpen):len(rest)-1], "=")
	if name == "" || strings.ContainsAny(name, " \t[]") {
		return rest, UnknownFlag
	}
	return strings.TrimSpace(rest[:open]), name
}
