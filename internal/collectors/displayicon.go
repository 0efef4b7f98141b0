package collectors

import (
	"os"
	"strings"
)

// parseDisplayIcon extracts a launchable executable path from a registry
// DisplayIcon value. The raw value may be quoted and may carry an icon
// index suffix (`C:\app.exe,0`). Only paths that end in .exe and exist
// according to exists are accepted; everything else yields "".
func parseDisplayIcon(raw string, exists func(string) bool) string {
	path := strings.Trim(strings.TrimSpace(raw), `"`)
	if path == "" {
		return ""
	}
	if idx := strings.Index(path, ","); idx >= 0 {
		path = strings.Trim(strings.TrimSpace(path[:idx]), `"`)
	}
	path = expandWindowsEnv(path)
	if !strings.HasSuffix(strings.ToLower(path), ".exe") {
		return ""
	}
	if !exists(path) {
		return ""
	}
	return path
}

// expandWindowsEnv substitutes %NAME% references from the environment.
// Unknown and unterminated references are left untouched.
func expandWindowsEnv(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for {
		start := strings.IndexByte(s, '%')
		if start < 0 {
			b.WriteString(s)
			return b.String()
		}
		end := strings.IndexByte(s[start+1:], '%')
		if end < 0 {
			b.WriteString(s)
			return b.String()
		}
		name := s[start+1 : start+1+end]
		b.WriteString(s[:start])
		if val, ok := os.LookupEnv(name); ok {
			b.WriteString(val)
		} else {
			b.WriteString(s[start : start+end+2])
		}
		s = s[start+end+2:]
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
