package upload

import (
	"path"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var unsafeNameChars = regexp.MustCompile(`[^a-zA-Z0-9.\-]`)

// SanitizeFileName keeps ASCII letters, digits, dots and dashes.
func SanitizeFileName(name string) string {
	name = path.Base(strings.ReplaceAll(name, `\`, "/"))
	if name == "." || name == "/" || name == "" {
		return "file"
	}
	return unsafeNameChars.ReplaceAllString(name, "_")
}

// ObjectKey builds "<folder>/<owner>_<unix millis>_<sanitized name>".
func ObjectKey(folder, owner, fileName string, now time.Time) string {
	base := owner + "_" + strconv.FormatInt(now.UnixMilli(), 10) + "_" + SanitizeFileName(fileName)
	if folder == "" {
		return base
	}
	return strings.TrimSuffix(folder, "/") + "/" + base
}
