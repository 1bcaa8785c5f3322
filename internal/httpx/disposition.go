// Package httpx contains small HTTP response helpers shared by the download
// paths of the client.
package httpx

import (
	"regexp"
	"strings"
)

// Matches a filename (or filename*) key, capturing either a quoted value or
// an unquoted run up to ';' or newline.
var dispositionFilename = regexp.MustCompile(`filename[^;=\n]*=(?:'([^'\n]*)'|"([^"\n]*)"|([^;\n]*))`)

// FilenameFromDisposition derives a save-as name from a Content-Disposition
// header value. Missing headers, missing filename keys and empty captures all
// degrade to fallback rather than failing the download.
func FilenameFromDisposition(header, fallback string) string {
	if header == "" {
		return fallback
	}
	m := dispositionFilename.FindStringSubmatch(header)
	if m == nil {
		return fallback
	}
	var name string
	for _, group := range m[1:] {
		if group != "" {
			name = group
			break
		}
	}
	name = strings.TrimSpace(strings.Trim(name, `'"`))
	if name == "" {
		return fallback
	}
	return name
}
