package render

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// ExportFileName builds "proposta-<client>-<unix millis>.pdf" with the client
// name lowercased and every run of other characters replaced by a hyphen.
func ExportFileName(clientName string, at time.Time) string {
	slug := strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(strings.TrimSpace(clientName)), "-"), "-")
	if slug == "" {
		slug = "cliente"
	}
	return "proposta-" + slug + "-" + strconv.FormatInt(at.UnixMilli(), 10) + ".pdf"
}
