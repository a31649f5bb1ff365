// Package mappers projects persisted entities into the DTOs served by the API.
package mappers

import "strings"

// imageURL joins base and the stored filename. It returns nil when no
// filename is stored so the DTO field serializes as null.
func imageURL(base string, fileName *string) *string {
	if fileName == nil || *fileName == "" {
		return nil
	}
	url := base + "/" + *fileName
	return &url
}

func normalizeBase(base string) string {
	base = strings.TrimRight(base, "/")
	if !strings.HasPrefix(base, "/") && !strings.Contains(base, "://") {
		base = "/" + base
	}
	return base
}
