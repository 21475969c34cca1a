package handlers

import (
	"testing"

	"github.com/mvolkov/kinobot/internal/models"
)

func TestParseItemRef(t *testing.T) {
	tests := []struct {
		data      string
		prefix    string
		id        int64
		mediaType models.MediaType
		ok        bool
	}{
		{"details_603_movie", "details_", 603, models.MediaTypeMovie, true},
		{"expand_1399_tv", "expand_", 1399, models.MediaTypeTV, true},
		{"collapse_7_movie", "collapse_", 7, models.MediaTypeMovie, true},
		{"details_603_person", "details_", 0, "", false},
		{"details_abc_movie", "details_", 0, "", false},
		{"details_603", "details_", 0, "", false},
		{"page_2", "details_", 0, "", false},
	}

	for _, tt := range tests {
		id, mediaType, ok := parseItemRef(tt.data, tt.prefix)
		if ok != tt.ok {
			t.Errorf("parseItemRef(%q, %q) ok = %v, want %v", tt.data, tt.prefix, ok, tt.ok)
			continue
		}
		if ok && (id != tt.id || mediaType != tt.mediaType) {
			t.Errorf("parseItemRef(%q, %q) = %d, %v", tt.data, tt.prefix, id, mediaType)
		}
	}
}
