package model

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNewPage(t *testing.T) {
	tests := []struct {
		name       string
		content    []string
		number     int
		size       int
		total      int64
		totalPages int
		first      bool
		last       bool
	}{
		{name: "empty", content: nil, number: 0, size: 10, total: 0, totalPages: 0, first: true, last: true},
		{name: "single partial page", content: []string{"a", "b"}, number: 0, size: 10, total: 2, totalPages: 1, first: true, last: true},
		{name: "middle page", content: []string{"c", "d"}, number: 1, size: 2, total: 5, totalPages: 3, first: false, last: false},
		{name: "last page", content: []string{"e"}, number: 2, size: 2, total: 5, totalPages: 3, first: false, last: true},
		{name: "zero size", content: nil, number: 0, size: 0, total: 5, totalPages: 0, first: true, last: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := NewPage(tt.content, tt.number, tt.size, tt.total)
			if page.TotalPages != tt.totalPages {
				t.Errorf("expected %d pages, got %d", tt.totalPages, page.TotalPages)
			}
			if page.First != tt.first || page.Last != tt.last {
				t.Errorf("expected first=%v last=%v, got first=%v last=%v", tt.first, tt.last, page.First, page.Last)
			}
			if page.NumberOfElements != len(tt.content) {
				t.Errorf("expected %d elements, got %d", len(tt.content), page.NumberOfElements)
			}
		})
	}
}

func TestEmptyPageSerializesEmptyContent(t *testing.T) {
	body, err := json.Marshal(NewPage[string](nil, 0, 10, 0))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if !strings.Contains(string(body), `"content":[]`) {
		t.Fatalf("expected empty array content, got %s", body)
	}
}
