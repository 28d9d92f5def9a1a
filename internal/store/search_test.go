package store

import (
	"context"
	"testing"
)

func TestSearch(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	s.Put(ctx, PutParams{Words: []string{"사과", "사자", "과자", "가지"}, Label: "possible"})
	s.Put(ctx, PutParams{Words: []string{"사슴"}, Label: "impossible"})

	// Single syllable matches either position
	results, err := s.Search(ctx, SearchParams{Query: "자"})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	// Label filter
	results, err = s.Search(ctx, SearchParams{Query: "사", Label: "possible"})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	// Limit
	results, _ = s.Search(ctx, SearchParams{Query: "사", Limit: 1})
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}

	// No results
	results, err = s.Search(ctx, SearchParams{Query: "호박"})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 0 {
		t.Fatalf("expected 0 results, got %d", len(results))
	}
}

func TestSearchEscapesWildcards(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	s.Put(ctx, PutParams{Words: []string{"사과"}, Label: "possible"})

	results, _ := s.Search(ctx, SearchParams{Query: "%"})
	if len(results) != 0 {
		t.Errorf("expected literal %% to match nothing, got %d", len(results))
	}
	results, _ = s.Search(ctx, SearchParams{Query: "_"})
	if len(results) != 0 {
		t.Errorf("expected literal _ to match nothing, got %d", len(results))
	}
}
