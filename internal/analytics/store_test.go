package analytics

import (
	"context"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestHashIPIsStableAndOpaque(t *testing.T) {
	s := newTestStore(t)
	a := s.HashIP("203.0.113.7")
	if a != s.HashIP("203.0.113.7") {
		t.Fatal("hash should be stable within a store")
	}
	if a == s.HashIP("203.0.113.8") {
		t.Fatal("different IPs should hash differently")
	}
	if len(a) != 16 || a == "203.0.113.7" {
		t.Fatalf("unexpected hash %q", a)
	}
}

func TestStatsCountsVisitsAndCopies(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	visits := []Visit{
		{HashedIP: s.HashIP("1.1.1.1"), Path: "/", Section: "code"},
		{HashedIP: s.HashIP("1.1.1.1"), Path: "/sections/tips", Section: "tips"},
		{HashedIP: s.HashIP("2.2.2.2"), Path: "/", Section: "code"},
	}
	for _, v := range visits {
		if err := s.RecordVisit(ctx, v); err != nil {
			t.Fatalf("RecordVisit: %v", err)
		}
	}

	events := []CopyEvent{
		{SnippetTitle: "A", OK: true},
		{SnippetTitle: "A", OK: true},
		{SnippetTitle: "B", OK: false, Reason: "NotAllowedError"},
	}
	for _, e := range events {
		if err := s.RecordCopy(ctx, e); err != nil {
			t.Fatalf("RecordCopy: %v", err)
		}
	}

	stats, err := s.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.TotalVisitors != 3 || stats.UniqueVisitors != 2 {
		t.Errorf("visitors = %d/%d, want 3/2", stats.TotalVisitors, stats.UniqueVisitors)
	}
	if stats.VisitorsToday != 3 || stats.VisitorsThisWeek != 3 {
		t.Errorf("today/week = %d/%d, want 3/3", stats.VisitorsToday, stats.VisitorsThisWeek)
	}
	if stats.SectionViews["code"] != 2 || stats.SectionViews["tips"] != 1 {
		t.Errorf("section views = %v", stats.SectionViews)
	}
	if stats.TotalCopies != 3 || stats.FailedCopies != 1 {
		t.Errorf("copies = %d/%d, want 3/1", stats.TotalCopies, stats.FailedCopies)
	}
	if len(stats.TopSnippets) != 2 || stats.TopSnippets[0].Title != "A" || stats.TopSnippets[0].Copies != 2 {
		t.Errorf("top snippets = %+v", stats.TopSnippets)
	}
	if stats.TopSnippets[1].Failures != 1 {
		t.Errorf("snippet B failures = %d, want 1", stats.TopSnippets[1].Failures)
	}
	if len(stats.RecentVisitors) != 3 {
		t.Errorf("recent visitors = %d, want 3", len(stats.RecentVisitors))
	}
}

func TestCleanupRemovesOldVisits(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	now := time.Now()

	old := Visit{HashedIP: "old", Path: "/", Timestamp: now.Add(-400 * 24 * time.Hour)}
	fresh := Visit{HashedIP: "fresh", Path: "/", Timestamp: now.Add(-time.Hour)}
	for _, v := range []Visit{old, fresh} {
		if err := s.RecordVisit(ctx, v); err != nil {
			t.Fatal(err)
		}
	}

	n, err := s.Cleanup(ctx, 365*24*time.Hour)
	if err != nil {
		t.Fatalf("Cleanup: %v", err)
	}
	if n != 1 {
		t.Fatalf("Cleanup removed %d rows, want 1", n)
	}

	stats, err := s.Stats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalVisitors != 1 || stats.RecentVisitors[0].HashedIP != "fresh" {
		t.Fatalf("remaining visitors = %+v", stats.RecentVisitors)
	}
}

func TestNewToken(t *testing.T) {
	a, err := NewToken()
	if err != nil {
		t.Fatal(err)
	}
	b, _ := NewToken()
	if len(a) != 64 || a == b {
		t.Fatalf("tokens %q / %q", a, b)
	}
}

func TestVisitorsAndDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	now := time.Now()

	alice, bob := s.HashIP("198.51.100.1"), s.HashIP("198.51.100.2")
	visits := []Visit{
		{HashedIP: alice, Path: "/", Section: "code", Timestamp: now.Add(-3 * time.Minute)},
		{HashedIP: bob, Path: "/", Section: "links", Timestamp: now.Add(-2 * time.Minute)},
		{HashedIP: alice, Path: "/sections/humor", Section: "humor", Timestamp: now.Add(-time.Minute)},
	}
	for _, v := range visits {
		if err := s.RecordVisit(ctx, v); err != nil {
			t.Fatalf("RecordVisit: %v", err)
		}
	}

	got, err := s.Visitors(ctx, 2)
	if err != nil {
		t.Fatalf("Visitors: %v", err)
	}
	if len(got) != 2 || got[0].Section != "humor" || got[1].Section != "links" {
		t.Fatalf("Visitors(2) = %+v, want newest two", got)
	}

	n, err := s.DeleteVisitors(ctx, alice)
	if err != nil {
		t.Fatalf("DeleteVisitors: %v", err)
	}
	if n != 2 {
		t.Fatalf("DeleteVisitors removed %d rows, want 2", n)
	}

	got, err = s.Visitors(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].HashedIP != bob {
		t.Fatalf("remaining visitors = %+v", got)
	}

	if n, _ := s.DeleteVisitors(ctx, "unknown"); n != 0 {
		t.Errorf("deleting an unknown visitor removed %d rows", n)
	}
}
