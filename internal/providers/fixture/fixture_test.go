package fixture

import (
	"context"
	"testing"
)

func TestFetchOnCourtReturnsDeterministicDataset(t *testing.T) {
	p := New()

	first, err := p.FetchOnCourt(context.Background(), "E2024", "bar")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	second, _ := p.FetchOnCourt(context.Background(), "E2024", "BAR")

	if first.TeamCode != "BAR" || first.Season != "E2024" {
		t.Fatalf("unexpected dataset identity %+v", first)
	}
	if len(first.Entries) != 3 || len(second.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %d and %d", len(first.Entries), len(second.Entries))
	}
	for i := range first.Entries {
		if first.Entries[i] != second.Entries[i] {
			t.Fatalf("expected deterministic entries, got %+v vs %+v", first.Entries[i], second.Entries[i])
		}
		if first.Entries[i].TeamCode != "BAR" {
			t.Fatalf("expected team code set, got %+v", first.Entries[i])
		}
	}
}

func TestFetchOnCourtEntriesAreCopies(t *testing.T) {
	p := New()
	ds, _ := p.FetchOnCourt(context.Background(), "E2024", "RMB")
	ds.Entries[0].PlayerName = "changed"

	again, _ := p.FetchOnCourt(context.Background(), "E2024", "RMB")
	if again.Entries[0].PlayerName != "LLULL, SERGIO" {
		t.Fatalf("expected seeded data to be isolated, got %q", again.Entries[0].PlayerName)
	}
}

func TestFetchOnCourtAllAndUnknownTeams(t *testing.T) {
	p := New()

	all, _ := p.FetchOnCourt(context.Background(), "E2024", "")
	if len(all.Entries) != 6 {
		t.Fatalf("expected 6 entries across teams, got %d", len(all.Entries))
	}

	unknown, err := p.FetchOnCourt(context.Background(), "E2024", "XYZ")
	if err != nil || len(unknown.Entries) != 0 {
		t.Fatalf("expected empty dataset for unknown team, got %+v err=%v", unknown, err)
	}
}

func TestFetchOnCourtHonoursCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := New().FetchOnCourt(ctx, "E2024", "BAR"); err == nil {
		t.Fatal("expected context error")
	}
}
