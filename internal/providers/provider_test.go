package providers

import (
	"context"
	"testing"

	"github.com/preston-bernstein/nba-ratings-service/internal/domain/oncourt"
)

func TestProviderFuncDelegates(t *testing.T) {
	var gotSeason, gotTeam string
	p := ProviderFunc(func(_ context.Context, season, teamCode string) (oncourt.Dataset, error) {
		gotSeason, gotTeam = season, teamCode
		return oncourt.Dataset{Season: season, TeamCode: teamCode}, nil
	})

	ds, err := p.FetchOnCourt(context.Background(), "E2024", "BAR")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if gotSeason != "E2024" || gotTeam != "BAR" || ds.TeamCode != "BAR" {
		t.Fatalf("unexpected delegation season=%s team=%s ds=%+v", gotSeason, gotTeam, ds)
	}
}
