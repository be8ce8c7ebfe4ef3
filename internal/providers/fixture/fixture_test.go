package fixture

import (
	"context"
	"reflect"
	"testing"

	"github.com/preston-bernstein/league-stats-service/internal/domain/boxscores"
	"github.com/preston-bernstein/league-stats-service/internal/domain/games"
)

func TestFetchSeasonReturnsDeterministicSeason(t *testing.T) {
	p := New()

	first, err := p.FetchSeason(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	second, _ := p.FetchSeason(context.Background())
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical seasons across calls")
	}

	counts := first.Counts()
	if counts.Teams != 4 || counts.Players != 8 {
		t.Fatalf("unexpected counts %+v", counts)
	}
	if counts.Games != 14 {
		t.Fatalf("expected 14 games, got %d", counts.Games)
	}
	if counts.TeamStats != 24 || counts.PlayerStats != 48 {
		t.Fatalf("unexpected stat counts %+v", counts)
	}
}

func TestFetchSeasonGamesAreValid(t *testing.T) {
	season, _ := New().FetchSeason(context.Background())

	var qualifying int
	for _, g := range season.Games {
		if g.HomeTeamID == g.AwayTeamID {
			t.Fatalf("game %s has the same team on both sides", g.ID)
		}
		if games.Qualifies(g) {
			qualifying++
			if g.HomeScore == g.AwayScore {
				t.Fatalf("game %s is a draw", g.ID)
			}
		}
	}
	if qualifying != 12 {
		t.Fatalf("expected 12 qualifying games, got %d", qualifying)
	}
}

func TestFixtureLinesAreConsistent(t *testing.T) {
	season, _ := New().FetchSeason(context.Background())

	for _, s := range season.TeamStats {
		made := boxscores.Value(s.TwoPointersMade)*2 + boxscores.Value(s.ThreePointersMade)*3 + boxscores.Value(s.FreeThrowsMade)
		if made != boxscores.Value(s.Points) {
			t.Fatalf("%s: made shots %d do not add up to %d points", s.ID, made, boxscores.Value(s.Points))
		}
		if boxscores.Value(s.FieldGoalsAttempted) < boxscores.Value(s.FieldGoalsMade) {
			t.Fatalf("%s: attempts below makes", s.ID)
		}
	}
}

func TestFetchSeasonHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := New().FetchSeason(ctx); err == nil {
		t.Fatalf("expected context error")
	}
}
