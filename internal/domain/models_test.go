package domain

import (
	"testing"

	"github.com/preston-bernstein/league-stats-service/internal/domain/boxscores"
	"github.com/preston-bernstein/league-stats-service/internal/domain/games"
	"github.com/preston-bernstein/league-stats-service/internal/domain/teams"
)

func TestSeasonCounts(t *testing.T) {
	s := Season{
		Teams:     []teams.Team{{ID: "a"}, {ID: "b"}},
		Games:     []games.Game{{ID: "g1"}},
		TeamStats: []boxscores.TeamGameStat{{TeamID: "a"}, {TeamID: "b"}},
	}
	c := s.Counts()
	if c.Teams != 2 || c.Games != 1 || c.TeamStats != 2 || c.Players != 0 || c.PlayerStats != 0 {
		t.Fatalf("unexpected counts %+v", c)
	}
}

func TestSeasonIsEmpty(t *testing.T) {
	if !(Season{}).IsEmpty() {
		t.Fatalf("expected zero season to be empty")
	}
	if (Season{Teams: []teams.Team{{ID: "a"}}}).IsEmpty() {
		t.Fatalf("expected season with teams to be non-empty")
	}
}
