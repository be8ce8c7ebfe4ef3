package stats

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/preston-bernstein/league-stats-service/internal/domain/games"
	"github.com/preston-bernstein/league-stats-service/internal/domain/teams"
)

func findStanding(t *testing.T, rows []TeamStanding, id string) TeamStanding {
	t.Helper()
	for _, r := range rows {
		if r.TeamID == id {
			return r
		}
	}
	t.Fatalf("no standing for %s", id)
	return TeamStanding{}
}

func TestComputeStandingsStreakAndLast5(t *testing.T) {
	teamList := []teams.Team{{ID: "x", Name: "X"}, {ID: "y", Name: "Y"}}
	// X: L, W, W, W oldest to newest. Input order is shuffled.
	gameList := []games.Game{
		final("g3", "x", "y", 90, 80, day(1, 3)),
		final("g1", "x", "y", 70, 80, day(1, 1)),
		final("g4", "y", "x", 60, 75, day(1, 4)),
		final("g2", "y", "x", 88, 99, day(1, 2)),
	}

	rows := ComputeStandings(teamList, gameList)
	x := findStanding(t, rows, "x")

	if x.Streak != (Streak{Type: Win, Count: 3}) {
		t.Fatalf("expected W3, got %s", x.Streak)
	}
	if x.Last5 != "3-1" {
		t.Fatalf("expected last5 3-1, got %s", x.Last5)
	}
	y := findStanding(t, rows, "y")
	if y.Streak != (Streak{Type: Loss, Count: 3}) || y.Last5 != "1-3" {
		t.Fatalf("unexpected y form %s %s", y.Streak, y.Last5)
	}
}

func TestComputeStandingsLast5UsesFiveMostRecent(t *testing.T) {
	teamList := []teams.Team{{ID: "x", Name: "X"}, {ID: "y", Name: "Y"}}
	var gameList []games.Game
	// two early wins then five losses
	gameList = append(gameList,
		final("w1", "x", "y", 10, 5, day(2, 1)),
		final("w2", "x", "y", 10, 5, day(2, 2)),
	)
	for i := 3; i <= 7; i++ {
		gameList = append(gameList, final(fmt.Sprintf("l%d", i), "x", "y", 5, 10, day(2, i)))
	}

	x := findStanding(t, ComputeStandings(teamList, gameList), "x")

	if x.Last5 != "0-5" {
		t.Fatalf("expected last5 0-5, got %s", x.Last5)
	}
	if x.Streak.String() != "L5" {
		t.Fatalf("expected L5, got %s", x.Streak)
	}
}

func TestComputeStandingsSameDateKeepsInputOrderNewestFirst(t *testing.T) {
	teamList := []teams.Team{{ID: "x", Name: "X"}, {ID: "y", Name: "Y"}}
	// doubleheader on 1/2: g2 (win) is listed before g3 (loss)
	gameList := []games.Game{
		final("g1", "x", "y", 100, 90, day(1, 1)),
		final("g2", "x", "y", 100, 90, day(1, 2)),
		final("g3", "y", "x", 100, 90, day(1, 2)),
	}

	x := findStanding(t, ComputeStandings(teamList, gameList), "x")

	if x.Streak != (Streak{Type: Win, Count: 2}) {
		t.Fatalf("expected W2, got %s", x.Streak)
	}
	if x.Last5 != "2-1" {
		t.Fatalf("expected last5 2-1, got %s", x.Last5)
	}
	y := findStanding(t, ComputeStandings(teamList, gameList), "y")
	if y.Streak != (Streak{Type: Loss, Count: 2}) {
		t.Fatalf("expected L2 for y, got %s", y.Streak)
	}
}

func TestComputeStandingsTieBreakOnPointDifferential(t *testing.T) {
	teamList := []teams.Team{{ID: "b", Name: "B"}, {ID: "a", Name: "A"}, {ID: "c", Name: "C"}, {ID: "d", Name: "D"}}
	gameList := []games.Game{
		// A: 3-1, +20
		final("a1", "a", "c", 110, 100, day(3, 1)),
		final("a2", "a", "c", 105, 100, day(3, 2)),
		final("a3", "a", "d", 110, 100, day(3, 3)),
		final("a4", "a", "d", 100, 105, day(3, 4)),
		// B: 3-1, +5
		final("b1", "b", "c", 101, 100, day(3, 1)),
		final("b2", "b", "c", 101, 100, day(3, 2)),
		final("b3", "b", "d", 105, 100, day(3, 3)),
		final("b4", "b", "d", 100, 102, day(3, 4)),
	}

	rows := ComputeStandings(teamList, gameList)

	if rows[0].TeamID != "a" || rows[1].TeamID != "b" {
		t.Fatalf("expected a then b, got %s then %s", rows[0].TeamID, rows[1].TeamID)
	}
	if rows[0].WinPercentage != 0.75 || rows[1].WinPercentage != 0.75 {
		t.Fatalf("expected .750 for both, got %v and %v", rows[0].WinPercentage, rows[1].WinPercentage)
	}
	if rows[0].PointDifferential != 20 || rows[1].PointDifferential != 5 {
		t.Fatalf("unexpected differentials %d, %d", rows[0].PointDifferential, rows[1].PointDifferential)
	}
	if rows[0].Rank != 1 || rows[1].Rank != 2 {
		t.Fatalf("unexpected ranks %d, %d", rows[0].Rank, rows[1].Rank)
	}
}

func TestComputeStandingsOrdering(t *testing.T) {
	tests := []struct {
		name  string
		teams []teams.Team
		games []games.Game
		want  []string
	}{
		{
			name:  "win percentage first",
			teams: []teams.Team{{ID: "lo", Name: "Lo"}, {ID: "hi", Name: "Hi"}},
			games: []games.Game{final("g1", "hi", "lo", 2, 1, day(1, 1))},
			want:  []string{"hi", "lo"},
		},
		{
			name:  "more wins at equal percentage",
			teams: []teams.Team{{ID: "one", Name: "One"}, {ID: "two", Name: "Two"}, {ID: "z", Name: "Z"}},
			games: []games.Game{
				final("g1", "one", "z", 2, 1, day(1, 1)),
				final("g2", "two", "z", 2, 1, day(1, 2)),
				final("g3", "two", "z", 2, 1, day(1, 3)),
			},
			want: []string{"two", "one", "z"},
		},
		{
			name:  "name breaks a full tie",
			teams: []teams.Team{{ID: "2", Name: "Bravo"}, {ID: "1", Name: "Alpha"}, {ID: "3", Name: "alpha"}},
			want:  []string{"1", "2", "3"},
		},
		{
			name:  "id breaks a name tie",
			teams: []teams.Team{{ID: "b", Name: "Same"}, {ID: "a", Name: "Same"}},
			want:  []string{"a", "b"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := ComputeStandings(tt.teams, tt.games)
			var got []string
			for _, r := range rows {
				got = append(got, r.TeamID)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestComputeStandingsFiltersNonQualifyingGames(t *testing.T) {
	teamList := []teams.Team{{ID: "h", Name: "H"}, {ID: "a", Name: "A"}}
	scheduled := final("s", "h", "a", 0, 0, day(4, 1))
	scheduled.IsCompleted = false
	unscored := final("u", "h", "a", 0, 88, day(4, 2))
	unfinished := final("p", "h", "a", 50, 40, day(4, 3))
	unfinished.IsCompleted = false
	unknownTeam := final("x", "h", "ghost", 100, 90, day(4, 4))
	selfGame := final("self", "h", "h", 100, 90, day(4, 5))
	draw := final("d", "h", "a", 95, 95, day(4, 6))
	counted := final("c", "a", "h", 101, 99, day(4, 7))

	rows := ComputeStandings(teamList, []games.Game{scheduled, unscored, unfinished, unknownTeam, selfGame, draw, counted})

	h := findStanding(t, rows, "h")
	a := findStanding(t, rows, "a")
	if h.Wins != 0 || h.Losses != 1 || h.AwayLosses != 1 {
		t.Fatalf("unexpected home record %+v", h)
	}
	if a.Wins != 1 || a.HomeWins != 1 || a.Losses != 0 {
		t.Fatalf("unexpected away record %+v", a)
	}
	if h.PointsScored != 99 || h.PointsAllowed != 101 {
		t.Fatalf("unexpected points %d/%d", h.PointsScored, h.PointsAllowed)
	}
}

func TestComputeStandingsTeamWithoutGames(t *testing.T) {
	rows := ComputeStandings([]teams.Team{{ID: "idle", Name: "Idle"}}, nil)

	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	row := rows[0]
	if row.Wins != 0 || row.Losses != 0 || row.WinPercentage != 0 || row.GamesPlayed != 0 {
		t.Fatalf("expected zero row, got %+v", row)
	}
	if row.Streak != (Streak{Type: Loss, Count: 0}) {
		t.Fatalf("expected L0 streak, got %+v", row.Streak)
	}
	if row.Last5 != "0-0" {
		t.Fatalf("expected 0-0, got %s", row.Last5)
	}
}

func TestComputeStandingsOneRowPerTeam(t *testing.T) {
	teamList := []teams.Team{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}, {ID: "a", Name: "Dup"}, {ID: "c", Name: "C"}}
	rows := ComputeStandings(teamList, []games.Game{final("g", "a", "b", 3, 1, day(5, 1))})

	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if a := findStanding(t, rows, "a"); a.TeamName != "A" {
		t.Fatalf("expected first team entry to win, got %s", a.TeamName)
	}
}

func TestComputeStandingsWinsEqualLosses(t *testing.T) {
	teamList := []teams.Team{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}}
	gameList := []games.Game{
		final("1", "a", "b", 100, 90, day(1, 1)),
		final("2", "c", "d", 80, 81, day(1, 1)),
		final("3", "a", "c", 77, 70, day(1, 2)),
		final("4", "b", "d", 60, 59, day(1, 3)),
		final("5", "d", "a", 99, 98, day(1, 4)),
		final("6", "d", "zz", 99, 98, day(1, 5)),
		final("7", "d", "a", 0, 98, day(1, 6)),
	}
	qualifying := 5

	rows := ComputeStandings(teamList, gameList)

	var wins, losses int
	for _, r := range rows {
		wins += r.Wins
		losses += r.Losses
	}
	if wins != qualifying || losses != qualifying {
		t.Fatalf("expected %d wins and losses, got %d/%d", qualifying, wins, losses)
	}
}

func TestComputeStandingsIsIdempotent(t *testing.T) {
	teamList := []teams.Team{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}}
	gameList := []games.Game{
		final("1", "a", "b", 100, 90, day(1, 1)),
		final("2", "b", "a", 100, 90, day(1, 2)),
		final("3", "b", "a", 100, 95, day(1, 2)),
	}

	first := ComputeStandings(teamList, gameList)
	second := ComputeStandings(teamList, gameList)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical output\n%+v\n%+v", first, second)
	}
}

func TestComputeStandingsGamesBehind(t *testing.T) {
	teamList := []teams.Team{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}}
	gameList := []games.Game{
		final("1", "a", "b", 2, 1, day(1, 1)),
		final("2", "a", "b", 2, 1, day(1, 2)),
		final("3", "b", "a", 2, 1, day(1, 3)),
	}

	rows := ComputeStandings(teamList, gameList)

	if rows[0].GamesBehind != 0 {
		t.Fatalf("leader should be 0 GB, got %v", rows[0].GamesBehind)
	}
	if rows[1].GamesBehind != 1 {
		t.Fatalf("expected 1 GB, got %v", rows[1].GamesBehind)
	}
}

func TestWinPercentageRounding(t *testing.T) {
	tests := []struct {
		wins, losses int
		want         float64
	}{
		{0, 0, 0},
		{2, 1, 0.667},
		{1, 2, 0.333},
		{1, 15, 0.063},
		{1, 7, 0.125},
		{5, 0, 1},
	}
	for _, tt := range tests {
		if got := winPercentage(tt.wins, tt.losses); got != tt.want {
			t.Fatalf("winPercentage(%d, %d) = %v, want %v", tt.wins, tt.losses, got, tt.want)
		}
	}
}
