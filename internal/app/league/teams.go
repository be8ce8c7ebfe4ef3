package league

import (
	"fmt"
	"slices"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/preston-bernstein/league-stats-service/internal/domain"
	"github.com/preston-bernstein/league-stats-service/internal/domain/teams"
)

// maxNameDistance is the largest Levenshtein distance accepted for a misspelled team name.
const maxNameDistance = 3

// ResolveTeam finds a team by id, then by exact name, abbreviation or "City Name"
// (case-insensitive), then by the closest fuzzy match.
func (s *Service) ResolveTeam(idOrName string) (teams.Team, error) {
	season, err := s.season()
	if err != nil {
		return teams.Team{}, err
	}
	return s.resolveTeam(season, idOrName)
}

func (s *Service) resolveTeam(season domain.Season, idOrName string) (teams.Team, error) {
	query := strings.TrimSpace(idOrName)
	if query == "" {
		return teams.Team{}, fmt.Errorf("%w: empty name", ErrTeamNotFound)
	}
	if t, ok := s.store.GetTeam(query); ok {
		return t, nil
	}

	for _, t := range season.Teams {
		for _, name := range teamNames(t) {
			if strings.EqualFold(name, query) {
				return t, nil
			}
		}
	}

	if t, ok := closestTeam(season.Teams, query); ok {
		return t, nil
	}
	return teams.Team{}, fmt.Errorf("%w: %q", ErrTeamNotFound, idOrName)
}

func teamNames(t teams.Team) []string {
	names := []string{t.Name}
	if t.Abbreviation != "" {
		names = append(names, t.Abbreviation)
	}
	if t.City != "" {
		names = append(names, t.City+" "+t.Name, t.City)
	}
	return names
}

type candidate struct {
	team     teams.Team
	distance int
}

// closestTeam prefers names that contain the query's letters in order, then falls back to
// plain edit distance. Ties go to the lower team id.
func closestTeam(teamList []teams.Team, query string) (teams.Team, bool) {
	var names []string
	var owners []teams.Team
	for _, t := range teamList {
		for _, name := range teamNames(t) {
			names = append(names, name)
			owners = append(owners, t)
		}
	}

	var found []candidate
	for _, r := range fuzzy.RankFindNormalizedFold(query, names) {
		found = append(found, candidate{team: owners[r.OriginalIndex], distance: r.Distance})
	}
	if len(found) == 0 {
		lower := strings.ToLower(query)
		for i, name := range names {
			d := fuzzy.LevenshteinDistance(lower, strings.ToLower(name))
			if d <= maxNameDistance {
				found = append(found, candidate{team: owners[i], distance: d})
			}
		}
	}
	if len(found) == 0 {
		return teams.Team{}, false
	}
	best := slices.MinFunc(found, func(a, b candidate) int {
		if a.distance != b.distance {
			return a.distance - b.distance
		}
		return strings.Compare(a.team.ID, b.team.ID)
	})
	return best.team, true
}
