// Package sqlite reads a season from a SQLite database. The schema ships as embedded
// golang-migrate migrations.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/preston-bernstein/league-stats-service/internal/domain"
	"github.com/preston-bernstein/league-stats-service/internal/domain/boxscores"
	"github.com/preston-bernstein/league-stats-service/internal/domain/games"
	"github.com/preston-bernstein/league-stats-service/internal/domain/players"
	"github.com/preston-bernstein/league-stats-service/internal/domain/teams"
	"github.com/preston-bernstein/league-stats-service/internal/providers"
)

// Name identifies this provider in logs and metrics.
const Name = "sqlite"

const busyTimeout = 5 * time.Second

// Config controls how the database is opened.
type Config struct {
	Path        string
	AutoMigrate bool
	SeasonName  string
}

// Provider loads the season with one query per table.
type Provider struct {
	db     *sql.DB
	season string
}

// Open connects to the database at cfg.Path, applying migrations first when AutoMigrate is set.
func Open(ctx context.Context, cfg Config) (*Provider, error) {
	if cfg.Path == "" {
		return nil, errors.New("sqlite: empty database path")
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}
	if cfg.AutoMigrate {
		if err := Migrate(cfg.Path); err != nil {
			return nil, err
		}
	}

	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)&_pragma=journal_mode(WAL)",
		filepath.ToSlash(cfg.Path), busyTimeout.Milliseconds())
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	name := cfg.SeasonName
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(cfg.Path), filepath.Ext(cfg.Path))
	}
	return &Provider{db: db, season: name}, nil
}

// Close releases the database handle.
func (p *Provider) Close() error {
	if p == nil || p.db == nil {
		return nil
	}
	return p.db.Close()
}

// FetchSeason reads every table into a Season.
func (p *Provider) FetchSeason(ctx context.Context) (domain.Season, error) {
	season := domain.Season{Name: p.season}

	var err error
	if season.Teams, err = p.teams(ctx); err != nil {
		return domain.Season{}, fetchErr(err)
	}
	if season.Players, err = p.players(ctx); err != nil {
		return domain.Season{}, fetchErr(err)
	}
	if season.Games, err = p.games(ctx); err != nil {
		return domain.Season{}, fetchErr(err)
	}
	if season.PlayerStats, err = p.playerStats(ctx); err != nil {
		return domain.Season{}, fetchErr(err)
	}
	if season.TeamStats, err = p.teamStats(ctx); err != nil {
		return domain.Season{}, fetchErr(err)
	}
	return season, nil
}

// A missing table means the schema was never applied; retrying will not help.
func fetchErr(err error) error {
	if strings.Contains(err.Error(), "no such table") {
		return providers.Permanent(Name, err)
	}
	return providers.Transient(Name, err)
}

func (p *Provider) teams(ctx context.Context) ([]teams.Team, error) {
	rows, err := p.db.QueryContext(ctx,
		`SELECT id, name, abbreviation, city, division FROM teams ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query teams: %w", err)
	}
	defer rows.Close()

	var out []teams.Team
	for rows.Next() {
		var t teams.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.Abbreviation, &t.City, &t.Division); err != nil {
			return nil, fmt.Errorf("scan team: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (p *Provider) players(ctx context.Context) ([]players.Player, error) {
	rows, err := p.db.QueryContext(ctx,
		`SELECT id, first_name, last_name, team_id, position, jersey_number FROM players ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query players: %w", err)
	}
	defer rows.Close()

	var out []players.Player
	for rows.Next() {
		var pl players.Player
		if err := rows.Scan(&pl.ID, &pl.FirstName, &pl.LastName, &pl.TeamID, &pl.Position, &pl.JerseyNumber); err != nil {
			return nil, fmt.Errorf("scan player: %w", err)
		}
		out = append(out, pl)
	}
	return out, rows.Err()
}

func (p *Provider) games(ctx context.Context) ([]games.Game, error) {
	rows, err := p.db.QueryContext(ctx,
		`SELECT id, home_team_id, away_team_id, home_score, away_score, is_completed, game_date
		 FROM games ORDER BY game_date, id`)
	if err != nil {
		return nil, fmt.Errorf("query games: %w", err)
	}
	defer rows.Close()

	var out []games.Game
	for rows.Next() {
		var (
			g    games.Game
			date string
		)
		if err := rows.Scan(&g.ID, &g.HomeTeamID, &g.AwayTeamID, &g.HomeScore, &g.AwayScore, &g.IsCompleted, &date); err != nil {
			return nil, fmt.Errorf("scan game: %w", err)
		}
		g.GameDate = parseDate(date)
		out = append(out, g)
	}
	return out, rows.Err()
}

func (p *Provider) playerStats(ctx context.Context) ([]boxscores.PlayerGameStat, error) {
	rows, err := p.db.QueryContext(ctx,
		`SELECT id, player_id, team_id, game_id, `+statColumns+` FROM player_game_stats ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query player stats: %w", err)
	}
	defer rows.Close()

	var out []boxscores.PlayerGameStat
	scan := newStatScanner()
	for rows.Next() {
		var (
			s      boxscores.PlayerGameStat
			gameID sql.NullString
		)
		dest := append([]any{&s.ID, &s.PlayerID, &s.TeamID, &gameID}, scan.dest()...)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan player stat: %w", err)
		}
		s.GameID = gameRef(gameID)
		s.StatLine = scan.line()
		out = append(out, s)
	}
	return out, rows.Err()
}

func (p *Provider) teamStats(ctx context.Context) ([]boxscores.TeamGameStat, error) {
	rows, err := p.db.QueryContext(ctx,
		`SELECT id, team_id, game_id, `+statColumns+` FROM team_game_stats ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query team stats: %w", err)
	}
	defer rows.Close()

	var out []boxscores.TeamGameStat
	scan := newStatScanner()
	for rows.Next() {
		var (
			s      boxscores.TeamGameStat
			gameID sql.NullString
		)
		dest := append([]any{&s.ID, &s.TeamID, &gameID}, scan.dest()...)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan team stat: %w", err)
		}
		s.GameID = gameRef(gameID)
		s.StatLine = scan.line()
		out = append(out, s)
	}
	return out, rows.Err()
}

// SaveSeason replaces the database contents with season in a single transaction.
func (p *Provider) SaveSeason(ctx context.Context, season domain.Season) (err error) {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, table := range []string{"team_game_stats", "player_game_stats", "games", "players", "teams"} {
		if _, err = tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	for _, t := range season.Teams {
		if _, err = tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO teams (id, name, abbreviation, city, division) VALUES (?, ?, ?, ?, ?)`,
			t.ID, t.Name, t.Abbreviation, t.City, t.Division); err != nil {
			return fmt.Errorf("insert team %s: %w", t.ID, err)
		}
	}
	for _, pl := range season.Players {
		if _, err = tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO players (id, first_name, last_name, team_id, position, jersey_number) VALUES (?, ?, ?, ?, ?, ?)`,
			pl.ID, pl.FirstName, pl.LastName, pl.TeamID, pl.Position, pl.JerseyNumber); err != nil {
			return fmt.Errorf("insert player %s: %w", pl.ID, err)
		}
	}
	for _, g := range season.Games {
		if _, err = tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO games (id, home_team_id, away_team_id, home_score, away_score, is_completed, game_date) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			g.ID, g.HomeTeamID, g.AwayTeamID, g.HomeScore, g.AwayScore, g.IsCompleted, formatDate(g.GameDate)); err != nil {
			return fmt.Errorf("insert game %s: %w", g.ID, err)
		}
	}
	for _, s := range season.PlayerStats {
		args := append([]any{s.ID, s.PlayerID, s.TeamID, nullString(s.GameID)}, statArgs(s.StatLine)...)
		if _, err = tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO player_game_stats (id, player_id, team_id, game_id, `+statColumns+`) VALUES (?, ?, ?, ?, `+statPlaceholders+`)`,
			args...); err != nil {
			return fmt.Errorf("insert player stat %s: %w", s.ID, err)
		}
	}
	for _, s := range season.TeamStats {
		args := append([]any{s.ID, s.TeamID, nullString(s.GameID)}, statArgs(s.StatLine)...)
		if _, err = tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO team_game_stats (id, team_id, game_id, `+statColumns+`) VALUES (?, ?, ?, `+statPlaceholders+`)`,
			args...); err != nil {
			return fmt.Errorf("insert team stat %s: %w", s.ID, err)
		}
	}
	return tx.Commit()
}

func gameRef(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return boxscores.GameRef(v.String)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// parseDate accepts RFC 3339 timestamps and bare YYYY-MM-DD dates. Anything else is the zero time.
func parseDate(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC()
	}
	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return t
	}
	return time.Time{}
}
