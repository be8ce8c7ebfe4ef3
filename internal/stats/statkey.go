package stats

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownStat is returned when a stat name cannot be resolved to a StatKey.
var ErrUnknownStat = errors.New("unknown stat")

// StatKey names a leaderboard category.
type StatKey int

const (
	StatPoints StatKey = iota + 1
	StatRebounds
	StatOffensiveRebounds
	StatDefensiveRebounds
	StatAssists
	StatSteals
	StatBlocks
	StatTurnovers
	StatFouls
	StatMinutes
	StatFieldGoalsMade
	StatThreePointersMade
	StatFreeThrowsMade
	StatPlusMinus
	StatFieldGoalPercentage
	StatTwoPointPercentage
	StatThreePointPercentage
	StatFreeThrowPercentage
)

type statDef struct {
	name    string
	aliases []string
	pct     bool
	rate    func(RateLine) float64
	total   func(TotalLine) float64
}

var statDefs = map[StatKey]statDef{
	StatPoints: {
		name: "points", aliases: []string{"pts"},
		rate:  func(l RateLine) float64 { return l.PointsPerGame },
		total: func(l TotalLine) float64 { return float64(l.Points) },
	},
	StatRebounds: {
		name: "rebounds", aliases: []string{"reb"},
		rate:  func(l RateLine) float64 { return l.ReboundsPerGame },
		total: func(l TotalLine) float64 { return float64(l.Rebounds) },
	},
	StatOffensiveRebounds: {
		name: "offensiveRebounds", aliases: []string{"oreb"},
		rate:  func(l RateLine) float64 { return l.OffensiveReboundsPerGame },
		total: func(l TotalLine) float64 { return float64(l.OffensiveRebounds) },
	},
	StatDefensiveRebounds: {
		name: "defensiveRebounds", aliases: []string{"dreb"},
		rate:  func(l RateLine) float64 { return l.DefensiveReboundsPerGame },
		total: func(l TotalLine) float64 { return float64(l.DefensiveRebounds) },
	},
	StatAssists: {
		name: "assists", aliases: []string{"ast"},
		rate:  func(l RateLine) float64 { return l.AssistsPerGame },
		total: func(l TotalLine) float64 { return float64(l.Assists) },
	},
	StatSteals: {
		name: "steals", aliases: []string{"stl"},
		rate:  func(l RateLine) float64 { return l.StealsPerGame },
		total: func(l TotalLine) float64 { return float64(l.Steals) },
	},
	StatBlocks: {
		name: "blocks", aliases: []string{"blk"},
		rate:  func(l RateLine) float64 { return l.BlocksPerGame },
		total: func(l TotalLine) float64 { return float64(l.Blocks) },
	},
	StatTurnovers: {
		name: "turnovers", aliases: []string{"tov", "to"},
		rate:  func(l RateLine) float64 { return l.TurnoversPerGame },
		total: func(l TotalLine) float64 { return float64(l.Turnovers) },
	},
	StatFouls: {
		name: "fouls", aliases: []string{"pf"},
		rate:  func(l RateLine) float64 { return l.FoulsPerGame },
		total: func(l TotalLine) float64 { return float64(l.Fouls) },
	},
	StatMinutes: {
		name: "minutes", aliases: []string{"min"},
		rate:  func(l RateLine) float64 { return l.MinutesPerGame },
		total: func(l TotalLine) float64 { return float64(l.Minutes) },
	},
	StatFieldGoalsMade: {
		name: "fieldGoalsMade", aliases: []string{"fgm"},
		rate:  func(l RateLine) float64 { return l.FieldGoalsMadePerGame },
		total: func(l TotalLine) float64 { return float64(l.FieldGoalsMade) },
	},
	StatThreePointersMade: {
		name: "threePointersMade", aliases: []string{"3pm", "fg3m"},
		rate:  func(l RateLine) float64 { return l.ThreePointersMadePerGame },
		total: func(l TotalLine) float64 { return float64(l.ThreePointersMade) },
	},
	StatFreeThrowsMade: {
		name: "freeThrowsMade", aliases: []string{"ftm"},
		rate:  func(l RateLine) float64 { return l.FreeThrowsMadePerGame },
		total: func(l TotalLine) float64 { return float64(l.FreeThrowsMade) },
	},
	StatPlusMinus: {
		name: "plusMinus", aliases: []string{"pm", "+/-"},
		rate:  func(l RateLine) float64 { return l.PlusMinusPerGame },
		total: func(l TotalLine) float64 { return float64(l.PlusMinus) },
	},
	StatFieldGoalPercentage: {
		name: "fieldGoalPercentage", aliases: []string{"fg%", "fg_pct", "fgpct"}, pct: true,
		rate:  func(l RateLine) float64 { return l.FieldGoalPercentage },
		total: func(l TotalLine) float64 { return l.FieldGoalPercentage },
	},
	StatTwoPointPercentage: {
		name: "twoPointPercentage", aliases: []string{"2p%", "fg2_pct"}, pct: true,
		rate:  func(l RateLine) float64 { return l.TwoPointPercentage },
		total: func(l TotalLine) float64 { return l.TwoPointPercentage },
	},
	StatThreePointPercentage: {
		name: "threePointPercentage", aliases: []string{"3p%", "fg3_pct"}, pct: true,
		rate:  func(l RateLine) float64 { return l.ThreePointPercentage },
		total: func(l TotalLine) float64 { return l.ThreePointPercentage },
	},
	StatFreeThrowPercentage: {
		name: "freeThrowPercentage", aliases: []string{"ft%", "ft_pct"}, pct: true,
		rate:  func(l RateLine) float64 { return l.FreeThrowPercentage },
		total: func(l TotalLine) float64 { return l.FreeThrowPercentage },
	},
}

// StatKeys lists every known key in declaration order.
func StatKeys() []StatKey {
	keys := make([]StatKey, 0, len(statDefs))
	for k := StatPoints; k <= StatFreeThrowPercentage; k++ {
		keys = append(keys, k)
	}
	return keys
}

// Valid reports whether k is a known stat.
func (k StatKey) Valid() bool {
	_, ok := statDefs[k]
	return ok
}

// IsPercentage reports whether the stat is a made/attempted ratio.
func (k StatKey) IsPercentage() bool {
	return statDefs[k].pct
}

func (k StatKey) String() string {
	if def, ok := statDefs[k]; ok {
		return def.name
	}
	return fmt.Sprintf("StatKey(%d)", int(k))
}

// MarshalText renders the canonical stat name.
func (k StatKey) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStat, int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText accepts any name ParseStatKey accepts.
func (k *StatKey) UnmarshalText(text []byte) error {
	parsed, err := ParseStatKey(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ParseStatKey resolves a canonical name or short alias, case-insensitively.
func ParseStatKey(raw string) (StatKey, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	if name == "" {
		return 0, fmt.Errorf("%w: empty name", ErrUnknownStat)
	}
	for _, k := range StatKeys() {
		def := statDefs[k]
		if strings.ToLower(def.name) == name {
			return k, nil
		}
		for _, alias := range def.aliases {
			if alias == name {
				return k, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStat, raw)
}

// Value returns the line's per-game value for the stat. Unknown keys read as zero.
func (l RateLine) Value(k StatKey) float64 {
	if def, ok := statDefs[k]; ok {
		return def.rate(l)
	}
	return 0
}

// Value returns the line's total for the stat (or the ratio, for percentages).
// Unknown keys read as zero.
func (l TotalLine) Value(k StatKey) float64 {
	if def, ok := statDefs[k]; ok {
		return def.total(l)
	}
	return 0
}
