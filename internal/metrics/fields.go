package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrMethod   = "method"
	AttrPath     = "path"
	AttrStatus   = "status"
	AttrProvider = "provider"
	AttrKind     = "kind"
	AttrResult   = "result"
)

// Computation kinds reported by the league service.
const (
	KindStandings = "standings"
	KindSplits    = "splits"
	KindAverages  = "averages"
	KindTotals    = "totals"
	KindRecent    = "recent"
	KindLeaders   = "leaders"
	KindDashboard = "dashboard"
)
