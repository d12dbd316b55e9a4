package model

import (
	"strings"

	"github.com/golang/geo/r2"
)

// MatchID identifies one fixture. The reference data names matches after the rival.
type MatchID string

// UnknownPlayer is the sentinel the scouting sheets use for unidentified players.
const UnknownPlayer = "unknown"

// IsKnownPlayer reports whether name refers to an identified player.
// Blank names and the "unknown" sentinel are excluded from every aggregation.
func IsKnownPlayer(name string) bool {
	name = strings.TrimSpace(name)
	return name != "" && !strings.EqualFold(name, UnknownPlayer)
}

// EventType classifies one logged action.
type EventType int

const (
	EventOther EventType = iota
	EventPassComplete
	EventPassIncomplete
	EventRecovery
	EventLoss
	EventFoulCommitted
	EventFoulReceived
	EventShot
)

// Raw event codes as they appear in the Event column.
const (
	CodePassComplete   = "PB"
	CodePassIncomplete = "PM"
	CodeRecovery       = "Recuperacion"
	CodeLoss           = "Perdida"
	CodeFoulCommitted  = "Falta"
	CodeFoulReceived   = "Falta recibida"
	CodeShot           = "Tiro"
)

var eventTypeByCode = map[string]EventType{
	CodePassComplete:   EventPassComplete,
	CodePassIncomplete: EventPassIncomplete,
	CodeRecovery:       EventRecovery,
	CodeLoss:           EventLoss,
	CodeFoulCommitted:  EventFoulCommitted,
	CodeFoulReceived:   EventFoulReceived,
	CodeShot:           EventShot,
}

// EventTypeFromCode maps a raw Event column value to its EventType.
// Unrecognized codes map to EventOther.
func EventTypeFromCode(code string) EventType {
	if t, ok := eventTypeByCode[strings.TrimSpace(code)]; ok {
		return t
	}
	return EventOther
}

func (t EventType) String() string {
	switch t {
	case EventPassComplete:
		return "PassComplete"
	case EventPassIncomplete:
		return "PassIncomplete"
	case EventRecovery:
		return "Recovery"
	case EventLoss:
		return "Loss"
	case EventFoulCommitted:
		return "FoulCommitted"
	case EventFoulReceived:
		return "FoulReceived"
	case EventShot:
		return "Shot"
	default:
		return "Other"
	}
}

// IsPass reports whether t is a completed or missed pass.
func (t EventType) IsPass() bool {
	return t == EventPassComplete || t == EventPassIncomplete
}

// Coord is a nullable pitch coordinate. Valid means the raw cell parsed as a
// finite number; range checks belong to the pitch package.
type Coord struct {
	V     float64
	Valid bool
}

// At returns a valid Coord holding v.
func At(v float64) Coord { return Coord{V: v, Valid: true} }

// Missing is the zero Coord.
var Missing = Coord{}

// ---- Raw events ----

// Event is one observed action. Events are created at load time and never mutated.
type Event struct {
	Match    MatchID
	Seq      int // row index within the match
	Player   string
	Code     string
	Type     EventType
	X, Y     Coord
	X2, Y2   Coord // pass end, passes only
	Receiver string
	Result   string
}

// Start returns the event start point. Callers must have cleaned the event first.
func (e Event) Start() r2.Point { return r2.Point{X: e.X.V, Y: e.Y.V} }

// End returns the pass end point. Callers must have cleaned the event first.
func (e Event) End() r2.Point { return r2.Point{X: e.X2.V, Y: e.Y2.V} }

// Scope bounds an aggregation query. The zero value covers all matches.
type Scope struct {
	Match MatchID
}

// AllMatches is the scope spanning every loaded match.
var AllMatches = Scope{}

// MatchScope returns the scope of a single match.
func MatchScope(m MatchID) Scope { return Scope{Match: m} }

// IsAll reports whether s spans every match.
func (s Scope) IsAll() bool { return s.Match == "" }

// Contains reports whether e falls inside the scope.
func (s Scope) Contains(e Event) bool { return s.IsAll() || e.Match == s.Match }

func (s Scope) String() string {
	if s.IsAll() {
		return "all matches"
	}
	return string(s.Match)
}

// ---- Aggregated metrics ----

// PlayerMatchStats holds one player's tallies over a scope. It is derived on
// demand and never cached.
type PlayerMatchStats struct {
	Player string
	Scope  Scope

	PassesComplete   int
	PassesIncomplete int

	Shots         int
	ShotsOnTarget int
	Goals         int

	Recoveries     int
	Losses         int
	FoulsCommitted int
	FoulsReceived  int

	MatchesPlayed int
}

func (s *PlayerMatchStats) TotalPasses() int {
	return s.PassesComplete + s.PassesIncomplete
}

func (s *PlayerMatchStats) AccuracyPct() float64 {
	total := s.TotalPasses()
	if total == 0 {
		return 0
	}
	return float64(s.PassesComplete) / float64(total) * 100
}

func (s *PlayerMatchStats) GoalsPerMatch() float64 {
	if s.MatchesPlayed == 0 {
		return 0
	}
	return float64(s.Goals) / float64(s.MatchesPlayed)
}

func (s *PlayerMatchStats) ShotAccuracyPct() float64 {
	if s.Shots == 0 {
		return 0
	}
	return float64(s.ShotsOnTarget) / float64(s.Shots) * 100
}

// Empty reports whether no qualifying event was found for the scope.
func (s *PlayerMatchStats) Empty() bool {
	return s.TotalPasses() == 0 && s.Shots == 0 && s.Recoveries == 0 && s.Losses == 0 &&
		s.FoulsCommitted == 0 && s.FoulsReceived == 0 && s.MatchesPlayed == 0
}

// Add sums o's tallies into s. MatchesPlayed is left to the caller since it
// does not sum across players.
func (s *PlayerMatchStats) Add(o PlayerMatchStats) {
	s.PassesComplete += o.PassesComplete
	s.PassesIncomplete += o.PassesIncomplete
	s.Shots += o.Shots
	s.ShotsOnTarget += o.ShotsOnTarget
	s.Goals += o.Goals
	s.Recoveries += o.Recoveries
	s.Losses += o.Losses
	s.FoulsCommitted += o.FoulsCommitted
	s.FoulsReceived += o.FoulsReceived
}

// TeamStats holds the summed team tallies for a scope plus the per-player rows.
type TeamStats struct {
	Scope   Scope
	Totals  PlayerMatchStats // Player is empty; MatchesPlayed counts matches in scope
	Players []PlayerMatchStats
}

func (t *TeamStats) Empty() bool { return len(t.Players) == 0 }

// ---- Pass network ----

// PlayerNode is a pass-network vertex.
type PlayerNode struct {
	Player     string
	Pos        r2.Point // average pass start, display frame
	Touches    int
	MarkerSize float64
}

// PassEdge is a directed pass-network edge.
type PassEdge struct {
	From, To   string
	Start, End r2.Point // node positions of From and To
	Count      int
	Width      float64
	Alpha      float64
}

// Network is the pass network of one match scope.
type Network struct {
	Nodes []PlayerNode
	Edges []PassEdge

	// Goalkeeper is the player with the lowest average x before mirroring.
	Goalkeeper  string
	GoalkeeperX float64
	Mirrored    bool

	// OrphanPasses counts completed passes whose receiver never passed the
	// ball and so has no node to connect to.
	OrphanPasses int
}

func (n *Network) Empty() bool { return len(n.Nodes) == 0 }

// ---- Zones ----

// Band is one third along a pitch axis.
type Band int

// Zone is one cell of the 3x3 pitch partition.
type Zone struct {
	Length  Band // along the attacking axis: Exit, Middle, FinalThird
	Lateral Band // across the pitch: Right, Center, Left
}

var lengthBandNames = [3]string{"Exit", "Middle", "FinalThird"}
var lateralBandNames = [3]string{"Right", "Center", "Left"}

func (z Zone) String() string {
	return lengthBandNames[z.Length] + "-" + lateralBandNames[z.Lateral]
}

// AllZones lists the nine zones in length-major order.
func AllZones() []Zone {
	out := make([]Zone, 0, 9)
	for l := Band(0); l < 3; l++ {
		for w := Band(0); w < 3; w++ {
			out = append(out, Zone{Length: l, Lateral: w})
		}
	}
	return out
}

// ZoneCounts maps each zone to its pass count.
type ZoneCounts map[Zone]int

// Total sums every zone.
func (z ZoneCounts) Total() int {
	n := 0
	for _, c := range z {
		n += c
	}
	return n
}

// Histogram is a 3x3 occupancy grid indexed [x bin][y bin].
type Histogram struct {
	Bins  [3][3]int
	Total int
}

// ---- Pass map ----

// PassArrow is one pass drawn on the pass map, in display coordinates.
type PassArrow struct {
	Start, End r2.Point
	Complete   bool
}

// MatchSummary is a lightweight record for list/summary commands.
type MatchSummary struct {
	Match      MatchID
	SourcePath string
	FileHash   string
	ImportID   string
	ImportedAt string
	RowCount   int
}
