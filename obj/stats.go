package obj

import "github.com/milk9111/platformer/common"

// CoinsPerLife is how many coins buy an extra life.
const CoinsPerLife = 100

// Stats is the per-run scoreboard.
type Stats struct {
	Level string
	Score int
	Coins int
	Lives int

	Cleared  bool
	GameOver bool

	checkpoint    common.Vector
	hasCheckpoint bool

	message     string
	messageTime float64
}

func NewStats(level string, lives int) *Stats {
	return &Stats{Level: level, Lives: lives}
}

func (s *Stats) AddScore(points int) {
	s.Score += points
}

// AddCoin counts a coin and reports whether it earned a life.
func (s *Stats) AddCoin() bool {
	s.Coins++
	if s.Coins >= CoinsPerLife {
		s.Coins -= CoinsPerLife
		s.Lives++
		return true
	}
	return false
}

// ResetLevel starts level name with the score, coins and lives carried
// over.
func (s *Stats) ResetLevel(name string) {
	s.Level = name
	s.Cleared = false
	s.checkpoint, s.hasCheckpoint = common.Vector{}, false
	s.message, s.messageTime = "", 0
}

// SetCheckpoint makes p the respawn point for the rest of the level.
func (s *Stats) SetCheckpoint(p common.Vector) {
	s.checkpoint = p
	s.hasCheckpoint = true
}

func (s *Stats) Checkpoint() (common.Vector, bool) {
	return s.checkpoint, s.hasCheckpoint
}

// ShowMessage puts text on the HUD for duration seconds.
func (s *Stats) ShowMessage(text string, duration float64) {
	s.message = text
	s.messageTime = duration
}

func (s *Stats) Message() string {
	if s.messageTime <= 0 {
		return ""
	}
	return s.message
}

func (s *Stats) Tick(dt float64) {
	if s.messageTime > 0 {
		s.messageTime -= dt
	}
}
