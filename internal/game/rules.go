package game

import "time"

// Default tuning. These reproduce the classic arcade cabinet settings.
const (
	DefaultRoundTime  = 60 // seconds
	DefaultRows       = 17
	DefaultCols       = 33
	DefaultStepPoints = 10

	DefaultTickInterval      = time.Second
	DefaultPrizeTextDuration = 3 * time.Second
	DefaultLevelEndDelay     = 2800 * time.Millisecond

	// IceCreamLead is how long before a full round would run out the ice
	// cream shows up.
	IceCreamLead = 15 * time.Second
)

// PrizeRules configures one kind of prize.
type PrizeRules struct {
	Label       string        // Bonus text shown after collection, e.g. "+5000"
	BonusPoints int           // Added to points on collection
	BonusTime   int           // Seconds added to the clock on collection
	SpawnDelay  time.Duration // Time into a round before the prize appears
}

// Rules holds every constant the game logic and the scheduler consult.
// The zero value is not usable; start from DefaultRules.
type Rules struct {
	RoundTime  int // Base countdown for a round, in seconds
	StepPoints int // Points per successful move
	Rows, Cols int // Maze size requested from the generator

	Prizes [PrizeKinds]PrizeRules

	TickInterval      time.Duration // Countdown cadence
	PrizeTextDuration time.Duration // How long a bonus text stays visible
	LevelEndDelay     time.Duration // Pause between goal and next round
}

// DefaultRules returns the standard game configuration.
func DefaultRules() Rules {
	return Rules{
		RoundTime:  DefaultRoundTime,
		StepPoints: DefaultStepPoints,
		Rows:       DefaultRows,
		Cols:       DefaultCols,
		Prizes: [PrizeKinds]PrizeRules{
			Lollipop: {
				Label:       "+5000",
				BonusPoints: 5000,
				BonusTime:   15,
				SpawnDelay:  30 * time.Second,
			},
			IceCream: {
				Label:       "+10000",
				BonusPoints: 10000,
				BonusTime:   30,
				SpawnDelay:  IceCreamSpawnDelay(DefaultRoundTime),
			},
		},
		TickInterval:      DefaultTickInterval,
		PrizeTextDuration: DefaultPrizeTextDuration,
		LevelEndDelay:     DefaultLevelEndDelay,
	}
}

// IceCreamSpawnDelay is the ice cream delay for a round length: the ice
// cream shows up IceCreamLead before a full round would run out.
func IceCreamSpawnDelay(roundTime int) time.Duration {
	return time.Duration(roundTime)*time.Second - IceCreamLead
}

// Prize returns the rules for kind k.
func (r Rules) Prize(k PrizeKind) PrizeRules {
	if !k.Valid() {
		return PrizeRules{}
	}
	return r.Prizes[k]
}
