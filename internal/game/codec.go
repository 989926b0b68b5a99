package game

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vovakirdan/candy-maze/internal/maze"
)

// ErrUnknownEvent is returned when decoding an event kind this package
// does not define.
var ErrUnknownEvent = errors.New("game: unknown event kind")

type startGamePayload struct {
	Maze *maze.Maze `json:"maze"`
	Seed uint64     `json:"seed"`
}

type movePayload struct {
	Dir maze.Dir `json:"dir"`
}

type prizePayload struct {
	Prize PrizeKind `json:"prize"`
}

type nextLevelPayload struct {
	Maze *maze.Maze `json:"maze"`
}

// MarshalEvent encodes the payload of ev as JSON. Events without fields
// encode as null. The kind is not part of the payload; store ev.Kind()
// alongside it.
func MarshalEvent(ev Event) ([]byte, error) {
	var v any
	switch ev := ev.(type) {
	case StartGameEvent:
		v = startGamePayload{Maze: ev.Maze, Seed: ev.Seed}
	case MoveEvent:
		v = movePayload{Dir: ev.Dir}
	case SpawnPrizeEvent:
		v = prizePayload{Prize: ev.Prize}
	case PrizeHitEvent:
		v = prizePayload{Prize: ev.Prize}
	case ClearPrizeTextEvent:
		v = prizePayload{Prize: ev.Prize}
	case PrepareNextLevelEvent:
		v = nextLevelPayload{Maze: ev.Maze}
	case DecrementTimeEvent, GoalReachedEvent:
		v = nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownEvent, ev)
	}

	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("game: cannot encode %s event: %w", ev.Kind(), err)
	}
	return data, nil
}

// UnmarshalEvent rebuilds an event from its kind and JSON payload.
func UnmarshalEvent(kind string, payload []byte) (Event, error) {
	switch kind {
	case StartGameEvent{}.Kind():
		var p startGamePayload
		if err := decodePayload(kind, payload, &p); err != nil {
			return nil, err
		}
		return StartGameEvent{Maze: p.Maze, Seed: p.Seed}, nil
	case MoveEvent{}.Kind():
		var p movePayload
		if err := decodePayload(kind, payload, &p); err != nil {
			return nil, err
		}
		return MoveEvent{Dir: p.Dir}, nil
	case DecrementTimeEvent{}.Kind():
		return DecrementTimeEvent{}, nil
	case SpawnPrizeEvent{}.Kind():
		var p prizePayload
		if err := decodePayload(kind, payload, &p); err != nil {
			return nil, err
		}
		return SpawnPrizeEvent{Prize: p.Prize}, nil
	case PrizeHitEvent{}.Kind():
		var p prizePayload
		if err := decodePayload(kind, payload, &p); err != nil {
			return nil, err
		}
		return PrizeHitEvent{Prize: p.Prize}, nil
	case ClearPrizeTextEvent{}.Kind():
		var p prizePayload
		if err := decodePayload(kind, payload, &p); err != nil {
			return nil, err
		}
		return ClearPrizeTextEvent{Prize: p.Prize}, nil
	case GoalReachedEvent{}.Kind():
		return GoalReachedEvent{}, nil
	case PrepareNextLevelEvent{}.Kind():
		var p nextLevelPayload
		if err := decodePayload(kind, payload, &p); err != nil {
			return nil, err
		}
		return PrepareNextLevelEvent{Maze: p.Maze}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownEvent, kind)
}

func decodePayload(kind string, payload []byte, v any) error {
	if err := json.Unmarshal(payload, v); err != nil {
		return fmt.Errorf("game: cannot decode %s event: %w", kind, err)
	}
	return nil
}
