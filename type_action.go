package rebalance

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Action is what has to be done on a holding to reach its target value.
type Action int

const (
	// Balanced means the holding is already at its target value.
	Balanced Action = iota
	// Sell means the holding is worth more than its target value.
	Sell
	// Buy means the holding is worth less than its target value.
	Buy
)

func (a Action) String() string {
	switch a {
	case Balanced:
		return "Balanced"
	case Sell:
		return "Sell"
	case Buy:
		return "Buy"
	default:
		return "Unknown"
	}
}

// IsBalanced reports whether no trade is needed.
func (a Action) IsBalanced() bool { return a == Balanced }

// ParseAction parses an action name, case insensitively.
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(s) {
	case "balanced":
		return Balanced, nil
	case "sell":
		return Sell, nil
	case "buy":
		return Buy, nil
	default:
		return 0, fmt.Errorf("unknown action: %q", s)
	}
}

func (a Action) MarshalJSON() ([]byte, error) {
	return json.Marshal(strings.ToLower(a.String()))
}

func (a *Action) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v, err := ParseAction(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}
