package entity

import "github.com/rocketscienceinc/quixo/internal/quixo"

const (
	BotKind    = "bot"
	RandomKind = "random"
	HumanKind  = "human"
)

type Player struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	Mark  quixo.Player `json:"mark"`
	Kind  string       `json:"kind"`
	Depth int          `json:"depth,omitempty"`
}

func NewBot(id string, depth int) *Player {
	return &Player{ID: id, Name: BotName(depth), Kind: BotKind, Depth: depth}
}

func NewRandom(id string) *Player {
	return &Player{ID: id, Name: "Random", Kind: RandomKind}
}

func NewHuman(id string) *Player {
	return &Player{ID: id, Name: "Human", Kind: HumanKind}
}

// BotName - names the bot after how far it looks ahead.
func BotName(depth int) string {
	switch depth {
	case 1:
		return "Dumb AI"
	case 2:
		return "Weak AI"
	case 3:
		return "Strong AI"
	case 4:
		return "GODLIKE AI"
	default:
		return "Undefined AI"
	}
}

func (that *Player) IsBot() bool {
	return that.Kind == BotKind
}

func (that *Player) IsHuman() bool {
	return that.Kind == HumanKind
}
