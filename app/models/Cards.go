package models

// CardEffect tags what an action card does. The engine switches exhaustively
// over these; an unrecognized tag is handled as a logged no-op.
type CardEffect string

const (
	EffectGoToJail     CardEffect = "go-to-jail"
	EffectSkipTurn     CardEffect = "skip-turn"
	EffectExtraTurn    CardEffect = "extra-turn"
	EffectCollectMoney CardEffect = "collect-money"
	EffectPayMoney     CardEffect = "pay-money"
	EffectAdvance      CardEffect = "advance-spaces"
)

type ActionCard struct {
	Id          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Effect      CardEffect `json:"effect"`
	Value       int        `json:"value,omitempty"`
}

type QuestionCard struct {
	Id            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Reward        int      `json:"reward"`
	Penalty       int      `json:"penalty"`
}
