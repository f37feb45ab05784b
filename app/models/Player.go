package models

// Player is one participant's ledger. Money is the gross balance;
// LockedMoney is the part of it held in escrow against pending outgoing buy
// requests. Money-LockedMoney is what the player can actually spend.
type Player struct {
	Id           string `json:"id"`
	Name         string `json:"name"`
	Color        string `json:"color"`
	Position     int    `json:"position"`
	Money        int    `json:"money"`
	LockedMoney  int    `json:"lockedMoney"`
	Properties   []int  `json:"properties"`
	SkipNextTurn bool   `json:"skipNextTurn"`
}

// Spendable is the balance available for new purchases and offers.
func (p *Player) Spendable() int {
	return p.Money - p.LockedMoney
}

// OwnsProperty reports whether spaceId is in the player's property set.
func (p *Player) OwnsProperty(spaceId int) bool {
	for _, id := range p.Properties {
		if id == spaceId {
			return true
		}
	}
	return false
}
