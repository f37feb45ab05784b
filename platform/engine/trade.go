package engine

import (
	"fmt"
	"time"

	"github.com/golomb1/board-creator-monopoly/app/models"
	uuid "github.com/satori/go.uuid"
)

// BuyProperty buys the unowned property the current player is standing on.
// Both sides of the purchase happen together or not at all.
func (g *Game) BuyProperty(playerId string, spaceId int) error {
	if g.phase != PhaseActions {
		return ErrInvalidTransition
	}
	p := g.playerById(playerId)
	space := g.spaceById(spaceId)
	if p == nil || space == nil {
		return ErrInvalidReference
	}
	if p != g.CurrentPlayer() {
		return ErrNotYourTurn
	}
	if space.Type != models.SpaceProperty || space.OwnerId != "" || space.Price <= 0 {
		return fmt.Errorf("%w: space %d is not for sale", ErrInvalidReference, spaceId)
	}
	if p.Position != spaceId {
		return fmt.Errorf("%w: must be standing on the property", ErrInvalidTransition)
	}
	if p.Spendable() < space.Price {
		return ErrInsufficientFunds
	}

	p.Money -= space.Price
	p.Properties = append(p.Properties, space.Id)
	space.OwnerId = p.Id
	g.checkWin()
	return nil
}

// SendBuyRequest opens an escrowed offer to buy an owned property at its
// listed price. The amount is locked in the buyer's ledger until the request
// reaches a terminal state.
func (g *Game) SendBuyRequest(fromId, toId string, propertyId int) (*models.BuyRequest, error) {
	if g.Winner != nil {
		return nil, ErrInvalidTransition
	}
	buyer := g.playerById(fromId)
	seller := g.playerById(toId)
	space := g.spaceById(propertyId)
	if buyer == nil || seller == nil || space == nil {
		return nil, ErrInvalidReference
	}
	if buyer == seller {
		return nil, fmt.Errorf("%w: cannot buy from yourself", ErrInvalidReference)
	}
	if space.OwnerId != seller.Id || !seller.OwnsProperty(propertyId) {
		return nil, fmt.Errorf("%w: %s does not own space %d", ErrInvalidReference, toId, propertyId)
	}
	if buyer.Spendable() < space.Price {
		return nil, ErrInsufficientFunds
	}

	req := &models.BuyRequest{
		Id:           uuid.NewV4().String(),
		FromPlayerId: buyer.Id,
		ToPlayerId:   seller.Id,
		PropertyId:   space.Id,
		Amount:       space.Price,
		Status:       models.RequestPending,
		CreatedAt:    time.Now().UnixMilli(),
	}
	buyer.LockedMoney += req.Amount
	g.Requests = append(g.Requests, req)
	return req, nil
}

// RespondToBuyRequest settles a pending request. Accepting moves the escrowed
// amount into the seller's money and transfers the property; declining just
// releases the lock. Responding to an already-terminal request does nothing.
func (g *Game) RespondToBuyRequest(requestId string, accept bool) error {
	req := g.requestById(requestId)
	if req == nil {
		return ErrInvalidReference
	}
	if req.Status != models.RequestPending {
		return nil
	}
	buyer := g.playerById(req.FromPlayerId)
	seller := g.playerById(req.ToPlayerId)
	if buyer == nil || seller == nil {
		return ErrInvalidReference
	}

	if !accept {
		buyer.LockedMoney -= req.Amount
		req.Status = models.RequestDeclined
		return nil
	}

	// The seller may have lost the property since the offer was made. The
	// acceptance then settles as a decline so the lock is still released
	// exactly once.
	space := g.spaceById(req.PropertyId)
	if space == nil || space.OwnerId != seller.Id {
		buyer.LockedMoney -= req.Amount
		req.Status = models.RequestDeclined
		return nil
	}

	// Forced payments never touch escrow, so the lock is always covered;
	// if the ledger somehow disagrees the transfer must not go through.
	if buyer.Money < req.Amount {
		buyer.LockedMoney -= req.Amount
		req.Status = models.RequestDeclined
		return nil
	}

	buyer.LockedMoney -= req.Amount
	buyer.Money -= req.Amount
	seller.Money += req.Amount

	seller.Properties = removeProperty(seller.Properties, req.PropertyId)
	buyer.Properties = append(buyer.Properties, req.PropertyId)
	space.OwnerId = buyer.Id
	req.Status = models.RequestAccepted
	g.checkWin()
	return nil
}

// CancelBuyRequest lets the requester withdraw a pending offer, releasing
// the escrowed amount.
func (g *Game) CancelBuyRequest(requestId, playerId string) error {
	req := g.requestById(requestId)
	if req == nil {
		return ErrInvalidReference
	}
	if req.FromPlayerId != playerId {
		return fmt.Errorf("%w: only the requester may cancel", ErrInvalidReference)
	}
	if req.Status != models.RequestPending {
		return nil
	}
	buyer := g.playerById(req.FromPlayerId)
	if buyer == nil {
		return ErrInvalidReference
	}
	buyer.LockedMoney -= req.Amount
	req.Status = models.RequestCancelled
	return nil
}

func removeProperty(ids []int, id int) []int {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
