package game

import "github.com/lox/blackjack/internal/evaluator"

// BlackjackPayout is the multiple of the bet paid for a natural
const BlackjackPayout = 1.5

// DealerStandTotal is the total the dealer stands on (subject to soft 17)
const DealerStandTotal = 17

// Resolve settles one player hand against the final dealer hand. Checks are
// applied in strict order: player bust, player natural, dealer bust, dealer
// natural, then a plain comparison of totals.
func Resolve(player, dealer evaluator.Hand, bet float64) (Outcome, float64) {
	playerBJ := player.IsBlackjack()
	dealerBJ := dealer.IsBlackjack()

	switch {
	case player.IsBust():
		return OutcomeLose, -bet
	case playerBJ && !dealerBJ:
		return OutcomeBlackjack, bet * BlackjackPayout
	case dealer.IsBust():
		return OutcomeWin, bet
	case dealerBJ && !playerBJ:
		return OutcomeLose, -bet
	}

	playerTotal, dealerTotal := player.Best(), dealer.Best()
	switch {
	case playerTotal > dealerTotal:
		return OutcomeWin, bet
	case playerTotal < dealerTotal:
		return OutcomeLose, -bet
	default:
		return OutcomePush, 0
	}
}

// DealerShouldHit applies the fixed dealer policy: draw below 17, and on a
// soft 17 when the table is configured to hit it.
func DealerShouldHit(hand evaluator.Hand, hitSoft17 bool) bool {
	best := hand.Best()
	if best < DealerStandTotal {
		return true
	}
	return best == DealerStandTotal && hitSoft17 && hand.IsSoft()
}
