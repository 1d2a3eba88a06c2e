package handanalyzer

import (
	"testing"

	"github.com/QuangAnhPhan/poker-app/pkg/deck"
	"github.com/stretchr/testify/assert"
)

func TestHandAnalyzer_GetFourOfAKind(t *testing.T) {
	h := New(5, deck.MustCards("2c,3c,3d,3h,3s"))
	r, ok := h.GetFourOfAKind()
	assert.True(t, ok)
	assert.Equal(t, 3, r)
	_, ok = h.GetThreeOfAKind()
	assert.False(t, ok)
	_, ok = h.GetPair()
	assert.False(t, ok)

	h = New(5, deck.MustCards("4s,4h,5c,4d,4c"))
	r, ok = h.GetFourOfAKind()
	assert.True(t, ok)
	assert.Equal(t, 4, r)

	h = New(5, deck.MustCards("9s,4h,5c,4d,4c"))
	r, ok = h.GetFourOfAKind()
	assert.False(t, ok)
	assert.Equal(t, 0, r)
}

func TestHandAnalyzer_GetFullHouse(t *testing.T) {
	h := New(5, deck.MustCards("Ac,2c,Ad,5c,Ah,2d,5h"))
	r, ok := h.GetFullHouse()
	assert.True(t, ok)
	assert.Equal(t, []int{14, 5}, r)

	h = New(5, deck.MustCards("3c,3d,3h,4c,4d,4h,5c"))
	r, ok = h.GetFullHouse()
	assert.True(t, ok)
	assert.Equal(t, []int{4, 3}, r)

	// prefer the pair over the second trip
	h = New(5, deck.MustCards("3c,3d,3h,4c,4d,4h,5c,5d"))
	r, ok = h.GetFullHouse()
	assert.True(t, ok)
	assert.Equal(t, []int{4, 5}, r)

	// prefer the second trip over the pair
	h = New(5, deck.MustCards("7c,7d,7h,6c,6d,6h,5c,5d"))
	r, ok = h.GetFullHouse()
	assert.True(t, ok)
	assert.Equal(t, []int{7, 6}, r)

	h = New(5, deck.MustCards("3c,3d,3h,4c,5d,6h,7c"))
	r, ok = h.GetFullHouse()
	assert.False(t, ok)
	assert.Nil(t, r)

	h = New(5, deck.MustCards("3c,3d,4h,4c,5d,5h,6c"))
	r, ok = h.GetFullHouse()
	assert.False(t, ok)
	assert.Nil(t, r)
}

func TestHandAnalyzer_GetHighCard(t *testing.T) {
	h := New(5, deck.MustCards("Ac,2c,5c,8d,3h"))
	r, ok := h.GetHighCard()
	assert.True(t, ok)
	assert.Equal(t, []int{14, 8, 5, 3, 2}, r)
}

func TestHandAnalyzer_GetPair(t *testing.T) {
	h := New(5, deck.MustCards("2c,5c,2h,5h,6d"))
	r, ok := h.GetPair()
	assert.True(t, ok)
	assert.Equal(t, 5, r)

	h = New(5, deck.MustCards("2c,3c,4h,5h,6d"))
	r, ok = h.GetPair()
	assert.False(t, ok)
	assert.Equal(t, 0, r)
}

func TestHandAnalyzer_GetTwoPair(t *testing.T) {
	h := New(5, deck.MustCards("2c,5c,2h,5h,6d"))
	r, ok := h.GetTwoPair()
	assert.True(t, ok)
	assert.Equal(t, []int{5, 2}, r)

	// three pairs keeps the best two
	h = New(5, deck.MustCards("2c,5c,2h,5h,6d,6h,Ac"))
	r, ok = h.GetTwoPair()
	assert.True(t, ok)
	assert.Equal(t, []int{6, 5}, r)

	h = New(5, deck.MustCards("2c,5c,2h,4h,6d"))
	r, ok = h.GetTwoPair()
	assert.False(t, ok)
	assert.Nil(t, r)
}

func TestHandAnalyzer_GetThreeOfAKind(t *testing.T) {
	h := New(5, deck.MustCards("2c,5c,2h,2d,6d"))
	r, ok := h.GetThreeOfAKind()
	assert.True(t, ok)
	assert.Equal(t, 2, r)

	h = New(5, deck.MustCards("2c,5c,2h,4h,6d"))
	r, ok = h.GetThreeOfAKind()
	assert.False(t, ok)
	assert.Equal(t, 0, r)
}

func TestHandAnalyzer_GetFlush(t *testing.T) {
	h := New(5, deck.MustCards("2c,5c,9c,Jc,Kc"))
	r, ok := h.GetFlush()
	assert.True(t, ok)
	assert.Equal(t, []int{13, 11, 9, 5, 2}, r)

	// seven cards of the same suit keeps the best five
	h = New(5, deck.MustCards("2c,5c,9c,Jc,Kc,3c,Ac"))
	r, ok = h.GetFlush()
	assert.True(t, ok)
	assert.Equal(t, []int{14, 13, 11, 9, 5}, r)

	h = New(5, deck.MustCards("2c,5c,9c,Jc,Kd"))
	r, ok = h.GetFlush()
	assert.False(t, ok)
	assert.Nil(t, r)
}

func TestHandAnalyzer_GetStraight(t *testing.T) {
	h := New(5, deck.MustCards("2c,3d,4h,5s,6c"))
	r, ok := h.GetStraight()
	assert.True(t, ok)
	assert.Equal(t, 6, r)

	// ace-low straight
	h = New(5, deck.MustCards("Ac,2d,3h,4s,5c"))
	r, ok = h.GetStraight()
	assert.True(t, ok)
	assert.Equal(t, 5, r)

	// ace-high straight
	h = New(5, deck.MustCards("Tc,Jd,Qh,Ks,Ac"))
	r, ok = h.GetStraight()
	assert.True(t, ok)
	assert.Equal(t, 14, r)

	// paired card in the middle does not break the straight
	h = New(5, deck.MustCards("9c,8d,8h,7h,6s,5c,4d"))
	r, ok = h.GetStraight()
	assert.True(t, ok)
	assert.Equal(t, 9, r)

	h = New(5, deck.MustCards("2c,3d,4h,5s,7c"))
	r, ok = h.GetStraight()
	assert.False(t, ok)
	assert.Equal(t, 0, r)
}

func TestHandAnalyzer_GetStraightFlush(t *testing.T) {
	h := New(5, deck.MustCards("2c,3c,4c,5c,6c"))
	r, ok := h.GetStraightFlush()
	assert.True(t, ok)
	assert.Equal(t, 6, r)
	assert.False(t, h.GetRoyalFlush())

	// ace-low straight flush
	h = New(5, deck.MustCards("Ah,2h,3h,4h,5h"))
	r, ok = h.GetStraightFlush()
	assert.True(t, ok)
	assert.Equal(t, 5, r)

	// straight and flush in different suits is not a straight flush
	h = New(5, deck.MustCards("2c,3c,4c,5c,6d,7c,8c"))
	_, ok = h.GetStraightFlush()
	assert.False(t, ok)
	_, ok = h.GetFlush()
	assert.True(t, ok)
}

func TestHandAnalyzer_GetRoyalFlush(t *testing.T) {
	h := New(5, deck.MustCards("Ts,Js,Qs,Ks,As"))
	assert.True(t, h.GetRoyalFlush())
	assert.Equal(t, RoyalFlush, h.GetHand())

	h = New(5, deck.MustCards("Ts,Js,Qs,Ks,Ad"))
	assert.False(t, h.GetRoyalFlush())
}

func TestHandAnalyzer_GetHand(t *testing.T) {
	a := assert.New(t)

	hand := func(s string) Hand {
		return New(5, deck.MustCards(s)).GetHand()
	}

	a.Equal(RoyalFlush, hand("Tc,Jc,Qc,Kc,Ac,2d,3d"))
	a.Equal(StraightFlush, hand("9c,Tc,Jc,Qc,Kc,2d,3d"))
	a.Equal(FourOfAKind, hand("9c,9d,9h,9s,Kc,2d,3d"))
	a.Equal(FullHouse, hand("9c,9d,9h,Ks,Kc,2d,3d"))
	a.Equal(Flush, hand("2c,5c,9c,Jc,Kc,3d,4d"))
	a.Equal(Straight, hand("5c,6d,7h,8s,9c,2d,Kd"))
	a.Equal(ThreeOfAKind, hand("9c,9d,9h,Js,Kc,2d,3d"))
	a.Equal(TwoPair, hand("9c,9d,Jh,Js,Kc,2d,3d"))
	a.Equal(OnePair, hand("9c,9d,Jh,Qs,Kc,2d,3d"))
	a.Equal(HighCard, hand("9c,8d,Jh,Qs,Kc,2d,3d"))
}

func TestHandAnalyzer_GetStrength(t *testing.T) {
	a := assert.New(t)

	strength := func(s string) int {
		return New(5, deck.MustCards(s)).GetStrength()
	}

	// the hand ladder is strictly increasing
	hands := []string{
		"9c,8d,Jh,Qs,Kc,2d,3d", // high card
		"9c,9d,Jh,Qs,Kc,2d,3d", // pair
		"9c,9d,Jh,Js,Kc,2d,3d", // two pair
		"9c,9d,9h,Js,Kc,2d,3d", // three of a kind
		"5c,6d,7h,8s,9c,2d,Kd", // straight
		"2c,5c,9c,Jc,Kc,3d,4d", // flush
		"9c,9d,9h,Ks,Kc,2d,3d", // full house
		"9c,9d,9h,9s,Kc,2d,3d", // four of a kind
		"9c,Tc,Jc,Qc,Kc,2d,3d", // straight flush
		"Tc,Jc,Qc,Kc,Ac,2d,3d", // royal flush
	}

	for i := 1; i < len(hands); i++ {
		a.Greater(strength(hands[i]), strength(hands[i-1]), "%s beats %s", hands[i], hands[i-1])
	}

	// kickers break ties
	a.Greater(strength("Ac,Ad,Kh,Qs,Jc"), strength("Ac,Ad,Kh,Qs,Tc"))

	// suits never matter
	a.Equal(strength("Ac,Ad,Kh,Qs,Jc"), strength("Ah,As,Kd,Qc,Jd"))

	// higher two pair wins over a bigger second pair
	a.Greater(strength("Ac,Ad,2h,2s,3c"), strength("Kc,Kd,Qh,Qs,Ac"))

	// ace-low straight loses to six-high straight
	a.Greater(strength("2c,3d,4h,5s,6c"), strength("Ac,2d,3h,4s,5c"))
}

func TestHandAnalyzer_sevenCardBoard(t *testing.T) {
	// best five of seven
	h := New(5, deck.MustCards("Ah,Ad,7c,7d,2s,9h,Kc"))
	assert.Equal(t, TwoPair, h.GetHand())

	r, ok := h.GetTwoPair()
	assert.True(t, ok)
	assert.Equal(t, []int{14, 7}, r)
}
