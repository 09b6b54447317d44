package wallet

import (
	"errors"
	"regexp"
	"strings"
)

var ErrMalformedCode = errors.New("code matches neither the reward nor the gift-card format")

// Two mutually exclusive code families share the wallet's single redeem
// input: reward gift codes minted by send-gift (AAAA-BBBB) and purchased
// gift cards (GC- followed by eight characters). Which upstream endpoint a
// redemption hits depends on the family, so classification happens once,
// here, and the rest of the code dispatches on the variant.
var (
	rewardCodePattern   = regexp.MustCompile(`^[A-Z0-9]{4}-[A-Z0-9]{4}$`)
	giftCardCodePattern = regexp.MustCompile(`^GC-[A-Z0-9]{8}$`)
)

// Code is the tagged union of the two code families.
type Code interface {
	String() string
	isCode()
}

type RewardCode string

func (c RewardCode) String() string { return string(c) }
func (RewardCode) isCode()          {}

type GiftCardCode string

func (c GiftCardCode) String() string { return string(c) }
func (GiftCardCode) isCode()          {}

// ClassifyCode normalizes raw input (trim, uppercase) and returns the
// matching variant. Input matching neither family never reaches the network.
func ClassifyCode(raw string) (Code, error) {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	switch {
	case giftCardCodePattern.MatchString(normalized):
		return GiftCardCode(normalized), nil
	case rewardCodePattern.MatchString(normalized):
		return RewardCode(normalized), nil
	default:
		return nil, ErrMalformedCode
	}
}
