package wallet

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrEmptyRecipient     = errors.New("recipient is empty")
	ErrInvalidRecipient   = errors.New("recipient is neither an email address nor a phone number")
	ErrAmbiguousRecipient = errors.New("recipient matches both email and phone formats")
)

type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelPhone Channel = "phone"
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// Recipient identifies where a gift code is delivered: an email address or
// a phone number, exclusively.
type Recipient struct {
	value   string
	channel Channel
}

func NewRecipient(raw string) (Recipient, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return Recipient{}, ErrEmptyRecipient
	}

	email := emailPattern.MatchString(value)
	phone := isPhone(value)
	switch {
	case email && phone:
		return Recipient{}, ErrAmbiguousRecipient
	case email:
		return Recipient{value: value, channel: ChannelEmail}, nil
	case phone:
		return Recipient{value: value, channel: ChannelPhone}, nil
	default:
		return Recipient{}, ErrInvalidRecipient
	}
}

func (r Recipient) Value() string    { return r.value }
func (r Recipient) Channel() Channel { return r.channel }

// isPhone accepts 6-15 digits after stripping separators, the loosest
// format the storefront has historically allowed.
func isPhone(v string) bool {
	digits := 0
	for _, r := range v {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '+' || r == '-' || r == ' ' || r == '(' || r == ')':
			// separator, ignored
		default:
			return false
		}
	}
	return digits >= 6 && digits <= 15
}
