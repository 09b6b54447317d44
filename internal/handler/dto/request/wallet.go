package request

type SendGiftRequest struct {
	// Recipient is an email address or a phone number; the usecase decides
	// which and rejects anything that is neither.
	Recipient string `json:"recipient" binding:"required,recipient"`
	Points    int64  `json:"points" binding:"required,gt=0"`
	Note      string `json:"note,omitempty"`
}

type RedeemRequest struct {
	Code string `json:"code" binding:"required,giftcode"`
}
