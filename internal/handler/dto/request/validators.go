package request

import (
	"luna-storefront/internal/domain/wallet"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidations installs the wallet format validators on gin's binding
// engine. Rejecting malformed codes and recipients at bind time keeps them
// off the network entirely.
func RegisterValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	_ = v.RegisterValidation("giftcode", func(fl validator.FieldLevel) bool {
		_, err := wallet.ClassifyCode(fl.Field().String())
		return err == nil
	})

	_ = v.RegisterValidation("recipient", func(fl validator.FieldLevel) bool {
		_, err := wallet.NewRecipient(fl.Field().String())
		return err == nil
	})
}
