package validate

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var validate *validator.Validate

var translator ut.Translator

var (
	cardNumRe = regexp.MustCompile(`^\d{16}$`)
	cardExpRe = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cvvRe     = regexp.MustCompile(`^\d{3,4}$`)
	phoneRe   = regexp.MustCompile(`^\+?\d{7,15}$`)
)

func init() {

	validate = validator.New()

	translator, _ = ut.New(en.New(), en.New()).GetTranslator("en")
	en_translations.RegisterDefaultTranslations(validate, translator)

	// card numbers are matched with whitespace removed
	validate.RegisterValidation("cardnum", func(fl validator.FieldLevel) bool {
		return cardNumRe.MatchString(strings.ReplaceAll(fl.Field().String(), " ", ""))
	})
	validate.RegisterValidation("cardexp", func(fl validator.FieldLevel) bool {
		return cardExpRe.MatchString(fl.Field().String())
	})
	validate.RegisterValidation("cvv", func(fl validator.FieldLevel) bool {
		return cvvRe.MatchString(fl.Field().String())
	})
	validate.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRe.MatchString(fl.Field().String())
	})
}

func Check(val any) error {
	if err := validate.Struct(val); err != nil {

		verrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}

		if len(verrors) < 1 {
			return nil
		}

		return errors.New(verrors[0].Translate(translator))
	}

	return nil
}
