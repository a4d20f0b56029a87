package web

import (
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"

	"github.com/semka95/devcamper/domain"
)

// AppValidator represents validation struct
type AppValidator struct {
	UniTrans   *ut.UniversalTranslator
	V          *validator.Validate
	Translator ut.Translator
}

// NewAppValidator will initialize validator with translator
func NewAppValidator() (*AppValidator, error) {
	av := new(AppValidator)
	translator := en.New()
	av.UniTrans = ut.New(translator, translator)
	var found bool
	av.Translator, found = av.UniTrans.GetTranslator("en")
	if !found {
		av.Translator = av.UniTrans.GetFallback()
	}

	av.V = validator.New()

	err := enTranslations.RegisterDefaultTranslations(av.V, av.Translator)
	if err != nil {
		return nil, err
	}

	av.V.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err = av.V.RegisterValidation("career", validateCareer); err != nil {
		return nil, err
	}

	err = av.V.RegisterTranslation("career", av.Translator,
		func(ut ut.Translator) error {
			return ut.Add("career", "{0} must be one of: "+strings.Join(domain.Careers, ", "), true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T("career", fe.Field())
			return t
		},
	)
	if err != nil {
		return nil, err
	}

	return av, nil
}

// Validate serving to be called by Echo to validate request body
func (av *AppValidator) Validate(i interface{}) error {
	return av.V.Struct(i)
}

func validateCareer(fl validator.FieldLevel) bool {
	v := fl.Field().String()
	for _, c := range domain.Careers {
		if c == v {
			return true
		}
	}
	return false
}
