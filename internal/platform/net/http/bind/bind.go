// Package bind decodes and validates JSON request bodies for handlers
package bind

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	perr "spamwatch/internal/platform/errors"
	"spamwatch/internal/platform/logger"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entrans "github.com/go-playground/validator/v10/translations/en"
)

// maxBodyBytes caps request bodies so a hostile client cannot balloon memory
const maxBodyBytes = 1 << 20

// checker pairs the validator with its english translator
type checker struct {
	validate *validator.Validate
	trans    ut.Translator
}

var (
	once sync.Once
	vc   *checker
)

func get() *checker {
	once.Do(func() {
		locale := en.New()
		trans, _ := ut.New(locale, locale).GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())

		// error messages should name the json field, not the Go field
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			tag := f.Tag.Get("json")
			if tag == "" || tag == "-" {
				return f.Name
			}
			if i := strings.Index(tag, ","); i >= 0 {
				tag = tag[:i]
			}
			return tag
		})

		_ = entrans.RegisterDefaultTranslations(v, trans)
		registerShort(v, trans, "min", "{0} must be at least {1}")
		registerShort(v, trans, "max", "{0} must be at most {1}")

		vc = &checker{validate: v, trans: trans}
	})
	return vc
}

// registerShort overrides a tag's default message with a compact template
func registerShort(v *validator.Validate, trans ut.Translator, tag, template string) {
	_ = v.RegisterTranslation(tag, trans,
		func(t ut.Translator) error { return t.Add(tag, template, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			msg, _ := t.T(tag, fe.Field(), fe.Param())
			return msg
		},
	)
}

// ParseJSON decodes the request body into T, rejects unknown fields and
// trailing data, and runs struct validation. Failures come back as project
// errors so the transport layer maps them to 400s
func ParseJSON[T any](r *http.Request) (T, error) {
	var zero T
	defer func() {
		if err := r.Body.Close(); err != nil {
			logger.Get().Error().Err(err).Msg("failed to close request body")
		}
	}()

	// peek one byte to tell an empty body apart from invalid JSON
	peek := make([]byte, 1)
	n, _ := r.Body.Read(peek)
	if n == 0 {
		// body-less requests on safe methods bind to the zero value
		switch r.Method {
		case http.MethodGet, http.MethodDelete, http.MethodHead, http.MethodOptions:
			return zero, nil
		}
		return zero, perr.JSONErrf("empty body")
	}
	body := io.LimitReader(io.MultiReader(bytes.NewReader(peek[:n]), r.Body), maxBodyBytes)

	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()

	var dst T
	if err := dec.Decode(&dst); err != nil {
		return zero, perr.JSONErrf("invalid JSON: %v", err)
	}
	if dec.More() {
		return zero, perr.JSONErrf("unexpected trailing data")
	}

	if err := get().validate.Struct(dst); err != nil {
		if inv, ok := err.(*validator.InvalidValidationError); ok {
			logger.Get().Error().Err(inv).Msg("validator internal error")
			return zero, perr.JSONErrf("validation error")
		}
		field, msg := firstFailure(err)
		return zero, perr.WithField(perr.ValidationErrf("%s", msg), field)
	}

	return dst, nil
}

// firstFailure picks the first validation error and translates it
func firstFailure(err error) (field, message string) {
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			return fe.Field(), fe.Translate(get().trans)
		}
	}
	return "", err.Error()
}
