package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/BuzzLyutic/plm-api/internal/model"
	"github.com/BuzzLyutic/plm-api/internal/service"
)

var errEmptyBody = errors.New("empty request body")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeJSON reads the request body into dst. Decode failures become validation errors.
func decodeJSON(r *http.Request, dst any) error {
	if r.Body == nil || r.ContentLength == 0 {
		return service.NewValidationError(errEmptyBody.Error())
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return service.NewValidationError(fmt.Sprintf("invalid json: %v", err))
	}
	return nil
}

// validateRequest runs struct tag validation and reports every failing field.
func validateRequest(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	verr := &service.ValidationError{}
	for _, fe := range fieldErrs {
		verr.Add(fieldMessage(fe), fe.Field())
	}
	return verr.ErrOrNil()
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", fe.Field())
	case "email":
		return fmt.Sprintf("The %s field must be a valid email address.", fe.Field())
	default:
		return fmt.Sprintf("The %s field is invalid.", fe.Field())
	}
}

func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, service.NewValidationError(fmt.Sprintf("%s must be an integer.", name), name)
	}
	return id, nil
}

// queryInt returns def when the parameter is absent.
func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, service.NewValidationError(fmt.Sprintf("%s must be an integer.", name), name)
	}
	return n, nil
}

func pageParams(r *http.Request) (model.PageParams, error) {
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		return model.PageParams{}, err
	}
	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		return model.PageParams{}, err
	}
	return model.PageParams{Limit: limit, Offset: offset}, nil
}
