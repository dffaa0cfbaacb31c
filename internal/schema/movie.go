// Package schema validates movie request bodies for create and partial update.
package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"reflect"
	"sort"
	"strings"

	"movies-api/internal/data/entity"
	"movies-api/internal/dto/request"
	"movies-api/pkg/utils"
)

// ValidateMovie checks body against the full movie schema and returns the
// normalized record without an id. Rate defaults to request.DefaultRate.
// A rejected body yields a *utils.ValidationError.
func ValidateMovie(body []byte) (*entity.Movie, error) {
	var req request.MovieRequest
	if err := validate(body, &req); err != nil {
		return nil, err
	}

	rate := request.DefaultRate
	if req.Rate != nil {
		rate = *req.Rate
	}

	return &entity.Movie{
		Title:    *req.Title,
		Year:     *req.Year,
		Director: *req.Director,
		Duration: *req.Duration,
		Poster:   *req.Poster,
		Genre:    toGenres(req.Genre),
		Rate:     rate,
	}, nil
}

// ValidatePartialMovie applies the same field rules as ValidateMovie but
// only to the fields present in body.
func ValidatePartialMovie(body []byte) (*entity.MoviePatch, error) {
	var req request.MovieUpdateRequest
	if err := validate(body, &req); err != nil {
		return nil, err
	}

	return &entity.MoviePatch{
		Title:    req.Title,
		Year:     req.Year,
		Director: req.Director,
		Duration: req.Duration,
		Poster:   req.Poster,
		Genre:    toGenres(req.Genre),
		Rate:     req.Rate,
	}, nil
}

func validate(body []byte, dst interface{}) error {
	typeErrs, err := decodeObject(body, dst)
	if err != nil {
		return err
	}

	failed := make(map[string]bool, len(typeErrs))
	for _, fe := range typeErrs {
		failed[fe.Field] = true
	}

	errs := typeErrs
	for _, fe := range utils.ValidateStruct(dst) {
		// a field that could not be decoded is left nil; don't report it twice
		if failed[baseField(fe.Field)] {
			continue
		}
		if fe.Tag == "required" {
			fe.Message = "Movie " + fe.Field + " is required"
		}
		errs = append(errs, fe)
	}

	if len(errs) == 0 {
		return nil
	}

	order := fieldIndex(dst)
	sort.SliceStable(errs, func(i, j int) bool {
		return order[baseField(errs[i].Field)] < order[baseField(errs[j].Field)]
	})

	return &utils.ValidationError{Errors: errs}
}

// decodeObject decodes each known field of the JSON object in body into the
// matching field of dst. Unknown keys are dropped. Type mismatches are
// collected per field rather than aborting the decode.
func decodeObject(body []byte, dst interface{}) ([]utils.FieldError, error) {
	if !json.Valid(body) {
		return nil, &utils.ValidationError{Errors: []utils.FieldError{{
			Field:   "body",
			Message: "Malformed JSON in request body",
		}}}
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || raw == nil {
		return nil, &utils.ValidationError{Errors: []utils.FieldError{{
			Field:   "body",
			Message: "Expected object, received " + receivedType(body),
		}}}
	}

	v := reflect.ValueOf(dst).Elem()
	t := v.Type()

	var errs []utils.FieldError
	for i := 0; i < t.NumField(); i++ {
		name := jsonName(t.Field(i))
		value, ok := raw[name]
		if !ok {
			continue
		}

		if decodeField(value, v.Field(i).Addr().Interface()) != nil {
			v.Field(i).Set(reflect.Zero(t.Field(i).Type))
			errs = append(errs, utils.FieldError{
				Field:   name,
				Message: typeMessage(name, t.Field(i).Type, value),
			})
		}
	}

	return errs, nil
}

// maxSafeInteger bounds integer fields to values a float64 holds exactly.
const maxSafeInteger = 1<<53 - 1

var errWrongType = errors.New("wrong type")

func decodeField(value json.RawMessage, target interface{}) error {
	if receivedType(value) == "null" {
		return errWrongType
	}

	// integers may arrive in float or exponent form (2010.0, 2.01e3)
	if p, ok := target.(**int); ok {
		if receivedType(value) != "number" {
			return errWrongType
		}
		var f float64
		if err := json.Unmarshal(value, &f); err != nil {
			return err
		}
		if math.Trunc(f) != f || math.Abs(f) > maxSafeInteger {
			return errWrongType
		}
		n := int(f)
		*p = &n
		return nil
	}

	return json.Unmarshal(value, target)
}

func typeMessage(name string, typ reflect.Type, value json.RawMessage) string {
	switch name {
	case "title":
		return "Movie title must be a string"
	case "genre":
		return "Movie genre must be an array of enum Genre"
	}
	return "Expected " + expectedType(typ) + ", received " + receivedType(value)
}

func expectedType(typ reflect.Type) string {
	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	switch typ.Kind() {
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int32, reflect.Int64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice:
		return "array"
	default:
		return typ.Kind().String()
	}
}

func receivedType(value []byte) string {
	value = bytes.TrimSpace(value)
	if len(value) == 0 {
		return "undefined"
	}
	switch value[0] {
	case '"':
		return "string"
	case '{':
		return "object"
	case '[':
		return "array"
	case 't', 'f':
		return "boolean"
	case 'n':
		return "null"
	default:
		return "number"
	}
}

func fieldIndex(dst interface{}) map[string]int {
	t := reflect.TypeOf(dst).Elem()
	order := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		order[jsonName(t.Field(i))] = i
	}
	return order
}

func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" {
		return f.Name
	}
	return name
}

// baseField turns "genre[1]" into "genre".
func baseField(field string) string {
	name, _, _ := strings.Cut(field, "[")
	return name
}

func toGenres(in []string) []entity.Genre {
	if in == nil {
		return nil
	}
	out := make([]entity.Genre, len(in))
	for i, g := range in {
		out[i] = entity.Genre(g)
	}
	return out
}
