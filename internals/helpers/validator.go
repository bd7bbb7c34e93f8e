// file: internals/helpers/validator.go
package helper

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator instance bersama (nama field pakai json tag supaya
// error validasi langsung cocok dengan payload client)
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateStruct memvalidasi DTO dan mengembalikan SEMUA field yang gagal,
// bukan hanya yang pertama. Nil artinya valid.
func ValidateStruct(s any) map[string][]string {
	if err := validate.Struct(s); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			out := make(map[string][]string, len(ve))
			for _, fe := range ve {
				out[fe.Field()] = append(out[fe.Field()], validationMessage(fe))
			}
			return out
		}
		return map[string][]string{"_": {"format tidak valid"}}
	}
	return nil
}

// ValidateVar memvalidasi satu nilai lepas (mis. field merge-patch)
func ValidateVar(field string, value any, tag string) map[string][]string {
	if err := validate.Var(value, tag); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok && len(ve) > 0 {
			return map[string][]string{field: {validationMessage(ve[0])}}
		}
		return map[string][]string{field: {"format tidak valid"}}
	}
	return nil
}

// validationMessage mengubah error validasi menjadi pesan yang lebih jelas
func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "wajib diisi"
	case "email":
		return "format email tidak valid"
	case "url":
		return "format URL tidak valid"
	case "min":
		return "harus minimal " + fe.Param() + " karakter"
	case "max":
		return "harus kurang dari " + fe.Param() + " karakter"
	case "gte":
		return "harus lebih besar atau sama dengan " + fe.Param()
	case "lte":
		return "harus lebih kecil atau sama dengan " + fe.Param()
	case "gt":
		return "harus lebih besar dari " + fe.Param()
	case "oneof":
		return "harus salah satu dari: " + fe.Param()
	default:
		return "format tidak valid"
	}
}
