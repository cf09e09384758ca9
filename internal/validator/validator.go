package validator

import (
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	optsGenValidator "github.com/kazhuravlev/options-gen/pkg/validator"
)

var Validator = validator.New()

func init() {
	if err := Validator.RegisterValidation("absdir", isAbsDir); err != nil {
		panic(err)
	}

	optsGenValidator.Set(Validator)
}

// isAbsDir reports whether the field is an absolute path of an existing directory.
func isAbsDir(fl validator.FieldLevel) bool {
	p := fl.Field().String()
	if !filepath.IsAbs(p) {
		return false
	}

	fi, err := os.Stat(p)
	return err == nil && fi.IsDir()
}
