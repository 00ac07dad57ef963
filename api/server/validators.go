package server

import (
	"github.com/CPU-commits/RedInclusion/forms"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func InitValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(forms.JSONTagName)
		for tag, fn := range forms.Validators {
			v.RegisterValidation(tag, fn)
		}
	}
}
