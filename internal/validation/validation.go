// Package validation registers the custom binding tags used by request bodies.
package validation

import (
	"reflect"
	"slices"
	"strings"
	"sync"
	"time"

	"hostel-management-backend/internal/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Custom tags
const (
	TagAmenity  = "amenity"
	TagYYYYMMDD = "yyyymmdd"
)

var ginOnce sync.Once

// Register adds the custom tags to v and reports fields by their JSON name
func Register(v *validator.Validate) error {
	v.RegisterTagNameFunc(jsonName)
	if err := v.RegisterValidation(TagAmenity, isAmenity); err != nil {
		return err
	}
	return v.RegisterValidation(TagYYYYMMDD, isDate)
}

// RegisterGin installs the custom tags on gin's default validator once
func RegisterGin() error {
	var err error
	ginOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			err = Register(v)
		}
	})
	return err
}

func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	}
	return name
}

func isAmenity(fl validator.FieldLevel) bool {
	return slices.Contains(models.Amenities, fl.Field().String())
}

func isDate(fl validator.FieldLevel) bool {
	_, err := time.Parse(models.DateLayout, fl.Field().String())
	return err == nil
}
