package validate

// This package adds struct and field validation as a thin wrapper around the go-playground/validator package.
//
// e.g. internal/config/config.go
//   type Slider struct {
//       Min  float64 `yaml:"min" validate:"gte=0"`
//       Max  float64 `yaml:"max" validate:"gtfield=Min"`
//       Step float64 `yaml:"step" validate:"gt=0"`
//   }
//
// Custom tags registered here:
//   side_length  - a finite, non-negative float64 side length.
//   preset_key   - one of the preset keys "1", "2" or "3".

import (
	"math"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/ensigniasec/pythagoras/internal/triangle"
)

// validatorInstance is a shared validator for the application.
// It is initialized once and reused to avoid repeated allocations.
//
//nolint:gochecknoglobals // Shared validator singleton.
var (
	validatorOnce sync.Once
	validatorInst *validator.Validate
)

// get returns a process-wide singleton of the validator.
func get() *validator.Validate {
	validatorOnce.Do(func() {
		validatorInst = validator.New(validator.WithRequiredStructEnabled())
		// Registration only fails for empty tags or nil funcs.
		_ = validatorInst.RegisterValidation("side_length", sideLength)
		_ = validatorInst.RegisterValidation("preset_key", presetKey)
	})
	return validatorInst
}

// Struct validates a struct using the shared validator instance.
func Struct(v any) error {
	return get().Struct(v)
}

// Var validates a single variable against the provided tag constraints.
func Var(field any, tag string) error {
	return get().Var(field, tag)
}

func sideLength(fl validator.FieldLevel) bool {
	v := fl.Field().Float()
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

func presetKey(fl validator.FieldLevel) bool {
	_, ok := triangle.PresetForKey(fl.Field().String())
	return ok
}
