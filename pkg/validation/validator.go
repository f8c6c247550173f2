package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is a singleton validator instance shared by every parameter
// struct in this module.
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// SimulationParameters describes the snapshot range of the simulation
// the halo catalog was drawn from.
type SimulationParameters struct {
	MinSnapshot int `json:"minSnapshot" validate:"gte=0"`
	MaxSnapshot int `json:"maxSnapshot" validate:"gtefield=MinSnapshot"`
}

// ExecutionParameters configures a single build_trees invocation.
type ExecutionParameters struct {
	OutputSnapshots          []int `json:"outputSnapshots" validate:"required,min=1"`
	EnsureMassGrowth         bool  `json:"ensureMassGrowth"`
	SkipMissingDescendants   bool  `json:"skipMissingDescendants"`
	WarnOnMissingDescendants bool  `json:"warnOnMissingDescendants"`
	ThreadCount              int   `json:"threadCount" validate:"gte=0"`
}

// GasCoolingParameters is carried through the build unchanged; only
// MaxFractionalAccretedMass is defined, and it is parsed and validated
// but never consulted by the accretion calculator (see DESIGN.md).
type GasCoolingParameters struct {
	MaxFractionalAccretedMass float64 `json:"maxFractionalAccretedMass" validate:"gte=0"`
}

// ValidateSimulationParameters validates a SimulationParameters value
// using both struct tags and the cross-field invariant min <= max.
func ValidateSimulationParameters(p *SimulationParameters) error {
	if p == nil {
		return errors.New("simulation parameters cannot be nil")
	}
	if err := validate.Struct(p); err != nil {
		return formatValidationError(err)
	}

	return NewConfigValidator("SimulationParameters").
		Custom("MinSnapshot/MaxSnapshot", func() error {
			if p.MinSnapshot > p.MaxSnapshot {
				return fmt.Errorf("min_snapshot %d exceeds max_snapshot %d", p.MinSnapshot, p.MaxSnapshot)
			}
			return nil
		}).
		Validate()
}

// ValidateExecutionParameters validates an ExecutionParameters value.
func ValidateExecutionParameters(p *ExecutionParameters) error {
	if p == nil {
		return errors.New("execution parameters cannot be nil")
	}
	if err := validate.Struct(p); err != nil {
		return formatValidationError(err)
	}

	return NewConfigValidator("ExecutionParameters").
		NonEmptySlice("OutputSnapshots", len(p.OutputSnapshots)).
		NonNegative("ThreadCount", p.ThreadCount).
		Validate()
}

// ValidateGasCoolingParameters validates a GasCoolingParameters value.
func ValidateGasCoolingParameters(p *GasCoolingParameters) error {
	if p == nil {
		return errors.New("gas cooling parameters cannot be nil")
	}
	if err := validate.Struct(p); err != nil {
		return formatValidationError(err)
	}
	return NewConfigValidator("GasCoolingParameters").
		NonNegativeFloat("MaxFractionalAccretedMass", p.MaxFractionalAccretedMass).
		Validate()
}

// formatValidationError converts validator errors to a more user-friendly format.
func formatValidationError(err error) error {
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	for _, e := range validationErrs {
		field := e.Field()
		tag := e.Tag()
		param := e.Param()

		switch tag {
		case "required":
			return fmt.Errorf("%s: field is required", field)
		case "min":
			return fmt.Errorf("%s: must be at least %s", field, param)
		case "max":
			return fmt.Errorf("%s: must not exceed %s", field, param)
		case "gte":
			return fmt.Errorf("%s: must be at least %s", field, param)
		case "gtefield":
			return fmt.Errorf("%s: must be at least the value of %s", field, param)
		default:
			return fmt.Errorf("%s: validation failed (%s)", field, tag)
		}
	}

	return err
}
