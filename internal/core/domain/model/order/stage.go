package order

import (
	"fmt"

	"pos/internal/pkg/errs"
)

// Stage is the coarse lifecycle position of an order, of an order line, or of a single
// unit of a line.
//
// Unit transitions:
//
//	Preparing ──> Delivering ──> Billing
//
// Paid is only ever reached by an order through payment; units never hold it.
type Stage int

const (
	// Unknown is the zero value and never valid.
	Unknown Stage = iota

	// Preparing means the kitchen is still working on it.
	Preparing

	// Delivering means it left the kitchen and is on its way to the customer.
	Delivering

	// Billing means it was served and is waiting to be paid.
	Billing

	// Paid is final for an order.
	Paid
)

func getStageStrings() map[Stage]string {
	return map[Stage]string{
		Unknown:    "unknown",
		Preparing:  "preparing",
		Delivering: "delivering",
		Billing:    "billing",
		Paid:       "paid",
	}
}

// ParseStage maps the persisted/wire representation back to a Stage.
func ParseStage(s string) (Stage, error) {
	for stage, str := range getStageStrings() {
		if stage != Unknown && str == s {
			return stage, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("stage", fmt.Errorf("%q is not a valid stage", s))
}

// Validate accepts Preparing, Delivering, Billing and Paid.
func (s Stage) Validate() error {
	if s < Preparing || s > Paid {
		return errs.NewValueIsInvalidErrorWithCause("stage", fmt.Errorf("%d is not a valid stage", s))
	}
	return nil
}

// ValidateUnit accepts only the stages a single unit can be in.
func (s Stage) ValidateUnit() error {
	if !s.IsUnitStage() {
		return errs.NewValueIsInvalidErrorWithCause("unit stage", fmt.Errorf("%s is not a valid unit stage", s))
	}
	return nil
}

// IsUnitStage reports whether s belongs to {Preparing, Delivering, Billing}.
func (s Stage) IsUnitStage() bool {
	return s == Preparing || s == Delivering || s == Billing
}

func (s Stage) String() string {
	if str, ok := getStageStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Next returns the stage a unit moves to when it is ticked off. Only Preparing and
// Delivering can advance.
func (s Stage) Next() (Stage, error) {
	switch s {
	case Preparing:
		return Delivering, nil
	case Delivering:
		return Billing, nil
	default:
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"stage",
			fmt.Errorf("%s is not a stage a unit can advance from", s),
		)
	}
}

// unitDefault is the stage a freshly created unit inherits from its line:
// paid lines hand out billing units and invalid stages fall back to preparing.
func (s Stage) unitDefault() Stage {
	switch s {
	case Paid:
		return Billing
	case Preparing, Delivering, Billing:
		return s
	default:
		return Preparing
	}
}

func (s Stage) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Stage) UnmarshalText(text []byte) error {
	parsed, err := ParseStage(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
