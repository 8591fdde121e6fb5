package curve

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrCalibration matches every *CalibrationError.
	ErrCalibration = errors.New("invalid calibration")
	// ErrDomain matches every *DomainError.
	ErrDomain = errors.New("input outside domain")
)

// CalibrationError reports a calibration parameter that violates its
// invariant. Returned by the New* constructors.
type CalibrationError struct {
	Mapping string
	Param   string
	Value   float64
	Reason  string
}

func (e *CalibrationError) Error() string {
	return fmt.Sprintf("%s calibration: %s = %s: %s", e.Mapping, e.Param, formatValue(e.Value), e.Reason)
}

func (e *CalibrationError) Unwrap() error { return ErrCalibration }

// DomainError reports an input outside the domain of a mapping.
type DomainError struct {
	Mapping string
	Param   string
	Value   float64
	Reason  string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s = %s: %s", e.Mapping, e.Param, formatValue(e.Value), e.Reason)
}

func (e *DomainError) Unwrap() error { return ErrDomain }

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
