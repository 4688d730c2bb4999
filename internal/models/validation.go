package models

// ValidationResult is the transient outcome of one validator pass. All
// rule groups accumulate into the same flat slices; IsValid is false iff
// Errors is non-empty after every group has run.
type ValidationResult struct {
	IsValid   bool
	Errors    []string
	Warnings  []string
	Successes []string
}

// AddError records an error and flips the result invalid.
func (r *ValidationResult) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
	r.IsValid = false
}

// AddWarning records an informational warning. Warnings never block
// stage advancement.
func (r *ValidationResult) AddWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

// AddSuccess records a confirmation message.
func (r *ValidationResult) AddSuccess(msg string) {
	r.Successes = append(r.Successes, msg)
}

// NewValidationResult returns an empty, valid result.
func NewValidationResult() *ValidationResult {
	return &ValidationResult{IsValid: true}
}
