package utils

// CheckResult reports whether an input passed a presence check and,
// when it did not, why.
type CheckResult struct {
	Valid  bool
	Reason string
}

// NotNullOrEmptyString validates that a required string field was supplied.
// The store runs this before touching the database.
func NotNullOrEmptyString(value string) CheckResult {
	if value == "" {
		return CheckResult{Valid: false, Reason: "value is an empty string"}
	}
	return CheckResult{Valid: true}
}
