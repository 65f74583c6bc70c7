package common

// UnknownStr is returned by String methods for values outside their enum range.
const UnknownStr = "unknown"

// FirstNonEmpty returns the first value that is not the empty string.
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
