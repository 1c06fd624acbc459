package domain

// Assign copies src into dst only when src is set. PATCH merges are a
// flat list of Assign calls over the optional request fields; unset
// fields leave the entity untouched.
func Assign[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
