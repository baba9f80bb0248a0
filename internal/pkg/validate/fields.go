// Package validate holds request-shape checks that run before typed binding.
package validate

// RequiredFields reports whether every name is a key of record. Presence is all
// that is checked; a key holding null or "" still counts as present. Missing
// names are returned in the order they were requested.
func RequiredFields(record map[string]any, names ...string) (bool, []string) {
	var missing []string
	for _, name := range names {
		if _, ok := record[name]; !ok {
			missing = append(missing, name)
		}
	}
	return len(missing) == 0, missing
}
