package recommend

import "strings"

// ParseSkillList splits a comma-delimited skill/language string into trimmed
// tokens, dropping empties and case-insensitive duplicates while keeping the
// first-seen casing and order. Empty input yields an empty list, never an
// error.
func ParseSkillList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	seen := map[string]bool{}
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key := strings.ToLower(part)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, part)
	}
	return out
}
