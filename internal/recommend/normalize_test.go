package recommend

import (
	"reflect"
	"testing"
)

func TestParseSkillList(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"whitespace only", "   ", nil},
		{"single", "Python", []string{"Python"}},
		{"trims and drops empties", " Python ,,  Go , ", []string{"Python", "Go"}},
		{"dedup keeps first casing", "Python, python, PYTHON, Go", []string{"Python", "Go"}},
		{"order preserved", "c, b, a", []string{"c", "b", "a"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseSkillList(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("ParseSkillList(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}
