package cases

import (
	"fmt"
	"strings"

	"runnable"
)

func init() {
	runnable.MustRegister(runnable.Case{
		Name: "strings/reverse",
		Run:  reverseRoundTrip,
	})
	runnable.MustRegister(runnable.Case{
		Name: "strings/fields",
		Run:  fieldsSplit,
	})
}

// reverse returns s with its runes in reverse order
func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

func reverseRoundTrip() error {
	inputs := []string{"runnable", "héllo wörld", "ab", ""}
	for _, input := range inputs {
		if got := reverse(reverse(input)); got != input {
			return fmt.Errorf("double reverse of %q gave %q", input, got)
		}
	}
	if got := reverse("harness"); got != "ssenrah" {
		return fmt.Errorf("reverse gave %q", got)
	}
	return nil
}

func fieldsSplit() error {
	line := "one two  three\tfour "
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return fmt.Errorf("expected 4 fields, got %d: %v", len(fields), fields)
	}
	if fields[3] != "four" {
		return fmt.Errorf("expected last field \"four\", got %q", fields[3])
	}
	return nil
}
