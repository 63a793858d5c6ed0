package mask

import "strings"

// GroupThousands inserts sep between every group of three digits of integer,
// counting from the right. An empty sep returns integer unchanged, and so
// does any input that is not a plain digit run.
//
// Already grouped or otherwise mixed input ("1,234", "12345,678") is returned
// as is, whatever sep is. To regroup, run it through Digits first.
func GroupThousands(integer, sep string) string {
	if sep == "" || len(integer) <= 3 || !isDigitRun(integer) {
		return integer
	}
	var b strings.Builder
	b.Grow(len(integer) + (len(integer)-1)/3*len(sep))
	lead := len(integer) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(integer[:lead])
	for i := lead; i < len(integer); i += 3 {
		b.WriteString(sep)
		b.WriteString(integer[i : i+3])
	}
	return b.String()
}

func isDigitRun(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}
