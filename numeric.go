package morphspell

// isNumericForm recognizes the numeric-form shorthand of spec §4.1 step 8:
// an optional leading minus sign, followed by digit runs separated by at
// most one comma, period, or dash at a time, with no two separators
// adjacent. Examples accepted: "3,14", "-1.000.000", "1-2-3". Only "-" is
// accepted as a leading sign, matching is_number in the reference
// implementation; a leading "+" is not a numeric form and falls through
// to the normal checking pipeline.
func isNumericForm(s string) bool {
	i := 0
	n := len(s)
	if i < n && s[i] == '-' {
		i++
	}
	sawDigit := false
	prevSeparator := false
	for ; i < n; i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9':
			sawDigit = true
			prevSeparator = false
		case c == ',' || c == '.' || c == '-':
			if prevSeparator || !sawDigit {
				return false
			}
			prevSeparator = true
		default:
			return false
		}
	}
	return sawDigit && !prevSeparator
}
