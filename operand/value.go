package operand

import (
	"strconv"
	"strings"
)

// ParseValue parses a numeric literal.
//
// A trailing 'h', 'b' or 'd' selects base 16, 2 or 10. When no suffix is
// present a leading "0x", "0b" or "0d" selects the base instead. Both are
// case-insensitive, and a literal with neither is decimal. A leading '-'
// negates the value.
func ParseValue(text string) (value int, err error) {
	str := text
	negative := false
	if strings.HasPrefix(str, "-") {
		negative = true
		str = str[1:]
	}

	base := 10
	detected := false

	if len(str) > 1 {
		switch str[len(str)-1] {
		case 'h', 'H':
			base, detected = 16, true
		case 'b', 'B':
			base, detected = 2, true
		case 'd', 'D':
			base, detected = 10, true
		}
		if detected {
			str = str[:len(str)-1]
		}
	}

	if !detected && len(str) > 2 {
		switch strings.ToLower(str[:2]) {
		case "0x":
			base, detected = 16, true
		case "0b":
			base, detected = 2, true
		case "0d":
			base, detected = 10, true
		}
		if detected {
			str = str[2:]
		}
	}

	// Signs were handled above; ParseInt would otherwise accept "--1".
	if len(str) == 0 || str[0] == '-' || str[0] == '+' {
		err = ErrParseValue(text)
		return
	}

	v64, perr := strconv.ParseInt(str, base, 32)
	if perr != nil {
		err = ErrParseValue(text)
		return
	}

	value = int(v64)
	if negative {
		value = -value
	}

	return
}

// checkRange parses text and verifies min <= value <= max.
func checkRange(text string, min, max int) (value int, err error) {
	value, err = ParseValue(text)
	if err != nil {
		return
	}

	if value < min || value > max {
		err = &ErrOperandRange{Token: text, Min: min, Max: max}
	}

	return
}
