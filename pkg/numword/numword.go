// Package numword converts integer amounts into English words using the
// Indian-subcontinent numbering scale (crore/lakh/thousand/hundred), the
// convention used on the printed receipts. The number is decomposed by
// zero-padding to nine digits and slicing into 2-2-2-1-2 groups.
package numword

import (
	"fmt"
	"strings"
)

// Maximum representable amount: 99,99,99,999 (just under 100 crore).
const maxAmount = 999999999

var ones = []string{
	"", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
	"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen",
	"seventeen", "eighteen", "nineteen",
}

var tens = []string{
	"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety",
}

// twoDigits converts 0-99 into words; returns "" for zero.
func twoDigits(n int) string {
	switch {
	case n == 0:
		return ""
	case n < 20:
		return ones[n]
	case n%10 == 0:
		return tens[n/10]
	default:
		return tens[n/10] + " " + ones[n%10]
	}
}

// ToWords converts a non-negative integer into subcontinent-scale words.
// Zero yields "zero". Amounts of 100 crore or more are an error.
func ToWords(n int64) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("numword: negative amount %d", n)
	}
	if n > maxAmount {
		return "", fmt.Errorf("numword: amount %d exceeds %d", n, maxAmount)
	}
	if n == 0 {
		return "zero", nil
	}

	// Zero-pad to nine digits, then slice into crore / lakh / thousand /
	// hundred / tens-and-units groups (2-2-2-1-2).
	s := fmt.Sprintf("%09d", n)
	crore := int(s[0]-'0')*10 + int(s[1]-'0')
	lakh := int(s[2]-'0')*10 + int(s[3]-'0')
	thousand := int(s[4]-'0')*10 + int(s[5]-'0')
	hundred := int(s[6] - '0')
	rest := int(s[7]-'0')*10 + int(s[8]-'0')

	var parts []string
	if crore > 0 {
		parts = append(parts, twoDigits(crore)+" crore")
	}
	if lakh > 0 {
		parts = append(parts, twoDigits(lakh)+" lakh")
	}
	if thousand > 0 {
		parts = append(parts, twoDigits(thousand)+" thousand")
	}
	if hundred > 0 {
		parts = append(parts, ones[hundred]+" hundred")
	}
	if rest > 0 {
		word := twoDigits(rest)
		if len(parts) > 0 {
			word = "and " + word
		}
		parts = append(parts, word)
	}

	return strings.Join(parts, " "), nil
}
