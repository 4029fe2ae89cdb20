package checkout

import "strings"

// DigitsOnly strips every non-digit character from s
func DigitsOnly(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// FormatCardNumber normalizes a raw card number for display: digits only,
// capped at 16, grouped in blocks of four separated by spaces.
func FormatCardNumber(raw string) string {
	digits := DigitsOnly(raw)
	if len(digits) > 16 {
		digits = digits[:16]
	}

	var b strings.Builder
	for i := 0; i < len(digits); i += 4 {
		if i > 0 {
			b.WriteByte(' ')
		}
		end := i + 4
		if end > len(digits) {
			end = len(digits)
		}
		b.WriteString(digits[i:end])
	}
	return b.String()
}

// FormatExpiry normalizes a raw expiry into MM/YY: digits only, capped at
// four, with the slash inserted once a third digit is present.
func FormatExpiry(raw string) string {
	digits := DigitsOnly(raw)
	if len(digits) > 4 {
		digits = digits[:4]
	}
	if len(digits) >= 3 {
		return digits[:2] + "/" + digits[2:]
	}
	return digits
}

// FormatCVV normalizes a raw CVV: digits only, capped at four
func FormatCVV(raw string) string {
	digits := DigitsOnly(raw)
	if len(digits) > 4 {
		digits = digits[:4]
	}
	return digits
}

// CardBrand infers a brand label from the leading digit. This is cosmetic
// only and plays no part in validation; a leading 3 is labeled AMEX even
// though validation still requires 16 digits.
func CardBrand(cardNumber string) string {
	digits := DigitsOnly(cardNumber)
	if digits == "" {
		return ""
	}
	switch digits[0] {
	case '4':
		return "VISA"
	case '5':
		return "MASTERCARD"
	case '3':
		return "AMEX"
	}
	return ""
}
