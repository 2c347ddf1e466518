// Package phone normalises stored phone numbers into the digits-only E.164
// form expected by the WhatsApp-compatible gateway.
package phone

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/nyaruka/phonenumbers"
)

const defaultRegion = "BR"

type Normalizer struct {
	region string
}

func NewNormalizer(region string) *Normalizer {
	region = strings.ToUpper(strings.TrimSpace(region))
	if region == "" {
		region = defaultRegion
	}
	return &Normalizer{region: region}
}

// Normalize returns the number as country-code-prefixed digits ("5511987654321"),
// or "" when nothing usable remains.
func (n *Normalizer) Normalize(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	candidate := raw
	digits := onlyDigits(raw)
	if digits == "" {
		return ""
	}
	// Numbers stored as bare digits that already start with the region's
	// country code must not get it prefixed a second time.
	if !strings.HasPrefix(raw, "+") && n.hasCountryCode(digits) {
		candidate = "+" + digits
	}

	parsed, err := phonenumbers.Parse(candidate, n.region)
	if err == nil && phonenumbers.IsPossibleNumber(parsed) {
		return strings.TrimPrefix(phonenumbers.Format(parsed, phonenumbers.E164), "+")
	}

	return n.fallback(digits)
}

func (n *Normalizer) hasCountryCode(digits string) bool {
	cc := phonenumbers.GetCountryCodeForRegion(n.region)
	if cc == 0 {
		return false
	}
	prefix := strconv.Itoa(cc)
	// A national BR number is 10-11 digits; anything longer that already
	// begins with the code is taken as international.
	return strings.HasPrefix(digits, prefix) && len(digits) > 11
}

func (n *Normalizer) fallback(digits string) string {
	cc := strconv.Itoa(phonenumbers.GetCountryCodeForRegion(n.region))
	if len(digits) < 8 {
		return ""
	}
	if strings.HasPrefix(digits, cc) && len(digits) > 11 {
		return digits
	}
	return cc + strings.TrimLeft(digits, "0")
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
