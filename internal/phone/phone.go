// Package phone validates free-form phone strings and reformats them into
// the canonical international dialing form the messaging deep-links need.
package phone

import (
	"fmt"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

const (
	// ReasonMissing is reported for empty or whitespace-only input.
	ReasonMissing = "missing"
	// ReasonInvalid is reported when the cleaned number fails
	// numbering-plan validation.
	ReasonInvalid = "invalid format"
)

// Result is a pure derived value; recompute it per record.
type Result struct {
	IsValid bool
	// Formatted is calling code + national significant number, digits only.
	// This exact form is what the link builder consumes. Empty if invalid.
	Formatted string
	// Display is the human-readable international format, or the
	// best-effort cleaned input when invalid so operators keep context.
	Display     string
	ErrorReason string
	IsMobile    bool
}

// Normalizer applies a country default to numbers that arrive without an
// international prefix.
type Normalizer struct {
	DefaultRegion string // ISO region for numbering-plan validation, e.g. "IN"
	CallingCode   string // dialing prefix matching the region, e.g. "91"
}

func NewNormalizer(region, callingCode string) *Normalizer {
	return &Normalizer{DefaultRegion: region, CallingCode: callingCode}
}

// Clean strips everything but digits, preserving a single leading "+".
func Clean(raw string) string {
	trimmed := strings.TrimSpace(raw)
	hasPlus := strings.HasPrefix(trimmed, "+")
	var digits strings.Builder
	for _, r := range trimmed {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if hasPlus && digits.Len() > 0 {
		return "+" + digits.String()
	}
	return digits.String()
}

// Normalize never returns an error and never panics: anything unparseable
// comes back as an invalid Result with diagnostic context.
func (n *Normalizer) Normalize(raw string) (result Result) {
	if strings.TrimSpace(raw) == "" {
		return Result{ErrorReason: ReasonMissing}
	}

	defer func() {
		if r := recover(); r != nil {
			result = Result{
				Display:     raw,
				ErrorReason: fmt.Sprintf("phone parsing error: %v", r),
			}
		}
	}()

	cleaned := Clean(raw)
	if !strings.HasPrefix(cleaned, "+") {
		if !strings.HasPrefix(cleaned, n.CallingCode) {
			// Local formats often carry a trunk "0"; drop it before
			// prefixing the country code.
			cleaned = strings.TrimPrefix(cleaned, "0")
			cleaned = "+" + n.CallingCode + cleaned
		} else {
			cleaned = "+" + cleaned
		}
	}

	num, err := phonenumbers.Parse(cleaned, n.DefaultRegion)
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return Result{
			Display:     cleaned,
			ErrorReason: ReasonInvalid,
		}
	}

	numberType := phonenumbers.GetNumberType(num)
	return Result{
		IsValid:   true,
		Formatted: fmt.Sprintf("%d%s", num.GetCountryCode(), phonenumbers.GetNationalSignificantNumber(num)),
		Display:   phonenumbers.Format(num, phonenumbers.INTERNATIONAL),
		IsMobile:  numberType == phonenumbers.MOBILE || numberType == phonenumbers.FIXED_LINE_OR_MOBILE,
	}
}

// IsLikelyLandline reports a valid number classified as anything other
// than mobile. Invalid numbers are not landlines.
func (n *Normalizer) IsLikelyLandline(raw string) bool {
	result := n.Normalize(raw)
	return result.IsValid && !result.IsMobile
}
