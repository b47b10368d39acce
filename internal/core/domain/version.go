package domain

import (
	"strings"

	goversion "github.com/hashicorp/go-version"
	"go.trai.ch/zerr"
)

// MinSupportedVersion is the oldest host API version whose classpaths can be extracted.
const MinSupportedVersion = "7.0"

// featurePrefix is prepended to the sanitized version to form a valid identifier.
const featurePrefix = "gradle"

// VersionID identifies a host API version such as "7.0", "8.13" or "8.0-rc-1".
// Ordering compares numeric dot-components; equality is exact on the declared token.
type VersionID struct {
	raw    string
	parsed *goversion.Version
}

// ParseVersion parses a declared version token.
func ParseVersion(raw string) (VersionID, error) {
	token := strings.TrimSpace(raw)
	if token == "" {
		return VersionID{}, zerr.With(zerr.Wrap(ErrInvalidVersion, "empty version token"), "version", raw)
	}
	if token[0] < '0' || token[0] > '9' {
		return VersionID{}, zerr.With(zerr.Wrap(ErrInvalidVersion, "version must start with a digit"), "version", raw)
	}
	v, err := goversion.NewVersion(token)
	if err != nil {
		return VersionID{}, zerr.With(zerr.Wrap(ErrInvalidVersion, err.Error()), "version", raw)
	}
	return VersionID{raw: token, parsed: v}, nil
}

// MustParseVersion is like ParseVersion but panics on malformed input.
// It is intended for constants.
func MustParseVersion(raw string) VersionID {
	v, err := ParseVersion(raw)
	if err != nil {
		panic(err)
	}
	return v
}

// String returns the version token as it was declared.
func (v VersionID) String() string {
	return v.raw
}

// IsZero reports whether v was never parsed.
func (v VersionID) IsZero() bool {
	return v.parsed == nil
}

// Compare returns -1, 0 or 1 when v is older, equal or newer than other.
func (v VersionID) Compare(other VersionID) int {
	return v.parsed.Compare(other.parsed)
}

// Less reports whether v orders before other.
func (v VersionID) Less(other VersionID) bool {
	return v.Compare(other) < 0
}

// Equal reports whether both versions were declared with the same token.
func (v VersionID) Equal(other VersionID) bool {
	return v.raw == other.raw
}

// FeatureName derives the identifier used for the variant's units and capability.
func (v VersionID) FeatureName() string {
	return featurePrefix + sanitizeIdentifier(v.raw)
}

// MarshalYAML renders the declared token.
func (v VersionID) MarshalYAML() (any, error) {
	return v.raw, nil
}

// ValidateRange fails with ErrOutOfRangeVersion when id is outside [minimum, maximum].
// Both bounds are inclusive.
func ValidateRange(id, minimum, maximum VersionID) error {
	if id.Compare(minimum) >= 0 && id.Compare(maximum) <= 0 {
		return nil
	}
	err := zerr.Wrap(ErrOutOfRangeVersion, "target must be between "+minimum.String()+" and "+maximum.String())
	err = zerr.With(err, "version", id.String())
	err = zerr.With(err, "min", minimum.String())
	return zerr.With(err, "max", maximum.String())
}

func sanitizeIdentifier(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
