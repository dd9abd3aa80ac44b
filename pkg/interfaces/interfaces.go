/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: interfaces.go
Description: Shared types for MechID. Defines susceptibility calls, resistance profiles,
provenance tags and finding bundles used across all packages to break import cycles
and keep the inference pipeline modular.
*/

package interfaces

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrInvalidCall is returned when a susceptibility string cannot be parsed
var ErrInvalidCall = errors.New("invalid susceptibility call")

// Call represents a single susceptibility interpretation.
// The zero value means "no call" and is never stored in a Profile.
type Call int

const (
	Susceptible Call = iota + 1
	Intermediate
	Resistant
)

// String returns the display form used by the lab report
func (c Call) String() string {
	switch c {
	case Susceptible:
		return "Susceptible"
	case Intermediate:
		return "Intermediate"
	case Resistant:
		return "Resistant"
	default:
		return ""
	}
}

// Valid reports whether c is one of S/I/R
func (c Call) Valid() bool {
	return c >= Susceptible && c <= Resistant
}

// ParseCall converts user input into a Call.
// An empty string means untested and returns ok=false with a nil error.
func ParseCall(s string) (call Call, ok bool, err error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return 0, false, nil
	case "susceptible", "s":
		return Susceptible, true, nil
	case "intermediate", "i":
		return Intermediate, true, nil
	case "resistant", "r":
		return Resistant, true, nil
	default:
		return 0, false, fmt.Errorf("%w: %q", ErrInvalidCall, s)
	}
}

// MarshalJSON encodes the call as its display string
func (c Call) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON decodes a display string. Empty strings are rejected here;
// callers that accept blanks should go through ParseProfile.
func (c *Call) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, ok, err := ParseCall(s)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: empty value", ErrInvalidCall)
	}
	*c = parsed
	return nil
}

// Profile maps antibiotic names (exact, case-sensitive) to calls.
// A missing key means the antibiotic was not tested or inferred.
type Profile map[string]Call

// ParseProfile builds a Profile from raw form values. Blank values are dropped.
func ParseProfile(raw map[string]string) (Profile, error) {
	p := make(Profile, len(raw))
	for ab, v := range raw {
		call, ok, err := ParseCall(v)
		if err != nil {
			return nil, fmt.Errorf("antibiotic %s: %w", ab, err)
		}
		if ok {
			p[ab] = call
		}
	}
	return p, nil
}

// Get returns the call for an antibiotic and whether one exists
func (p Profile) Get(antibiotic string) (Call, bool) {
	c, ok := p[antibiotic]
	if !ok || !c.Valid() {
		return 0, false
	}
	return c, true
}

// Has reports whether the antibiotic has a call
func (p Profile) Has(antibiotic string) bool {
	_, ok := p.Get(antibiotic)
	return ok
}

// Is reports whether the antibiotic has exactly the given call.
// Absent antibiotics never match.
func (p Profile) Is(antibiotic string, call Call) bool {
	c, ok := p.Get(antibiotic)
	return ok && c == call
}

// Clone returns an independent copy
func (p Profile) Clone() Profile {
	out := make(Profile, len(p))
	for k, v := range p {
		if v.Valid() {
			out[k] = v
		}
	}
	return out
}

// Keys returns the antibiotic names in sorted order
func (p Profile) Keys() []string {
	keys := make([]string, 0, len(p))
	for k, v := range p {
		if v.Valid() {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// Strings converts the profile to display strings
func (p Profile) Strings() map[string]string {
	out := make(map[string]string, len(p))
	for k, v := range p {
		if v.Valid() {
			out[k] = v.String()
		}
	}
	return out
}

// Provenance records which layer supplied a consolidated value.
// It is informational only and never feeds back into evaluation.
type Provenance string

const (
	ProvenanceUser      Provenance = "User-entered"
	ProvenanceCascade   Provenance = "Cascade rule"
	ProvenanceIntrinsic Provenance = "Intrinsic rule"
)

// ResultRow is one line of the consolidated table
type ResultRow struct {
	Antibiotic string     `json:"antibiotic"`
	Result     Call       `json:"result"`
	Source     Provenance `json:"source"`
}
