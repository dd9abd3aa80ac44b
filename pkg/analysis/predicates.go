/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: predicates.go
Description: Total predicates over a resistance profile. Absent antibiotics are treated
as insufficient evidence so no check can fire on missing data.
*/

package analysis

import (
	"strings"

	"github.com/kleascm/mechid/pkg/interfaces"
)

func isS(p interfaces.Profile, ab string) bool { return p.Is(ab, interfaces.Susceptible) }
func isI(p interfaces.Profile, ab string) bool { return p.Is(ab, interfaces.Intermediate) }
func isR(p interfaces.Profile, ab string) bool { return p.Is(ab, interfaces.Resistant) }

// isNS reports intermediate or resistant
func isNS(p interfaces.Profile, ab string) bool { return isI(p, ab) || isR(p, ab) }

func anyS(p interfaces.Profile, abs ...string) bool {
	for _, ab := range abs {
		if isS(p, ab) {
			return true
		}
	}
	return false
}

func anyR(p interfaces.Profile, abs ...string) bool {
	for _, ab := range abs {
		if isR(p, ab) {
			return true
		}
	}
	return false
}

func anyNS(p interfaces.Profile, abs ...string) bool {
	for _, ab := range abs {
		if isNS(p, ab) {
			return true
		}
	}
	return false
}

// allS reports whether every listed antibiotic was tested and is susceptible
func allS(p interfaces.Profile, abs ...string) bool {
	if len(abs) == 0 {
		return false
	}
	for _, ab := range abs {
		if !isS(p, ab) {
			return false
		}
	}
	return true
}

// allNS reports whether every listed antibiotic was tested and is not susceptible
func allNS(p interfaces.Profile, abs ...string) bool {
	if len(abs) == 0 {
		return false
	}
	for _, ab := range abs {
		if !isNS(p, ab) {
			return false
		}
	}
	return true
}

// susceptibleWhereTested reports whether at least one listed antibiotic was tested
// and none of the tested ones is I or R
func susceptibleWhereTested(p interfaces.Profile, abs ...string) bool {
	tested := false
	for _, ab := range abs {
		c, ok := p.Get(ab)
		if !ok {
			continue
		}
		tested = true
		if c != interfaces.Susceptible {
			return false
		}
	}
	return tested
}

// withCall returns the listed antibiotics that carry the given call, in argument order
func withCall(p interfaces.Profile, call interfaces.Call, abs ...string) []string {
	var out []string
	for _, ab := range abs {
		if p.Is(ab, call) {
			out = append(out, ab)
		}
	}
	return out
}

// humanList joins names as "a, b or c"
func humanList(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " or " + names[len(names)-1]
	}
}
