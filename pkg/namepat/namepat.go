// Package namepat extracts hierarchy hints from scene node names.
// The patterns are convention, not grammar: a trailing ":<digits>" marker
// groups instances under a shared base, and CAD exporters encode an
// external object id either as a trailing "_<digits>" (rehydrated names)
// or as an "Obj.<digits>" token (original assigned names). All functions
// are total; an unmatched name is a miss, never an error.
package namepat

import (
	"regexp"
	"strconv"
)

var (
	suffixPattern     = regexp.MustCompile(`^(.+):(\d+)$`)
	trailingIDPattern = regexp.MustCompile(`_(\d+)(?:_\d+)?$`)
	objTokenPattern   = regexp.MustCompile(`Obj\.(\d+)`)

	exactObjPattern  = regexp.MustCompile(`^Obj\.\d+$`)
	trailingDigitEnd = regexp.MustCompile(`_\d+$`)
)

// SplitSuffix splits an instance-suffixed name like "Obj.195:1" into its
// base ("Obj.195") and suffix index (1). Greedy prefix matching means only
// the final ":<digits>" token splits; a name whose final colon is not
// followed by digits does not match at all.
func SplitSuffix(name string) (base string, index int, ok bool) {
	m := suffixPattern.FindStringSubmatch(name)
	if m == nil {
		return "", 0, false
	}
	index, err := strconv.Atoi(m[2])
	if err != nil {
		// Digit run too long for an int; treat as unsuffixed.
		return "", 0, false
	}
	return m[1], index, true
}

// ExternalID extracts the external object id encoded in a node name.
// A trailing "_<digits>" (optionally followed by a second "_<digits>"
// group on rehydrated synthetic names) is tried first, then an
// "Obj.<digits>" token anywhere in the name.
func ExternalID(name string) (int, bool) {
	if m := trailingIDPattern.FindStringSubmatch(name); m != nil {
		if id, err := strconv.Atoi(m[1]); err == nil {
			return id, true
		}
	}
	if m := objTokenPattern.FindStringSubmatch(name); m != nil {
		if id, err := strconv.Atoi(m[1]); err == nil {
			return id, true
		}
	}
	return 0, false
}

// IsBaseCandidate reports whether an unsuffixed name can serve as the
// natural parent for a group of suffixed instances: either an exact
// "Obj.<digits>" or any name ending in "_<digits>".
func IsBaseCandidate(name string) bool {
	if _, _, suffixed := SplitSuffix(name); suffixed {
		return false
	}
	return exactObjPattern.MatchString(name) || trailingDigitEnd.MatchString(name)
}
