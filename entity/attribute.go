// SPDX-License-Identifier: MIT
package entity

import (
	"fmt"
	"strings"
)

// Attribute selects one of the descriptive string fields of an Entity.
type Attribute int

const (
	// AttrAffiliation selects Entity.Affiliation (roster column "unit").
	AttrAffiliation Attribute = iota
	// AttrCategory selects Entity.Category (roster column "group").
	AttrCategory
	// AttrName selects Entity.Name (roster column "nodeName").
	AttrName
)

// String returns the canonical attribute name.
func (a Attribute) String() string {
	switch a {
	case AttrAffiliation:
		return "affiliation"
	case AttrCategory:
		return "category"
	case AttrName:
		return "name"
	default:
		return fmt.Sprintf("attribute(%d)", int(a))
	}
}

// ParseAttribute maps a user supplied attribute name to an Attribute.
// Roster column aliases are accepted: "unit" for affiliation, "group" for category.
func ParseAttribute(s string) (Attribute, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "affiliation", "unit", "college":
		return AttrAffiliation, nil
	case "category", "group":
		return AttrCategory, nil
	case "name", "nodename":
		return AttrName, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAttribute, s)
	}
}
