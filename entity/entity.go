// SPDX-License-Identifier: MIT
// Package entity defines the immutable record carried by every vertex of the
// network graph: a stable integer identifier plus descriptive attributes.
//
// An Entity is a plain value. Once constructed it is never mutated; the graph
// copies it into its vertex arena on load. Two entities are the same entity
// only when their IDs match (see Same), regardless of the other fields.
package entity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalid is returned by Validate when a field violates its constraints.
var ErrInvalid = errors.New("entity: invalid entity")

// ErrUnknownAttribute indicates that an attribute name could not be parsed.
var ErrUnknownAttribute = errors.New("entity: unknown attribute")

// validate is the shared validator instance; validator.Validate caches struct
// metadata and is safe for concurrent use.
var validate = validator.New()

// Entity is a person or infrastructure node listed in a roster.
//
// Field names follow the roster header: Name is the display name ("nodeName"),
// Category is the group column, Affiliation is the unit column.
type Entity struct {
	ID          int64  `validate:"gte=0"`
	Name        string `validate:"required,max=256"`
	Category    string `validate:"max=256"`
	Affiliation string `validate:"max=256"`
	Contact     string `validate:"max=256"`
}

// New returns an Entity with all string attributes trimmed of surrounding whitespace.
func New(id int64, name, category, affiliation, contact string) Entity {
	return Entity{
		ID:          id,
		Name:        strings.TrimSpace(name),
		Category:    strings.TrimSpace(category),
		Affiliation: strings.TrimSpace(affiliation),
		Contact:     strings.TrimSpace(contact),
	}
}

// Validate checks the struct constraints and reports the first violated field.
func (e Entity) Validate() error {
	if err := validate.Struct(e); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: field %s failed %q (id=%d)", ErrInvalid, fe.Field(), fe.Tag(), e.ID)
		}

		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

// Same reports whether e and other denote the same entity (identical IDs).
func (e Entity) Same(other Entity) bool { return e.ID == other.ID }

// Field returns the value of the requested attribute.
func (e Entity) Field(attr Attribute) string {
	switch attr {
	case AttrName:
		return e.Name
	case AttrCategory:
		return e.Category
	case AttrAffiliation:
		return e.Affiliation
	default:
		return ""
	}
}

// Matches reports whether the attribute equals value, ignoring case.
func (e Entity) Matches(attr Attribute, value string) bool {
	return strings.EqualFold(e.Field(attr), value)
}

// String renders the entity as "Name (#id)".
func (e Entity) String() string {
	return fmt.Sprintf("%s (#%d)", e.Name, e.ID)
}
