// SPDX-License-Identifier: MIT

// Option constructors check their own arguments and panic on nonsense; the
// shape constructors report problems as errors instead.

package builder

import "math/rand"

// BuilderOption adjusts the shared settings of a BuildRows or BuildGraph call.
type BuilderOption func(*builderConfig)

// WithNameScheme picks how members are named.
func WithNameScheme(fn NameFn) BuilderOption {
	if fn == nil {
		panic("builder: WithNameScheme(nil)")
	}
	return func(c *builderConfig) {
		c.nameFn = fn
	}
}

// WithRand hands RandomSparse a caller-owned source.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed makes RandomSparse reproducible.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithAffiliations sets the affiliation ("unit") values assigned round-robin
// to generated vertices. Panics on an empty list.
func WithAffiliations(units ...string) BuilderOption {
	if len(units) == 0 {
		panic("builder: WithAffiliations()")
	}
	list := append([]string(nil), units...)
	return func(c *builderConfig) {
		c.affiliations = list
	}
}

// WithFirstID sets the id of the first generated vertex. Panics if id < 0.
func WithFirstID(id int64) BuilderOption {
	if id < 0 {
		panic("builder: WithFirstID(id<0)")
	}
	return func(c *builderConfig) {
		c.firstID = id
	}
}

// WithContactDomain sets the domain of generated contact addresses. An empty
// domain leaves the Contact column blank.
func WithContactDomain(domain string) BuilderOption {
	return func(c *builderConfig) {
		c.contactDomain = domain
	}
}
