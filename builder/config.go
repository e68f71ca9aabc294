// SPDX-License-Identifier: MIT
// Package: netanalyzer/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • nameFn        = DefaultNameFn       ("n0","n1",...)
//   • rng           = nil                 (pure unless seeded)
//   • affiliations  = [DefaultAffiliation]
//   • firstID       = DefaultFirstID
//   • contactDomain = DefaultContactDomain

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Vertex name strategy: global index -> display name.
	nameFn NameFn
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Affiliations are assigned round-robin by global index.
	affiliations []string
	// Id of the vertex with global index 0.
	firstID int64
	// Domain of generated contact addresses; empty leaves Contact blank.
	contactDomain string
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		nameFn:        DefaultNameFn,
		affiliations:  []string{DefaultAffiliation},
		firstID:       DefaultFirstID,
		contactDomain: DefaultContactDomain,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	if len(cfg.affiliations) == 0 {
		cfg.affiliations = []string{DefaultAffiliation}
	}

	return cfg
}

// affiliation returns the round-robin affiliation of global index i.
func (c builderConfig) affiliation(i int) string {
	return c.affiliations[i%len(c.affiliations)]
}
