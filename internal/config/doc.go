// Package config provides configuration management for the lead scraper.
//
// Configuration comes from three places, in increasing precedence:
//  1. Built-in defaults (NewConfig)
//  2. The optional .leadscan YAML file (delays, reference year, vocabulary
//     extensions)
//  3. CLI flags
//
// The resulting Config is passed into each component via dependency
// injection. Keeping values like the reference year and request delay
// explicit, rather than reading the clock or module-level constants, makes
// extraction and pacing behavior deterministic in tests.
package config
