// Package main provides the entry point for the leadscan CLI.
//
// leadscan finds business leads from a natural-language description or
// structured criteria: it searches the web, scrapes matching profiles and
// company sites, and exports the collected leads.
//
// Usage:
//
//	leadscan search "find CTOs at fintech startups in Berlin"
//	leadscan search --company "Acme Corp"
//	leadscan search --names "Jane Doe,John Smith"
//
// See --help for all available options.
package main

// main is the entry point for leadscan.
func main() {
	Execute()
}
