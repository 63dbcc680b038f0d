// Package main provides the entry point for the mathrank CLI.
//
// mathrank reads a page listing mathematicians, looks up how often each
// one's Wikipedia article was viewed over the last 60 days, and prints the
// ten most viewed.
//
// Usage:
//
//	mathrank
//	mathrank --url http://example.com/mathmen.htm
//	mathrank --markdown > ranking.md
//
// See --help for all available options.
package main

// main is the entry point for mathrank.
func main() {
	Execute()
}
