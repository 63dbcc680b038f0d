// Package config provides configuration structures and utilities for mathrank.
// It defines where the list of names is fetched from, how popularity lookups
// are performed, and how the ranking is reported.
package config
