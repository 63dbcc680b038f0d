// Package model defines the data structures shared by the lookup, ranking
// and report packages.
//
// A Record pairs a name with its popularity count. Records are produced by
// the popularity lookup, collected by the pipeline aggregator in the
// order of the names, and turned into a Ranking by Rank. A Ranking is the only
// thing the report writers see.
package model
