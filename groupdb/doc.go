// SPDX-License-Identifier: MIT

// Package groupdb looks up gauge-group and representation data.
//
// The data lives in an external database behind the DB interface. A DB is
// opened for the duration of one lookup scope and closed on every path out
// of it, errors included. YAMLStore is the file-backed implementation.
//
// Group caches what it has read:
//
//	g, _ := groupdb.NewGroup("QCD", "SU3", db)
//	fund, _ := g.Rep(groupdb.Labels{1, 0})  // dimension 3, complex
//	_ = g.MoreInfo(10)                      // caches the smallest reps
//
// Reality is read from the Frobenius-Schur indicator stored with each
// representation: 1 complex, 0 real, -1 pseudo-real.
//
// U(1) never touches the database: it is abelian with dimension 1.
package groupdb
