// SPDX-License-Identifier: MIT

// Package aggregate groups classified terms for serialization.
//
// Groups is an insertion-ordered two-level map:
//
//	category → coefficient key → entries
//
// Keys and entries keep first-seen order, so two runs over the same model
// produce the same grouping. Categories are reported in the fixed output
// order of model.Categories; a category that never received an entry is
// absent from Categories.
//
// Entries are either simple (a coupling plus plain symbols) or indexed
// (a synthesized network.Network, which carries its own symbols).
package aggregate
