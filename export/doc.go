// SPDX-License-Identifier: MIT

// Package export runs one complete UFO running.py export of a model.
//
// The pass is sequential:
//
//	model ─► splitter ─► network (indexed terms only) ─► aggregate ─► serialize
//
// Errors:
//
//   - ErrInconsistentRGESet from New, before any term is touched.
//   - network.ErrFlavorRangeConflict, network.ErrUnknownCouplingStructure and
//     the other synthesis errors abort Run; no partial output is produced.
//   - Unusable mapping entries (model.ErrUnknownCouplingStructure) are logged
//     at error level and skipped.
//   - ErrWriteOutput wraps any failure to write the output file. There is no retry.
//
// Logging goes through a *zap.Logger supplied with WithLogger; the default
// logger discards everything.
package export
