// Package rgex exports renormalization-group beta functions as a
// deterministic UFO running.py module.
//
// What is rgex?
//
//	A small, single-threaded export engine that takes a model's beta
//	functions and turns them into Running elements a UFO consumer can load:
//		• coeff/: exact coefficients rational × π^k and their canonical keys
//		• symbolic/: closed factor variants, the Provider capability, the Basic provider, the parser
//		• model/: couplings, flavor structures, RGE tables, YAML loading, UFO name mapping
//		• splitter/: rescale, expand and classify every additive term
//		• network/: explicit tensor-index contraction networks for matrix terms
//		• aggregate/: insertion-ordered grouping by category and coefficient
//		• serialize/: the running.py text, helper block included only when needed
//		• export/: one complete pass, file output and stats
//		• groupdb/: scoped lookups of gauge-group and representation data
//
// Data flow:
//
//	model ─► splitter ─► network ─► aggregate ─► serialize ─► running.py
//
// Simple terms (no matrices, no traces) bypass the network stage.
// A term such as 3/2·Y·Y†·Y on a 3×3 Yukawa Y becomes
//
//	Y(0,1) Y(0,2) Y*(3,2) Y(3,1)   ranges (3, 3, 3, 3)
//
// and is written as a generateYukTerm call that a consumer expands over
// every index assignment.
//
// The command-line front end lives in cmd/rgex:
//
//	go install github.com/katalvlaran/rgex/cmd/rgex@latest
//	rgex export --model sm.yaml --out ./UFO
package rgex
