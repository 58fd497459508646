// Package testutil provides testing utilities for sketch generation.
//
// This package is intended for use in tests and benchmarks only.
// It provides deterministic random sources, an independent decoder for the
// ASCII matrix dump, and random packed bit sets.
//
// # Random Sources
//
//	rng := testutil.NewRNG(seed)          // thread-safe, seeded, resettable
//	src := testutil.NewScriptedSource(0, 3, 1) // replays fixed draws
//
// # Dump Round Trip
//
//	var buf bytes.Buffer
//	_ = m.Dump(&buf)
//	words, err := testutil.ParseDump[uint64](&buf, m.RowLen)
package testutil
