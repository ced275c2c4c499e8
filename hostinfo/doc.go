// Package hostinfo captures the host parameters relevant to reading a
// benchmark run: CPU model, logical core count and frequency, memory
// totals, and the Go scheduler's GOMAXPROCS.
//
// Collect never fails: probes that error leave their fields at the
// "unknown" markers so a run's context is always printable. The numbers
// are context, not measurements — they travel next to the benchmark
// report so its timings can be compared across machines.
package hostinfo
