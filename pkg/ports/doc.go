/*
Package ports defines the driven ports (interfaces) of the hunt driver.

These interfaces decouple the driver from concrete storage backends and from the
external recovery engine, so the same loop runs against a flat file, Redis or an
in-memory set, and against a real engine process or a test double.

# Key Interfaces

  - ExclusionStore: persists candidate phrases that are known not to match.
  - RecoveryEngine: tests one candidate phrase against the target.
  - MatchSink: records the phrase once a match is found.
  - Locker: keeps two drivers from hunting the same target on a shared store.
*/
package ports
