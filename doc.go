/*
Package wallethunt drives an external seed-recovery engine over a space of
candidate mnemonics.

A hunt takes a target address and, for each mnemonic position, a list of
candidate words. Every combination is handed in order to the engine (btcrecover's
seedrecover.py by default), which is allowed a small typo budget of its own.
Candidates that were already tried, or whose one- or two-word right truncation
was already tried, are skipped, so an interrupted hunt resumes where it stopped.
The first match ends the hunt and is written next to the exclusion set.

# Layout

  - pkg/space enumerates the candidate space lazily, in row-major order.
  - pkg/exclusion decides which candidates are already covered.
  - pkg/hunt is the sequential driver.
  - pkg/adapters/process runs the engine as a child process.
  - internal/adapters/{file,redis} and pkg/adapters/memory persist exclusions.
  - pkg/observability and internal/adapters/http expose progress metrics.
  - cmd/wallethunt is the command line front end.

# Usage

	$ cat hunt.txt
	0x82Bd10047dBE588508d5d976d59693E4Ab4ADaC5
	apology runway argue
	cheese
	famous empty
	...
	$ wallethunt hunt.txt
	$ wallethunt candidates --limit 10 hunt.txt
*/
package wallethunt
