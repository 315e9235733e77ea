/*
Package domain contains the core models of a wallet hunt.

It defines the target being searched for, the fixed request handed to the
recovery engine, the engine's result and the terminal outcome of a run. The
package is kept free of I/O so that adapters (files, Redis, processes) can be
swapped without touching the driver.

# Key Entities

  - Target: the address (and wallet type) a candidate must unlock.
  - Request: the parameter set passed to the engine for one candidate.
  - Result: a found mnemonic plus its derivation path/coin, or nothing.
  - Outcome: how a run ended (found or exhausted) and what it cost.
*/
package domain
