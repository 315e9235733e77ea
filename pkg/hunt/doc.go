/*
Package hunt drives the search loop.

A Hunter walks a candidate space in order, skips every candidate the exclusion
filter rules out, hands the rest to the recovery engine one at a time and stops
at the first match. Failed candidates are recorded so that a restarted hunt
does not repeat them.

	h := hunt.New(engine, exclusion.New(store),
		hunt.WithLogger(logger),
		hunt.WithMatchSink(file.NewMatchStore(".")),
	)
	outcome, err := h.Run(ctx, s, hunt.Params{
		Target:    domain.Target{Address: addr, WalletType: "ethereum"},
		AddrLimit: 1,
		Typos:     1,
	})
*/
package hunt
