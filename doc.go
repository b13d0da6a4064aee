// File: lixenwraith/confstore/doc.go

// Package confstore provides a thread-safe registry of configuration options
// read from line-oriented `key = value` files, with typed lookups that fall
// back to caller supplied defaults.
//
// File format:
//   - One option per line: `name = value`; whitespace around `=` is ignored
//   - `#` starts a comment anywhere on a line
//   - Lines starting with `[` (section headers) are ignored
//   - Every `"` character in a value is removed
//
// Malformed lines and repeated names within one file are logged and skipped.
// A file that cannot be read or yields no options fails as a whole and
// leaves the store unchanged, so a bad file never produces a partial merge.
//
// Quick Start:
//
//	logger, _ := zap.NewProduction()
//	store := confstore.New(confstore.WithLogger(logger))
//	if !store.LoadInitial("worldserver.conf.dist") {
//	    // store is empty, defaults apply
//	}
//	store.LoadAdditionalFile("worldserver.conf")
//
//	port := store.Int("WorldServerPort", 8085)
//	rate := confstore.Option(store, "Rate.XP.Kill", float32(1))
//	debug := store.Bool("Debug.Enabled", false)
//
// Loading:
// LoadInitial clears the store before loading; LoadAdditionalFile merges on
// top of what is loaded, later files overriding earlier ones. Both return
// false on failure after logging the cause.
//
// Lookups:
// Missing options and values that do not convert are logged and replaced by
// the default. Option and GetOption work for any Value type; the Store has
// shorthand methods for the common ones.
//
// Thread Safety:
// All operations are thread-safe. A single mutex guards the store; a load
// holds it for the whole parse and merge, so readers see the options either
// before or after a load, never in between.
package confstore
