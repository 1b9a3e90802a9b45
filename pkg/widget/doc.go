// Package widget is the host around the pure core: it owns the
// configuration, the visibility gate, the extracted field set and the answer
// state, and decides when extraction re-runs.
//
// Extraction runs when the widget becomes enabled and whenever the form URL
// changes while enabled; both discard answers typed so far. Changing only
// overrides or styles does not re-extract. A Widget is driven by a single
// event loop and is not safe for concurrent use.
package widget
