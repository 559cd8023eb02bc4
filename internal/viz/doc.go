// Package viz is the presentation surface of the typewriter.
//
// The package implements a full-screen view using the Bubble Tea framework:
//
//   - [Model]: acquires a driver on Init, renders its frames, releases it on quit
//   - [RenderHero]: pure rendering of headline, text and caret
//   - Theme selection with 6 built-in color schemes
//
// # Key Bindings
//
//	T     - Cycle color themes
//	?     - Show key help
//	Q     - Quit
//
// # Reloading
//
// A [ReloadMsg] sent to the running program reconfigures the driver in
// place. Progress through the current phrase survives a timing change but
// not a change of phrases.
package viz
