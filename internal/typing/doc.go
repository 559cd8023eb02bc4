// Package typing implements the typewriter state machine behind the hero
// banner.
//
// The package is pure: it owns no timers and performs no I/O.
//
//   - [Phrases]: the cyclic phrase list, segmented into grapheme clusters
//   - [State]: phrase index, character count, mode and displayed text
//   - [Timing]: the four delays that pace the animation
//   - [Next]: one transition plus the delay that precedes it
//
// # Example
//
//	p, _ := typing.NewPhrases([]string{"hello", "world"})
//	s := typing.Initial()
//	for {
//		next, delay := typing.Next(s, p, typing.DefaultTiming())
//		time.Sleep(delay)
//		s = next
//	}
//
// A "character" is a user-perceived character (extended grapheme cluster),
// so Hangul syllables, combining marks and emoji sequences are typed and
// deleted as single units.
package typing
