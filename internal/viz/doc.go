// Package viz is the terminal front end for algorithm playback.
//
// [Model] is a Bubble Tea model that drives a [player.Player] in
// external-clock mode and renders the snapshot under the cursor:
//
//   - array snapshots as vertical bars coloured by compare, swap, sorted,
//     pivot and found state
//   - graph snapshots on a Braille [Canvas] with distance, key and
//     all-pairs tables
//   - the pseudocode listing with the active line marked
//
// [Menu] lists the catalog and opens a player for the chosen algorithm.
//
// # Key Bindings
//
//	Space  - Play/Pause
//	←/h →/l - Previous/next step
//	g / G  - First/last step
//	R      - Reset
//	+ / -  - Faster/slower
//	T      - Cycle color themes
//	?      - Show help overlay
//	Q      - Quit
package viz
