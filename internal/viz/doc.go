// Package viz renders trajectories in the terminal.
//
//   - [Canvas]: braille dot canvas with lines, circles and crosses
//   - [Scene]: a trajectory drawn onto a canvas with toggleable [Layers]
//   - [Plot], [PlotSpeeds], [PlotHeights]: asciigraph time series
//   - [SummaryPanel], [ComparisonPanel]: lipgloss result panels
//   - [Replay]: a Bubble Tea model playing a run back in real time
//
// # Key Bindings
//
//	Space   - Pause/Resume playback
//	[ ]     - Seek by one marker interval
//	Tab/↑↓  - Select and nudge a launch parameter; the run is redone
//	B       - Switch coordinate basis
//	P M V C - Toggle path, markers, vectors, circles
//	?       - Show help overlay
package viz
