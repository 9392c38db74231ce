// Package plotview builds gonum/plot views of histogram contents.
//
// A 2-D histogram becomes a plotter.GridXYZ (bin centres on X and Y, one
// channel on Z) rendered as a heat map; a 1-D histogram becomes a line
// profile. Views are snapshots: later updates to the histogram do not show up.
//
// Nothing here writes files. Call (*plot.Plot).Save from the host program.
package plotview
