// Package terminal draws rolling text snapshots as rows of terminal cells.
//
// [Lines] places every visible slot on the row nearest to its vertical
// offset, so a character mid-roll appears one row above or below the
// baseline. [View] adds lipgloss styling for interactive output.
package terminal
