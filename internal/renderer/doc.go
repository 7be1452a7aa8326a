// Package renderer draws a document view onto a terminal backend.
//
// The live selection is drawn reversed and the saved-selection marker is
// drawn according to its overlay style. The last row holds a status line.
package renderer
