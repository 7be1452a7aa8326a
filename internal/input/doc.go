// Package input defines the actions sent to the dispatcher and the keymap
// that turns key presses into actions.
package input
