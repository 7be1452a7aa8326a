// Package app wires the selection engine, dispatcher, bridge, scripting and
// configuration into a running application, and manages the lifecycle of
// document views.
package app
