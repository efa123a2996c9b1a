// Package ui is the browser quote client with the browser taken out.
//
// A Controller owns the client state (current quote, favorites, panel
// visibility, animation phase) and turns user actions into calls on a View.
// Everything it shows is computed by the pure Render functions, and every
// delay goes through a Scheduler, so the package runs unchanged under go
// test and inside the wasm shell.
package ui
