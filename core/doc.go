// Package core contains the picker's algorithmic state machines.
//
// Allowed here:
// - alphabet and hint-tag generation
// - pagination policy
// - the selection session state machine and its collaborator contracts
//
// Not allowed here:
// - terminal rendering, key decoding, or any bubbletea dependency
package core
