// Package dom binds the tap-hold recognizer to browser DOM elements.
// It is only functional when built with GOOS=js GOARCH=wasm.
package dom
