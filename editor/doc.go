// Package editor provides the mel terminal editor as a Bubble Tea component
// backed by the buffer package.
//
// The package is responsible for key decoding, viewport scrolling, painting
// rows with their syntax highlight, the status and message bars, prompts
// (save as, search, replace, go to line), the help page, and system
// clipboard integration.
package editor
