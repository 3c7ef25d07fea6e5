// Package store writes downloaded model files to disk.
//
// Files are named after the animation's display name with the model
// extension and written through a temp file that is renamed into place, so
// an interrupted download never leaves a truncated model behind. The target
// directory is created on first write. An existing file of the same name is
// replaced.
package store
