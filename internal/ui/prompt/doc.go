// Package prompt provides simple interactive prompts.
//
// Available prompts:
//   - [Terminal.Confirm]: Yes/No confirmation with a default answer
//   - [Terminal.TextInput]: Single-line text input with validation
//   - [Terminal.Select]: Single selection from a list
//
// The Ask* variants return plain values and report cancellation
// (ctrl+c, esc) as [hookerr.ErrCancelled].
package prompt
