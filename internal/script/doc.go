// Package script replays recorded session interactions.
//
// A script is a YAML document naming a sequence of steps, each of which is
// one user action: convert, save or history. Scripts are validated against
// the embedded CUE schema (schema.cue) before they run, then executed in
// order against a session.Session. The output is a Transcript holding one
// line per visible result, matching what the interactive session prints.
//
// Step failures (unknown units, nothing to save) are part of the
// transcript, not errors: a script that exercises them still runs to the end.
package script
