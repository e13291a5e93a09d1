// Package engine runs one ordering job end to end: it validates the
// configuration, reserves the output files, loads the vector file, orders it
// with the selected strategy and commits the artifacts.
//
// A failed run leaves no output behind. Configuration errors surface as
// *config.ConfigError before any file is touched; unreadable input and
// unwritable output surface wrapped in ErrIO.
//
// Every run carries a random id (github.com/google/uuid) attached to each
// log record and to the YAML details report.
package engine
