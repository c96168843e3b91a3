// Package scaffold generates a new React project. It powers the "reactgen new"
// command: it bootstraps the project, materializes the baseline skeleton and
// every enabled feature template into src/, installs the dependency groups for
// those features, and optionally starts the dev server, strictly in that order.
package scaffold
