// Package cli defines the Cobra command tree for the reactgen CLI. Each file
// registers one top-level command with the root command. Commands parse flags,
// resolve presets and user config, and delegate the actual work to the
// scaffold and toolchain packages.
package cli
