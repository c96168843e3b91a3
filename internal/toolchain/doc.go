// Package toolchain wraps the external Node.js tooling a generated project needs:
// the project bootstrapper (create-react-app), the package manager used to install
// dependencies, and the dev-server launcher. Every collaborator runs a process to
// completion through a Runner, so tests can substitute a fake Runner instead of
// spawning npm. DispatchPackageManager selects npm, yarn, or pnpm argv shapes.
package toolchain
