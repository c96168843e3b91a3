package toolchain

import "fmt"

// PackageManager produces the argv for dependency installation and dev-server start.
type PackageManager interface {
	Name() string
	InstallCommand(dir string, packages []string) (Command, error)
	StartCommand(dir string) (Command, error)
}

// Supported package manager identifiers.
const (
	ManagerNPM  = "npm"
	ManagerYarn = "yarn"
	ManagerPNPM = "pnpm"
)

// DispatchPackageManager returns the PackageManager for name. Unknown names
// yield a manager whose commands all fail.
func DispatchPackageManager(name string) PackageManager {
	switch name {
	case ManagerNPM, "":
		return &simpleManager{name: ManagerNPM, install: "install"}
	case ManagerYarn:
		return &simpleManager{name: ManagerYarn, install: "add"}
	case ManagerPNPM:
		return &simpleManager{name: ManagerPNPM, install: "add"}
	default:
		return &unknownManager{name: name}
	}
}

type simpleManager struct {
	name    string
	install string
}

func (m *simpleManager) Name() string { return m.name }

func (m *simpleManager) InstallCommand(dir string, packages []string) (Command, error) {
	if len(packages) == 0 {
		return Command{}, fmt.Errorf("%s: no packages to install", m.name)
	}
	args := append([]string{m.install}, packages...)
	return Command{Name: m.name, Args: args, Dir: dir}, nil
}

func (m *simpleManager) StartCommand(dir string) (Command, error) {
	return Command{Name: m.name, Args: []string{"start"}, Dir: dir}, nil
}

// unknownManager is returned when the manager identifier is not recognized.
type unknownManager struct {
	name string
}

func (u *unknownManager) Name() string { return u.name }

func (u *unknownManager) InstallCommand(string, []string) (Command, error) {
	return Command{}, u.err()
}

func (u *unknownManager) StartCommand(string) (Command, error) {
	return Command{}, u.err()
}

func (u *unknownManager) err() error {
	return fmt.Errorf("unknown package manager %q: supported managers are %q, %q and %q",
		u.name, ManagerNPM, ManagerYarn, ManagerPNPM)
}
