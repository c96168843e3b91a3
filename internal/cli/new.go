package cli

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/reactgen-labs/reactgen/internal/config"
	"github.com/reactgen-labs/reactgen/internal/deps"
	"github.com/reactgen-labs/reactgen/internal/preset"
	"github.com/reactgen-labs/reactgen/internal/scaffold"
	"github.com/reactgen-labs/reactgen/internal/skeleton"
	"github.com/reactgen-labs/reactgen/internal/toolchain"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	newPath           string
	newRedux          bool
	newToastify       bool
	newStart          bool
	newPreset         string
	newDryRun         bool
	newSkipBootstrap  bool
	newSkipInstall    bool
	newPackageManager string
)

func init() {
	newCmd.Flags().StringVar(&newPath, "path", "", "Project directory to create (required)")
	newCmd.Flags().BoolVar(&newRedux, "redux", false, "Add a Redux store and Provider wrapper")
	newCmd.Flags().BoolVar(&newToastify, "toastify", false, "Add react-toastify notifications")
	newCmd.Flags().BoolVar(&newStart, "start", false, "Start the dev server after installing")
	newCmd.Flags().StringVar(&newPreset, "preset", "", "Load features and packages from a preset YAML file")
	newCmd.Flags().BoolVar(&newDryRun, "dry-run", false, "Print what would be generated without running anything")
	newCmd.Flags().BoolVar(&newSkipBootstrap, "skip-bootstrap", false, "Use an existing project instead of running create-react-app")
	newCmd.Flags().BoolVar(&newSkipInstall, "skip-install", false, "Do not install dependencies")
	newCmd.Flags().StringVar(&newPackageManager, "package-manager", "", "Package manager: npm, yarn, or pnpm (default from config)")
	rootCmd.AddCommand(newCmd)
}

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Generate a new React project",
	Long: `Bootstrap a React project with create-react-app, replace its src/ directory
with the reactgen skeleton plus any enabled features, install dependencies,
and optionally start the dev server.

Examples:
  reactgen new --path my-app
  reactgen new --path my-app --redux --toastify --start
  reactgen new --path my-app --preset dashboard.yaml --package-manager yarn`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := resolveNewRequest()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		s := newScaffolder(req, cmd.OutOrStdout())
		result, err := s.Run(ctx, req.Options)
		if err != nil {
			return err
		}

		printSummary(cmd.OutOrStdout(), req, result)
		return nil
	},
}

// newRequest is the fully resolved input of `reactgen new`.
type newRequest struct {
	Options        scaffold.Options
	PackageManager string
	BootstrapTool  string
	SkipBootstrap  bool
}

// resolveNewRequest merges flags, an optional preset, and user config. CLI
// feature flags add to the preset's features; the package manager comes from
// the flag, then the preset, then config.
func resolveNewRequest() (*newRequest, error) {
	req := &newRequest{
		Options: scaffold.Options{
			Root:        newPath,
			Flags:       skeleton.Flags{Redux: newRedux, Toastify: newToastify},
			Start:       newStart,
			SkipInstall: newSkipInstall,
			DryRun:      newDryRun,
		},
		PackageManager: config.Get(config.KeyPackageManager),
		BootstrapTool:  config.Get(config.KeyBootstrapTool),
		SkipBootstrap:  newSkipBootstrap,
	}

	if newPreset != "" {
		p, err := preset.Load(newPreset)
		if err != nil {
			return nil, err
		}
		flags, err := p.Flags()
		if err != nil {
			return nil, err
		}
		req.Options.Flags = req.Options.Flags.Or(flags)
		req.Options.Start = req.Options.Start || p.Start
		if p.PackageManager != "" {
			req.PackageManager = p.PackageManager
		}
		extra, ok, err := p.ExtraGroup()
		if err != nil {
			return nil, err
		}
		if ok {
			req.Options.Extra = &extra
		}
	}

	if newPackageManager != "" {
		req.PackageManager = newPackageManager
	}
	return req, nil
}

func newScaffolder(req *newRequest, out io.Writer) *scaffold.Scaffolder {
	fsys := afero.NewOsFs()
	runner := &toolchain.ExecRunner{}
	pm := toolchain.DispatchPackageManager(req.PackageManager)

	var b scaffold.Bootstrapper = &toolchain.CreateReactApp{Runner: runner, FS: fsys, Tool: req.BootstrapTool}
	if req.SkipBootstrap {
		b = &toolchain.ExistingProject{FS: fsys}
	}

	return &scaffold.Scaffolder{
		FS:           fsys,
		Bootstrapper: b,
		Installer:    &toolchain.PackageInstaller{Runner: runner, Manager: pm},
		Launcher:     &toolchain.DevServer{Runner: runner, Manager: pm},
		Out:          out,
		Logger:       logger,
	}
}

func printSummary(w io.Writer, req *newRequest, result *scaffold.Result) {
	if req.Options.DryRun {
		fmt.Fprintf(w, "\nDry run: %d change(s) planned under %s/\n", len(result.Events), result.SourceDir)
		return
	}

	fmt.Fprintf(w, "\nCreated project at %s/\n", result.Root)
	if len(result.Installed) > 0 {
		var n int
		for _, g := range result.Installed {
			n += len(g.Packages)
		}
		fmt.Fprintf(w, "Installed %d package(s) in %d group(s)\n", n, len(result.Installed))
	}
	if len(result.Collisions) > 0 {
		fmt.Fprintln(w, "\nWarnings:")
		for _, c := range result.Collisions {
			fmt.Fprintf(w, "  - %s was written by more than one template\n", c)
		}
	}
	if !result.Started {
		pm := toolchain.DispatchPackageManager(req.PackageManager)
		fmt.Fprintln(w, "\nNext steps:")
		fmt.Fprintf(w, "  cd %s\n", result.Root)
		if req.Options.SkipInstall {
			for _, g := range deps.Groups(req.Options.Flags) {
				if c, err := pm.InstallCommand("", g.Args()); err == nil {
					fmt.Fprintf(w, "  %s\n", c)
				}
			}
		}
		fmt.Fprintf(w, "  %s start\n", pm.Name())
	}
}
