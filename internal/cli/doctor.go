package cli

import (
	"fmt"
	"io"

	"github.com/reactgen-labs/reactgen/internal/config"
	"github.com/reactgen-labs/reactgen/internal/preset"
	"github.com/reactgen-labs/reactgen/internal/toolchain"
	"github.com/spf13/cobra"
)

var checkPreset string

func init() {
	doctorCmd.Flags().StringVar(&checkPreset, "check-preset", "", "Validate a preset file at the given path")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the Node.js toolchain is available",
	Long:  `Verify that node, npx, and the configured package manager are on PATH, and that Node.js is recent enough for create-react-app.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if checkPreset != "" {
			return runPresetCheck(out, checkPreset)
		}

		pm := toolchain.DispatchPackageManager(config.Get(config.KeyPackageManager))
		statuses := toolchain.CheckTools(cmd.Context(), &toolchain.ExecRunner{Quiet: true}, pm)
		if !printToolStatuses(out, statuses) {
			return fmt.Errorf("toolchain check failed")
		}
		return nil
	},
}

// printToolStatuses reports each probe and returns whether all passed.
func printToolStatuses(w io.Writer, statuses []toolchain.ToolStatus) bool {
	fmt.Fprintln(w, "Toolchain check:")
	ok := true
	for _, st := range statuses {
		if st.OK {
			fmt.Fprintf(w, "  [ OK ] %s %s\n", st.Name, st.Version)
			continue
		}
		ok = false
		fmt.Fprintf(w, "  [FAIL] %s: %s\n", st.Name, st.Problem)
	}
	return ok
}

func runPresetCheck(w io.Writer, path string) error {
	fmt.Fprintf(w, "Preset validation: %s\n", path)

	p, err := preset.Load(path)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return fmt.Errorf("preset validation failed: %w", err)
	}
	if _, err := p.Flags(); err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return err
	}
	if _, _, err := p.ExtraGroup(); err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return err
	}
	fmt.Fprintf(w, "  [ OK ] Valid preset: %s (%d feature(s))\n", p.Name, len(p.Features))
	return nil
}
