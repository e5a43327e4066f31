package cli

import (
	"github.com/spf13/cobra"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "skilltrail",
	Version: Version,
	Short:   "A local-first learning roadmap tracker",
	Long: `Skilltrail tracks your progress through a learning roadmap.
It keeps the roadmap, your progress, and your achievements in the
.skilltrail/ directory and answers:
1. What am I learning?
2. Where am I on the trail?
3. What should I do next?`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() error {
	return RootCmd.Execute()
}
