package cli

import (
	"fmt"

	"github.com/maloquacious/semver"
	"github.com/spf13/cobra"
)

// version is the client's semantic version, mirroring the way the pack's
// other CLI tools stamp a build commit onto a fixed major/minor/patch.
var version = semver.Version{
	Major: 0,
	Minor: 1,
	Patch: 0,
	Build: semver.Commit(),
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the client version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(version.String())
		return nil
	},
}
