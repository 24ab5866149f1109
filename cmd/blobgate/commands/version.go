package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stationlabs/blobgate/version"
)

// VersionCmd returns the command that prints the build version.
func VersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version.BuildVersion)
		},
	}
}
