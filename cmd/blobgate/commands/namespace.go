package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stationlabs/blobgate/namespace"
)

// NamespaceCmd returns namespace utilities: generate a random namespace or
// derive one deterministically from a name.
func NamespaceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "namespace",
		Short: "Namespace utilities",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "random",
		Short: "Generate a random namespace",
		RunE: func(cmd *cobra.Command, args []string) error {
			ns, err := namespace.Random()
			if err != nil {
				return err
			}
			fmt.Println(ns.Hex())
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "derive [name]",
		Short: "Derive a namespace deterministically from a name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(namespace.FromName(args[0]).Hex())
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "validate [hex]",
		Short: "Validate a namespace in its 58 character hex form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !namespace.ValidHex(args[0]) {
				return fmt.Errorf("invalid namespace: %s", args[0])
			}
			fmt.Println("valid")
			return nil
		},
	})

	return cmd
}
