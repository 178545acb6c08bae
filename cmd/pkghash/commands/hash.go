package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/pkghash/internal/app"
)

func (c *CLI) newHashCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash [path]",
		Short: "Print the hash of the package containing path",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			signature, _ := cmd.Flags().GetString("signature")
			report, _ := cmd.Flags().GetBool("report")
			verbose, _ := cmd.Flags().GetBool("verbose")
			asJSON, _ := cmd.Flags().GetBool("json")

			result, err := c.app.Hash(cmd.Context(), pathArg(args), app.HashOptions{
				Signature: signature,
				Report:    report,
				Verbose:   verbose,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}
			_, err = fmt.Fprintln(out, result.Hash)
			return err
		},
	}
	cmd.Flags().StringP("signature", "s", "", "Build signature mixed into the hash (defaults to the configured signature)")
	cmd.Flags().Bool("report", false, "Persist a hash report below the repository root")
	cmd.Flags().BoolP("verbose", "v", false, "Log the per-package hashes")
	cmd.Flags().Bool("json", false, "Print the full hash breakdown as JSON")
	return cmd
}
