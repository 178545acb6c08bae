package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func (c *CLI) newFilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "files [path]",
		Short: "Print the content hash of every file in the repository",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := c.app.Files(cmd.Context(), pathArg(args))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, f := range files {
				if _, err := fmt.Fprintf(out, "%s  %s\n", f.Hash, f.Path); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func (c *CLI) newDepsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deps [path]",
		Short: "Print the resolved external dependencies of the package containing path",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := c.app.Deps(cmd.Context(), pathArg(args))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, d := range deps {
				if _, err := fmt.Fprintln(out, d); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func (c *CLI) newOutputHashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "output-hash [path]",
		Short: "Print the hash of the current files of the package at path",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := c.app.OutputHash(cmd.Context(), pathArg(args))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), hash)
			return err
		},
	}
}

func (c *CLI) newPackagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "packages [path]",
		Short: "List the packages of the workspace containing path",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			infos, err := c.app.Packages(pathArg(args))
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, name := range infos.Names() {
				info := infos[name]
				version := info.Version
				if version == "" {
					version = "-"
				}
				if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\n", name, version, info.Dir()); err != nil {
					return err
				}
			}
			return tw.Flush()
		},
	}
}

func (c *CLI) newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report <hash>",
		Short: "Print a previously written hash report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("path")

			report, err := c.app.Report(path, args[0])
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		},
	}
	cmd.Flags().StringP("path", "p", ".", "Directory inside the workspace")
	return cmd
}
