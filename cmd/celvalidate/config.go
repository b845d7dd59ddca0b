package main

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/spf13/cobra"
	"github.com/zclconf/go-cty/cty"

	"github.com/starbound-io/celvalidate/internal"
)

var configCmd = &cobra.Command{
	Use:   "config [dir]",
	Short: "Show the effective celvalidate configuration for a directory",
	Long: `This command prints the merged celvalidate configuration that would apply
when validating the specified directory (default: current directory).`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) > 0 {
			dir = args[0]
		}

		cfg := internal.DefaultConfig()
		add, err := internal.LoadConfig(dir)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg.Merge(add)

		hclBytes, err := convertConfigToHCL(cfg)
		if err != nil {
			return fmt.Errorf("failed to convert config to HCL: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(hclBytes))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func convertConfigToHCL(cfg *internal.Config) ([]byte, error) {
	file := hclwrite.NewEmptyFile()
	body := file.Body()

	if cfg.Report != nil {
		block := body.AppendNewBlock("report", nil)
		b := block.Body()
		if cfg.Report.Verbose != nil {
			b.SetAttributeValue("verbose", cty.BoolVal(*cfg.Report.Verbose))
		}
		if cfg.Report.Color != nil {
			b.SetAttributeValue("color", cty.StringVal(*cfg.Report.Color))
		}
	}

	if cfg.Filenames != nil {
		block := body.AppendNewBlock("filenames", nil)
		b := block.Body()
		setStringList(b, "mesh_extensions", cfg.Filenames.MeshExtensions)
		setStringList(b, "texture_extensions", cfg.Filenames.TextureExtensions)
		setStringList(b, "trajectory_extensions", cfg.Filenames.TrajectoryExtensions)
	}

	return file.Bytes(), nil
}

func setStringList(body *hclwrite.Body, name string, values []string) {
	if len(values) == 0 {
		return
	}
	vals := make([]cty.Value, len(values))
	for i, v := range values {
		vals[i] = cty.StringVal(v)
	}
	body.SetAttributeValue(name, cty.ListVal(vals))
}
