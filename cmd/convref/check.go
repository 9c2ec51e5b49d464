package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/LynnColeArt/convref"
)

var checkKeys = []string{
	"input-file", "input-rows", "input-cols",
	"kernel-file", "kernel-rows", "kernel-encoding",
	"output-file", "step", "rounding-enabled",
}

var checkNumeric = map[string]bool{
	"input-rows": true, "input-cols": true, "kernel-rows": true, "step": true,
}

func newCheckCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [input_file input_rows input_cols kern_file kern_rows kern_encoding output_file [step [do_round]]]",
		Short: "Validate an output dump against separate input and kernel files",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return nil
			}
			if len(args) < 7 || len(args) > 9 {
				return convref.NewConfigError("arguments", "expected 7 to 9 positional arguments or flags only", nil)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := newViper(cmd)
			if err != nil {
				return err
			}
			if len(args) > 0 {
				n := len(args)
				if n == 9 {
					v.Set("rounding-enabled", args[8] == "1")
					n = 8
				}
				if err := setPositional(v, checkKeys, checkNumeric, args[:n]); err != nil {
					return err
				}
			}
			return a.check(v)
		},
	}

	fs := cmd.Flags()
	fs.String("input-file", "", "raw row-major input matrix")
	fs.Int("input-rows", 0, "input matrix rows")
	fs.Int("input-cols", 0, "input matrix columns")
	fs.String("kernel-file", "", "raw kernel bytes")
	fs.Int("kernel-rows", 0, "kernel rows (the kernel is square)")
	fs.String("output-file", "", "raw row-major output dump to validate")
	addSampleFlags(fs, "RAW", "ZERO_PAD", false)
	return cmd
}

func (a *app) check(v *viper.Viper) error {
	cfg, err := sampleConfig(v)
	if err != nil {
		return err
	}
	inputFile, err := requireString(v, "input-file")
	if err != nil {
		return err
	}
	kernelFile, err := requireString(v, "kernel-file")
	if err != nil {
		return err
	}
	outputFile, err := requireString(v, "output-file")
	if err != nil {
		return err
	}
	rows, err := requirePositive(v, "input-rows")
	if err != nil {
		return err
	}
	cols, err := requirePositive(v, "input-cols")
	if err != nil {
		return err
	}
	kernelRows, err := requirePositive(v, "kernel-rows")
	if err != nil {
		return err
	}

	loader := &convref.Loader{Mmap: v.GetBool("mmap")}
	a.onExit(func() { loader.Close() })

	input, err := loader.Matrix(inputFile, rows, cols)
	if err != nil {
		return err
	}
	kernel, err := loader.Kernel(kernelFile, kernelRows, cfg.Encoding)
	if err != nil {
		return err
	}
	output, err := loader.Matrix(outputFile, rows, cols)
	if err != nil {
		return err
	}

	logger := a.logger()
	logger.Printf("Step: %d, rounding: %t (%s)", cfg.Step, cfg.Rounding.Enabled, cfg.Rounding.Mode)
	logger.Printf("Validating contents of the %s matrix in %s with a %dx%d %s kernel.",
		input, outputFile, kernelRows, kernelRows, cfg.Encoding)
	return a.runCheck(input, kernel, output, cfg)
}

// runCheck scans and prints each mismatch and the final verdict.
func (a *app) runCheck(input convref.Matrix, kernel convref.Kernel, output convref.Matrix, cfg convref.SampleConfig) error {
	logger := a.logger()
	logger.Printf("Kernel: %s", kernel.Decode())

	reporter := convref.ReporterFunc(func(rec convref.MismatchRecord) {
		logger.Printf(">>>ERROR: %s", rec)
	})
	res, err := convref.Check(input, kernel, output, cfg, reporter)
	if err != nil {
		if res.Visited > 0 {
			logger.Printf("Compared %d of %d sampled coordinates, %d mismatches.", res.Compared, res.Visited, res.Total)
		}
		return err
	}
	logger.Printf("Compared %d of %d sampled coordinates.", res.Compared, res.Visited)
	logger.Print("Success!")
	return nil
}
