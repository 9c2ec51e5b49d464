package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/LynnColeArt/convref"
)

var imageKeys = []string{"image-file", "kernel-rows", "step"}

var imageNumeric = map[string]bool{"kernel-rows": true, "step": true}

func newImageCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "image [mem_file kern_rows [step]]",
		Short: "Validate a single memory image holding input, kernel and output",
		Long: `Validate a memory image laid out as the input matrix, a kernel region
sized for the largest kernel, then the output matrix. Border coordinates
are expected to be 0 unless --border or --skip-border say otherwise.`,
		Args: cobra.MaximumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := newViper(cmd)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				return convref.NewConfigError("arguments", "expected mem_file kern_rows [step]", nil)
			}
			if err := setPositional(v, imageKeys, imageNumeric, args); err != nil {
				return err
			}
			return a.image(v)
		},
	}

	fs := cmd.Flags()
	fs.String("image-file", "", "memory image to validate")
	fs.Int("kernel-rows", 0, "kernel rows (the kernel is square)")
	fs.Int("rows", convref.DefaultImageRows, "matrix rows in the image")
	fs.Int("cols", convref.DefaultImageCols, "matrix columns in the image")
	fs.Int("max-kernel-rows", convref.MaxKernelRows, "largest kernel the kernel region holds")
	addSampleFlags(fs, "TWOS_COMPLEMENT", "SKIP_BORDER_ONLY_INTERIOR", false)
	return cmd
}

func (a *app) image(v *viper.Viper) error {
	cfg, err := sampleConfig(v)
	if err != nil {
		return err
	}
	path, err := requireString(v, "image-file")
	if err != nil {
		return err
	}
	kernelRows, err := requirePositive(v, "kernel-rows")
	if err != nil {
		return err
	}
	layout := convref.ImageLayout{
		Rows:          v.GetInt("rows"),
		Cols:          v.GetInt("cols"),
		MaxKernelRows: v.GetInt("max-kernel-rows"),
	}
	if err := layout.Validate(); err != nil {
		return err
	}
	if kernelRows > layout.MaxKernelRows {
		return convref.NewConfigError("arguments",
			fmt.Sprintf("kernel rows %d exceed the image's %d", kernelRows, layout.MaxKernelRows), nil)
	}

	loader := &convref.Loader{Mmap: v.GetBool("mmap")}
	a.onExit(func() { loader.Close() })

	data, err := loader.Bytes(path, layout.Size())
	if err != nil {
		return err
	}
	img, err := layout.Split(data, kernelRows, cfg.Encoding)
	if err != nil {
		return err
	}

	a.logger().Printf("Validating contents of %s with %dx%d kernel.", path, kernelRows, kernelRows)
	return a.runCheck(img.Input, img.Kernel, img.Output, cfg)
}
