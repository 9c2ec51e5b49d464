package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/LynnColeArt/convref"
)

const dotTaps = 9

func newDotCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dot a0 ... a8 k0 ... k8",
		Short: "Compute one 3x3 output by hand from hex input and kernel bytes",
		Long: `Compute the dot product of 9 unsigned input bytes with 9 kernel bytes,
all given in hex. Kernel bytes are decoded with --kernel-encoding. Prints
every product and the result masked to a byte.`,
		Args: cobra.ExactArgs(2 * dotTaps),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := newViper(cmd)
			if err != nil {
				return err
			}
			enc, err := convref.ParseEncoding(v.GetString("kernel-encoding"))
			if err != nil {
				return err
			}
			if enc.Kind == convref.EncodingTwosComplement {
				enc = enc.WithWidth(v.GetUint("twos-width"))
			}
			mode, err := convref.ParseRoundingMode(v.GetString("rounding"))
			if err != nil {
				return err
			}

			raw := make([]byte, len(args))
			for i, arg := range args {
				b, err := strconv.ParseUint(arg, 16, 8)
				if err != nil {
					return convref.NewConfigError("arguments", fmt.Sprintf("argument %d: %q is not a hex byte", i+1, arg), err)
				}
				raw[i] = byte(b)
			}

			terms, sum, err := convref.Reference{}.Dot(raw[:dotTaps], raw[dotTaps:], enc)
			if err != nil {
				return err
			}
			for _, t := range terms {
				fmt.Fprintln(a.stdout, t)
			}
			res := convref.MaskByte(convref.RoundingPolicy{Enabled: true, Mode: mode}.Apply(sum))
			fmt.Fprintf(a.stdout, "%d %#x\n", res, res)
			return nil
		},
	}

	fs := cmd.Flags()
	fs.String("kernel-encoding", "TWOS_COMPLEMENT", "kernel encoding: RAW, UNSIGNED_Q0_8, SIGNED_Q0_7 or TWOS_COMPLEMENT")
	fs.Uint("twos-width", convref.DefaultTwosWidth, "bit width of TWOS_COMPLEMENT kernels")
	fs.String("rounding", "truncate", "rounding mode: truncate or half-even")
	return cmd
}
