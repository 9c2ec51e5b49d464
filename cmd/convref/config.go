package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/LynnColeArt/convref"
)

// newViper binds the command's flags, CONVREF_* environment variables and
// the optional --config file. Flags win over the environment, which wins
// over the file.
func newViper(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, convref.NewConfigError("flags", "binding flags", err)
	}
	v.SetEnvPrefix("CONVREF")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, convref.NewConfigError("config", fmt.Sprintf("reading %s", path), err)
		}
	}
	return v, nil
}

// addSampleFlags registers the scan parameters shared by check and image.
func addSampleFlags(fs *pflag.FlagSet, encoding, border string, skipBorder bool) {
	fs.String("kernel-encoding", encoding, "kernel encoding: RAW, UNSIGNED_Q0_8, SIGNED_Q0_7 or TWOS_COMPLEMENT")
	fs.Uint("twos-width", convref.DefaultTwosWidth, "bit width of TWOS_COMPLEMENT kernels")
	fs.Int("step", convref.DefaultStep, "sample every step-th row and column")
	fs.String("border", border, "border policy: ZERO_PAD or SKIP_BORDER_ONLY_INTERIOR")
	fs.Bool("skip-border", skipBorder, "with SKIP_BORDER_ONLY_INTERIOR, skip border coordinates instead of expecting 0")
	fs.Bool("rounding-enabled", true, "apply --rounding to fractional accumulations (disabled always truncates)")
	fs.String("rounding", "truncate", "rounding mode: truncate or half-even")
	fs.Int("column-limit", 0, "only compare columns below this index (0 compares all)")
	fs.Int("max-errors", convref.MaxErrors, "mismatches recorded before the run aborts")
	fs.Bool("mmap", false, "memory-map input files instead of reading them")
}

// sampleConfig resolves the scan parameters. Every name is validated
// before any file is opened.
func sampleConfig(v *viper.Viper) (convref.SampleConfig, error) {
	enc, err := convref.ParseEncoding(v.GetString("kernel-encoding"))
	if err != nil {
		return convref.SampleConfig{}, err
	}
	if enc.Kind == convref.EncodingTwosComplement {
		enc = enc.WithWidth(v.GetUint("twos-width"))
	}
	border, err := convref.ParseBorderPolicy(v.GetString("border"))
	if err != nil {
		return convref.SampleConfig{}, err
	}
	mode, err := convref.ParseRoundingMode(v.GetString("rounding"))
	if err != nil {
		return convref.SampleConfig{}, err
	}

	cfg := convref.SampleConfig{
		Step:        v.GetInt("step"),
		Border:      border,
		SkipBorder:  v.GetBool("skip-border"),
		Rounding:    convref.RoundingPolicy{Enabled: v.GetBool("rounding-enabled"), Mode: mode},
		Encoding:    enc,
		ColumnLimit: v.GetInt("column-limit"),
		MaxErrors:   v.GetInt("max-errors"),
	}
	return cfg, cfg.Validate()
}

// setPositional stores positional arguments under their config keys.
// Numeric keys are checked here so a typo fails as a usage error.
func setPositional(v *viper.Viper, keys []string, numeric map[string]bool, args []string) error {
	for i, arg := range args {
		key := keys[i]
		if numeric[key] {
			n, err := strconv.Atoi(arg)
			if err != nil {
				return convref.NewConfigError("arguments", fmt.Sprintf("%s must be an integer, got %q", key, arg), err)
			}
			v.Set(key, n)
			continue
		}
		v.Set(key, arg)
	}
	return nil
}

func requireString(v *viper.Viper, key string) (string, error) {
	s := v.GetString(key)
	if s == "" {
		return "", convref.NewConfigError("arguments", fmt.Sprintf("missing required parameter --%s", key), nil)
	}
	return s, nil
}

func requirePositive(v *viper.Viper, key string) (int, error) {
	n := v.GetInt(key)
	if n <= 0 {
		return 0, convref.NewConfigError("arguments", fmt.Sprintf("--%s must be positive, got %d", key, n), nil)
	}
	return n, nil
}
