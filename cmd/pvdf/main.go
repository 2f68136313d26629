// Copyright © 2020 AMIS Technologies
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command pvdf evaluates the Pietrzak VDF over the fixed RSA-2048
// group for a given difficulty and seed, printing the output and its
// proof to stdout per spec.md's CLI contract.
package main

import (
	"errors"
	"fmt"
	"math/big"
	"os"
	"strconv"
	"strings"

	"github.com/getamis/sirius/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pietrzak-labs/rsavdf/crypto/bigint"
	"github.com/pietrzak-labs/rsavdf/crypto/pietrzak"
	"github.com/pietrzak-labs/rsavdf/logger"
)

var errBadDifficulty = errors.New("pvdf: t must be a positive decimal integer")

var cmd = &cobra.Command{
	Use:   "pvdf <t> <x>",
	Short: "Evaluate the Pietrzak VDF over the fixed RSA-2048 group",
	Args:  cobra.ExactArgs(2),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return viper.BindPFlags(cmd.Flags())
	},
	RunE: run,
}

func init() {
	cmd.Flags().String("config", "", "optional YAML config file (verbose, format defaults)")
	cmd.Flags().Bool("verbose", false, "emit round-by-round progress on stderr")
	cmd.Flags().String("format", "lower", "hex output case: lower or upper")
}

func run(cmd *cobra.Command, args []string) error {
	verbose := viper.GetBool("verbose")
	format := viper.GetString("format")

	if configPath := viper.GetString("config"); configPath != "" {
		cfg, err := readConfigFile(configPath)
		if err != nil {
			return fmt.Errorf("pvdf: reading config: %w", err)
		}
		if !cmd.Flags().Changed("verbose") {
			verbose = cfg.Verbose
		}
		if !cmd.Flags().Changed("format") && cfg.Format != "" {
			format = cfg.Format
		}
	}

	if verbose {
		logger.SetLogger(log.New())
	}

	t, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil || t < 1 {
		return errBadDifficulty
	}
	x, err := bigint.FromHex(args[1])
	if err != nil {
		return fmt.Errorf("pvdf: parsing x: %w", err)
	}

	proof, err := pietrzak.Evaluate(x, t)
	if err != nil {
		if errors.Is(err, pietrzak.ErrExponentOverflow) {
			log.Crit("exponent overflow", "t", t, "err", err)
		}
		return err
	}

	fmt.Println(encodeHex(proof.Y, format))
	for _, u := range proof.U {
		fmt.Println(encodeHex(u, format))
	}
	return nil
}

func encodeHex(v *big.Int, format string) string {
	s := bigint.ToHex(v)
	if format == "upper" {
		return strings.ToUpper(s)
	}
	return s
}

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
