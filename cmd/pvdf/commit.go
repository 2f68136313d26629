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

package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io/ioutil"
	"math/big"
	"strconv"
	"strings"

	"github.com/getamis/sirius/log"
	"github.com/spf13/cobra"

	"github.com/pietrzak-labs/rsavdf/crypto/bigint"
	"github.com/pietrzak-labs/rsavdf/crypto/codec"
	"github.com/pietrzak-labs/rsavdf/crypto/commitment"
)

var errMissingCommitOut = errors.New("pvdf: --out is required")
var errMalformedDecommitment = errors.New("pvdf: decommitment file must be two hex lines: data, salt")

var commitOutPath string

var commitCmd = &cobra.Command{
	Use:   "commit <t> <x>",
	Short: "Publish a commitment to a (t, x) pair before evaluating it",
	Args:  cobra.ExactArgs(2),
	RunE:  runCommit,
}

var verifyCommitCmd = &cobra.Command{
	Use:   "verify-commit <digest-hex> <decommitment-file>",
	Short: "Check that a decommitment file opens a previously published digest",
	Args:  cobra.ExactArgs(2),
	RunE:  runVerifyCommit,
}

func init() {
	commitCmd.Flags().StringVar(&commitOutPath, "out", "", "write the decommitment (data and salt) to this file; required")
	cmd.AddCommand(commitCmd)
	cmd.AddCommand(verifyCommitCmd)
}

// seedPayload packs (t, x) into the same bytes a committer hashes, so a
// commitment binds both the difficulty and the seed, not just one.
func seedPayload(t uint64, x *big.Int) ([]byte, error) {
	xBytes, err := codec.Pack(x, codec.Width256)
	if err != nil {
		return nil, fmt.Errorf("pvdf: packing x: %w", err)
	}
	data := make([]byte, 0, len(xBytes)+codec.Width256)
	data = append(data, xBytes...)
	data = append(data, codec.PackIndex(t)...)
	return data, nil
}

func runCommit(cmd *cobra.Command, args []string) error {
	t, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil || t < 1 {
		return errBadDifficulty
	}
	x, err := bigint.FromHex(args[1])
	if err != nil {
		return fmt.Errorf("pvdf: parsing x: %w", err)
	}
	if commitOutPath == "" {
		return errMissingCommitOut
	}

	data, err := seedPayload(t, x)
	if err != nil {
		return err
	}

	committer, err := commitment.NewHashCommitmenter(data)
	if err != nil {
		return fmt.Errorf("pvdf: committing: %w", err)
	}

	decommit := committer.GetDecommitmentMessage()
	contents := hex.EncodeToString(decommit.Data) + "\n" + hex.EncodeToString(decommit.Salt) + "\n"
	if err := ioutil.WriteFile(commitOutPath, []byte(contents), 0600); err != nil {
		return fmt.Errorf("pvdf: writing decommitment file: %w", err)
	}

	fmt.Println(hex.EncodeToString(committer.GetCommitmentMessage().Digest))
	return nil
}

func runVerifyCommit(cmd *cobra.Command, args []string) error {
	digest, err := hex.DecodeString(args[0])
	if err != nil {
		return fmt.Errorf("pvdf: parsing digest: %w", err)
	}
	raw, err := ioutil.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("pvdf: reading decommitment file: %w", err)
	}

	lines := strings.SplitN(strings.TrimSpace(string(raw)), "\n", 2)
	if len(lines) != 2 {
		return errMalformedDecommitment
	}
	data, err := hex.DecodeString(strings.TrimSpace(lines[0]))
	if err != nil {
		return fmt.Errorf("pvdf: parsing decommitment data: %w", err)
	}
	salt, err := hex.DecodeString(strings.TrimSpace(lines[1]))
	if err != nil {
		return fmt.Errorf("pvdf: parsing decommitment salt: %w", err)
	}

	published := &commitment.CommitmentMessage{Digest: digest}
	revealed := &commitment.DecommitmentMessage{Data: data, Salt: salt}
	if err := published.Decommit(revealed); err != nil {
		log.Crit("commitment did not open", "err", err)
		return err
	}

	fmt.Println("ok")
	return nil
}
