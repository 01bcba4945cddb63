// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"github.com/blinklabs-io/cardano-txsign/ledger"
	"github.com/blinklabs-io/cardano-txsign/signer"
	"github.com/spf13/cobra"
)

type verifyResult struct {
	Valid     bool                `json:"valid"`
	KeyHashes []ledger.Blake2b224 `json:"key_hashes"`
}

func newVerifyCommand(cc *cliContext) *cobra.Command {
	var tx txFlags
	var witnessSetHex string
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a witness set against a transaction body",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			txHex, err := tx.read()
			if err != nil {
				return err
			}
			keyHashes, err := signer.VerifyWitnessSet(txHex, witnessSetHex)
			if err != nil {
				return err
			}
			cc.logger.Debug(
				"verified witness set",
				"witnesses",
				len(keyHashes),
			)
			return writeJSON(cmd.OutOrStdout(), verifyResult{
				Valid:     true,
				KeyHashes: keyHashes,
			})
		},
	}
	tx.register(cmd)
	cmd.Flags().StringVar(&witnessSetHex, "witness-set", "", "witness set CBOR hex")
	_ = cmd.MarkFlagRequired("witness-set")
	return cmd
}
