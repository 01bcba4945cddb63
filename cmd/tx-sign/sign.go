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
	"errors"
	"fmt"
	"io"

	"github.com/blinklabs-io/cardano-txsign/signer"
	"github.com/jinzhu/copier"
	"github.com/spf13/cobra"
)

// legacySignResult uses the result keys expected by older integrations
type legacySignResult struct {
	Success       bool   `json:"success"`
	SignedTxHex   string `json:"signedTx,omitempty"`
	WitnessSetHex string `json:"witnessSetHex,omitempty"`
	PublicKeyHex  string `json:"vkey_hex,omitempty"`
	SignatureHex  string `json:"sig_hex,omitempty"`
	Error         string `json:"error,omitempty"`
}

func newSignCommand(cc *cliContext) *cobra.Command {
	var tx txFlags
	var keyFile string
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Add a vkey witness to a transaction",
		Long: "Sign the transaction body with a 128 hex character extended key or a 64 hex " +
			"character legacy seed. The key is read from --key-file or " + envPrefix + "_SIGNING_KEY.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			txHex, err := tx.read()
			if err != nil {
				return err
			}
			keyHex, err := cc.readSigningKey(keyFile)
			if err != nil {
				return err
			}
			res := signer.SignTransaction(
				txHex,
				keyHex,
				signer.WithLogger(cc.logger),
				signer.WithSelfVerify(cc.cfg.SelfVerify),
			)
			if err := writeSignResult(cmd.OutOrStdout(), res, cc.cfg.Format); err != nil {
				return err
			}
			if !res.Success {
				return fmt.Errorf("%s: %s", res.Kind, res.Error)
			}
			cc.logger.Info(
				"transaction signed",
				"tx_hash",
				res.TxHashHex,
				"key_hash",
				res.KeyHashBech32,
			)
			return nil
		},
	}
	tx.register(cmd)
	cmd.Flags().StringVar(&keyFile, "key-file", "", "file containing the signing key hex")
	cmd.Flags().String("format", formatJSON, "output format (json, legacy)")
	cmd.Flags().Bool("self-verify", false, "verify the new witness before printing it")
	_ = cc.v.BindPFlag("format", cmd.Flags().Lookup("format"))
	_ = cc.v.BindPFlag("self_verify", cmd.Flags().Lookup("self-verify"))
	return cmd
}

func writeSignResult(w io.Writer, res signer.SignResult, format string) error {
	switch format {
	case formatLegacy:
		var legacy legacySignResult
		if err := copier.Copy(&legacy, &res); err != nil {
			return err
		}
		return writeJSON(w, legacy)
	case formatJSON:
		return writeJSON(w, res)
	default:
		return errors.New("unknown output format: " + format)
	}
}
