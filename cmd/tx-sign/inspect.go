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
	"github.com/blinklabs-io/cardano-txsign/signer"
	"github.com/spf13/cobra"
)

func newInspectCommand(cc *cliContext) *cobra.Command {
	var tx txFlags
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show the body hash, witnesses and diagnostic notation of a transaction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			txHex, err := tx.read()
			if err != nil {
				return err
			}
			info, err := signer.InspectTransaction(txHex)
			if err != nil {
				if decErr, ok := signer.AsDecodeError(err); ok {
					cc.logger.Debug(
						"transaction decode failed",
						"offset",
						decErr.Offset,
					)
				}
				return err
			}
			return writeJSON(cmd.OutOrStdout(), info)
		},
	}
	tx.register(cmd)
	return cmd
}
