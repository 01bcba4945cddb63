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
	"encoding/hex"
	"fmt"

	"github.com/blinklabs-io/cardano-txsign/cbor"
	"github.com/blinklabs-io/cardano-txsign/ledger"
	"github.com/spf13/cobra"
)

func newMetadataCommand(cc *cliContext) *cobra.Command {
	var lines []string
	cmd := &cobra.Command{
		Use:   "metadata",
		Short: "Encode a CIP-20 transaction message (label 674)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			metadata, err := ledger.NewMessageMetadata(lines...)
			if err != nil {
				return err
			}
			for i, line := range lines {
				if len(line) > ledger.MaxMetadataStringSize {
					cc.logger.Warn(
						"truncated message line",
						"line",
						i,
						"size",
						len(line),
					)
				}
			}
			data, err := cbor.EncodeValue(metadata)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(data))
			return err
		},
	}
	cmd.Flags().StringArrayVar(&lines, "line", nil, "message line (repeatable)")
	return cmd
}
