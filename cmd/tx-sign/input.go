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
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

type txFlags struct {
	txHex  string
	txFile string
}

func (f *txFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.txHex, "tx", "", "transaction CBOR hex")
	cmd.Flags().StringVar(&f.txFile, "tx-file", "", "file containing the transaction CBOR hex")
	cmd.MarkFlagsMutuallyExclusive("tx", "tx-file")
	cmd.MarkFlagsOneRequired("tx", "tx-file")
}

func (f *txFlags) read() (string, error) {
	if f.txFile != "" {
		data, err := os.ReadFile(f.txFile)
		if err != nil {
			return "", fmt.Errorf("read transaction file: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	}
	return strings.TrimSpace(f.txHex), nil
}

// readSigningKey loads the key from a file or the TXSIGN_SIGNING_KEY
// environment variable. There is deliberately no flag for it
func (cc *cliContext) readSigningKey(keyFile string) (string, error) {
	if keyFile != "" {
		data, err := os.ReadFile(keyFile)
		if err != nil {
			return "", fmt.Errorf("read key file: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	}
	if key := cc.v.GetString(signingKeyName); key != "" {
		return strings.TrimSpace(key), nil
	}
	return "", errors.New("no signing key: use --key-file or set " + envPrefix + "_SIGNING_KEY")
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
