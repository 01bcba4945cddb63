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
	"bytes"
	"encoding/hex"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/blinklabs-io/cardano-txsign/internal/test"
	"github.com/blinklabs-io/cardano-txsign/signer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name string, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestSignCommandEnvKey(t *testing.T) {
	t.Setenv("TXSIGN_SIGNING_KEY", hex.EncodeToString(test.ExtendedKeyFromSeed("cli-env")))
	txHex := hex.EncodeToString(test.MinimalTx())
	out, err := runCommand(t, "sign", "--tx", txHex)
	require.NoError(t, err)
	var res signer.SignResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.True(t, res.Success)
	assert.Equal(t, signer.SignTransaction(txHex, hex.EncodeToString(test.ExtendedKeyFromSeed("cli-env"))), res)
}

func TestSignCommandKeyFileLegacyFormat(t *testing.T) {
	keyHex := hex.EncodeToString(test.LegacySeed("cli-file"))
	keyFile := writeFile(t, "payment.key", keyHex+"\n")
	txFile := writeFile(t, "tx.hex", test.NonCanonicalTxHex+"\n")
	out, err := runCommand(t, "sign", "--tx-file", txFile, "--key-file", keyFile, "--format", "legacy")
	require.NoError(t, err)
	var legacy map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &legacy))
	expected := signer.SignTransaction(test.NonCanonicalTxHex, keyHex)
	assert.Equal(t, true, legacy["success"])
	assert.Equal(t, expected.SignedTxHex, legacy["signedTx"])
	assert.Equal(t, expected.WitnessSetHex, legacy["witnessSetHex"])
	assert.Equal(t, expected.PublicKeyHex, legacy["vkey_hex"])
	assert.Equal(t, expected.SignatureHex, legacy["sig_hex"])
	assert.NotContains(t, legacy, "signed_tx_hex")
}

func TestSignCommandConfigFile(t *testing.T) {
	t.Setenv("TXSIGN_SIGNING_KEY", hex.EncodeToString(test.ExtendedKeyFromSeed("cli-config")))
	configFile := writeFile(t, "tx-sign.yaml", "format: legacy\nself_verify: true\nlog_level: debug\n")
	out, err := runCommand(t, "--config", configFile, "sign", "--tx", hex.EncodeToString(test.MinimalTx()))
	require.NoError(t, err)
	assert.Contains(t, out, `"witnessSetHex"`)
}

func TestSignCommandFailure(t *testing.T) {
	t.Setenv("TXSIGN_SIGNING_KEY", strings.Repeat("ab", 20))
	out, err := runCommand(t, "sign", "--tx", hex.EncodeToString(test.MinimalTx()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "InvalidKeyLength")
	var res signer.SignResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.False(t, res.Success)
	assert.Equal(t, signer.InvalidKeyLength, res.Kind)
}

func TestSignCommandNoKey(t *testing.T) {
	t.Setenv("TXSIGN_SIGNING_KEY", "")
	_, err := runCommand(t, "sign", "--tx", "80")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TXSIGN_SIGNING_KEY")
}

func TestSignCommandRequiresTx(t *testing.T) {
	_, err := runCommand(t, "sign")
	assert.Error(t, err)
	_, err = runCommand(t, "sign", "--tx", "80", "--tx-file", "tx.hex")
	assert.Error(t, err)
}

func TestUnknownFormat(t *testing.T) {
	t.Setenv("TXSIGN_FORMAT", "yaml")
	_, err := runCommand(t, "metadata", "--line", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestVerifyCommand(t *testing.T) {
	txHex := hex.EncodeToString(test.MinimalTx())
	res := signer.SignTransaction(txHex, hex.EncodeToString(test.ExtendedKeyFromSeed("cli-verify")))
	require.True(t, res.Success, res.Error)
	out, err := runCommand(t, "verify", "--tx", txHex, "--witness-set", res.WitnessSetHex)
	require.NoError(t, err)
	var verified struct {
		Valid     bool     `json:"valid"`
		KeyHashes []string `json:"key_hashes"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &verified))
	assert.True(t, verified.Valid)
	assert.Equal(t, []string{res.KeyHashHex}, verified.KeyHashes)

	_, err = runCommand(t, "verify", "--tx", test.NonCanonicalTxHex, "--witness-set", res.WitnessSetHex)
	assert.Error(t, err)
}

func TestInspectCommand(t *testing.T) {
	out, err := runCommand(t, "inspect", "--tx", test.NonCanonicalTxHex)
	require.NoError(t, err)
	var info struct {
		TxHash     string `json:"tx_hash"`
		Elements   int    `json:"elements"`
		Diagnostic string `json:"diagnostic"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, 4, info.Elements)
	assert.Len(t, info.TxHash, 64)
	assert.Contains(t, info.Diagnostic, "258(")

	_, err = runCommand(t, "inspect", "--tx", "82a0a1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "offset 2")
}

func TestMetadataCommand(t *testing.T) {
	out, err := runCommand(t, "metadata", "--line", "hello")
	require.NoError(t, err)
	assert.Equal(t, "a11902a2a1636d7367816568656c6c6f\n", out)
	_, err = runCommand(t, "metadata")
	assert.Error(t, err)
}
