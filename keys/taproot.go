// Package keys derives single-key (key-path only) taproot outputs from
// public keys. All functions are pure.
package keys

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
)

// ParsePublicKey parses a hex encoded compressed or uncompressed secp256k1 public key.
func ParsePublicKey(pubKeyHex string) (*btcec.PublicKey, error) {
	raw, err := hex.DecodeString(pubKeyHex)
	if err != nil {
		return nil, fmt.Errorf("invalid public key hex %q: %w", pubKeyHex, err)
	}

	pub, err := btcec.ParsePubKey(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid public key %q: %w", pubKeyHex, err)
	}

	return pub, nil
}

// TaprootOutputKey applies the BIP-341 tweak with an empty script tree.
func TaprootOutputKey(internalKey *btcec.PublicKey) *btcec.PublicKey {
	return txscript.ComputeTaprootKeyNoScript(internalKey)
}

// TweakedPublicKey returns the 32-byte x-only serialization of the tweaked output key.
func TweakedPublicKey(internalKey *btcec.PublicKey) []byte {
	return schnorr.SerializePubKey(TaprootOutputKey(internalKey))
}

// TaprootAddress returns the bech32m P2TR address committing to internalKey
// with no script path, encoded for net.
func TaprootAddress(internalKey *btcec.PublicKey, net *chaincfg.Params) (*btcutil.AddressTaproot, error) {
	if net == nil {
		return nil, fmt.Errorf("nil network params")
	}

	addr, err := btcutil.NewAddressTaproot(TweakedPublicKey(internalKey), net)
	if err != nil {
		return nil, fmt.Errorf("failed to build taproot address for %s: %w", net.Name, err)
	}

	return addr, nil
}

// TaprootPkScript returns the witness v1 output script for internalKey.
func TaprootPkScript(internalKey *btcec.PublicKey) ([]byte, error) {
	return txscript.PayToTaprootScript(TaprootOutputKey(internalKey))
}

// TaprootDescriptor returns the output descriptor tr(<x-only internal key>)
// understood by scantxoutset. The node applies the tweak itself.
func TaprootDescriptor(internalKey *btcec.PublicKey) string {
	return fmt.Sprintf("tr(%x)", schnorr.SerializePubKey(internalKey))
}
