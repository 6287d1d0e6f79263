package btcclient

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

//go:generate mockgen -source=interface.go -package=mocks -destination=../testutil/mocks/btcclient.go

// BTCClient is the node surface used by the harness and the CLI.
type BTCClient interface {
	Stop()
	Network() *chaincfg.Params
	CheckNetwork(net *chaincfg.Params) error

	GetBlockCount() (int64, error)
	GetBlock(blockHash *chainhash.Hash) (*wire.MsgBlock, error)
	GetBlockHeight(blockHash *chainhash.Hash) (int32, error)
	GetBlockHeaderInfo(blockHash *chainhash.Hash) (*btcjson.GetBlockHeaderVerboseResult, error)
	GetBlockHashByHeight(height int64) (*chainhash.Hash, error)
	GetBlockMedianTime(height int64) (int64, error)
	GetBestBlockMedianTime() (int64, error)
	GetTx(txHash *chainhash.Hash) (*wire.MsgTx, error)
	GetTxInfo(txHash *chainhash.Hash) (*btcjson.TxRawResult, error)
	GetTxStatus(txHash *chainhash.Hash) (TxStatus, error)
	ScanTxOutSet(pub *btcec.PublicKey) (*ScanTxOutResult, error)

	PostTx(tx *wire.MsgTx) (*chainhash.Hash, error)
	CheckTx(tx *wire.MsgTx) (*chainhash.Hash, error)
	CheckAndPostTx(tx *wire.MsgTx) (*chainhash.Hash, error)

	GenerateToAddress(numBlocks int64, addr btcutil.Address) ([]*chainhash.Hash, error)
	SendToAddress(addr btcutil.Address, amount btcutil.Amount) (*chainhash.Hash, error)
	GetUnspent(addr btcutil.Address, minConf int) ([]btcjson.ListUnspentResult, error)
}
