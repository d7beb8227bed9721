package domain

import "time"

// Asset is a native token amount held at an address.
type Asset struct {
	Unit     string `json:"unit"`
	Quantity string `json:"quantity"`
}

// AddressInfo is the on-chain balance view of an address.
type AddressInfo struct {
	Address  string  `json:"address"`
	Lovelace int64   `json:"lovelace"`
	Assets   []Asset `json:"assets,omitempty"`
}

// UTXO is a single unspent output sitting at an address.
type UTXO struct {
	TxHash      string `json:"tx_hash"`
	OutputIndex int    `json:"output_index"`
	Lovelace    int64  `json:"lovelace"`
}

// AddressTx references a transaction that touched an address.
type AddressTx struct {
	TxHash      string `json:"tx_hash"`
	TxIndex     int    `json:"tx_index"`
	BlockHeight int64  `json:"block_height"`
}

// ChainTx is the subset of transaction details needed to confirm a payment.
type ChainTx struct {
	Hash        string    `json:"hash"`
	BlockHeight int64     `json:"block_height"`
	BlockTime   time.Time `json:"block_time"`
	Fees        int64     `json:"fees"`
}
