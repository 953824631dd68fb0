package network

import "github.com/ethereum/go-ethereum/common"

// Type names a classified network.
type Type string

// Known network types. Anything that does not match the table below is
// classified as private.
const (
	TypeMain    Type = "main"
	TypeMorden  Type = "morden"
	TypeRopsten Type = "ropsten"
	TypeRinkeby Type = "rinkeby"
	TypeKovan   Type = "kovan"
	TypePrivate Type = "private"
)

// knownNetworks maps (genesis hash, network id) pairs to a network name.
// Hashes are normalized through common.HexToHash so comparison is always
// against the canonical 32-byte value.
var knownNetworks = []struct {
	typ     Type
	id      uint64
	genesis common.Hash
}{
	{TypeMain, 1, common.HexToHash("0xd4e56740f876aef8c010b86a40d5f56745a118d0906a34e69aec8c0db1cb8fa3")},
	{TypeMorden, 2, common.HexToHash("0x0cd786a2425d16f152c658316c423e6ce1181e15c3295826d7c9904cba9ce303")},
	{TypeRopsten, 3, common.HexToHash("0x41941023680923e0fe4d74a34bdac8141f2540e3ae90623718e47d66d1ca4a2d")},
	{TypeRinkeby, 4, common.HexToHash("0x6341fd3daf94b748c72ced5a5b26028f2474f5f00d824504e4fa37a75767e177")},
	{TypeKovan, 42, common.HexToHash("0xa3c565fc15c7478862d50ccd6561e3c06b24cc509bf388941c25ea985ce32cb9")},
}

// classify resolves a network type from its id and genesis block hash. Both
// fields must match exactly; unknown combinations are private.
func classify(id uint64, genesis common.Hash) Type {
	for _, n := range knownNetworks {
		if n.id == id && n.genesis == genesis {
			return n.typ
		}
	}
	return TypePrivate
}
