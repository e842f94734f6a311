package ipresolver

import (
	"vaultline.io/infrastructure/ipresolver/maxmind"
	"vaultline.io/infrastructure/ipresolver/types"
)

var IPResolverInstance types.IPResolver = &maxmind.MaxMindIPResolver{}
