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

package chainlibs

import (
	"fmt"

	"github.com/blinklabs-io/gochainlibs/crypto"
	"github.com/blinklabs-io/gochainlibs/ledger/common"
)

// Network definitions
var (
	NetworkMainnet = Network{
		Name:           "mainnet",
		Discrimination: common.DiscriminationProduction,
		AddressPrefix:  "ca",
	}
	NetworkTestnet = Network{
		Name:           "testnet",
		Discrimination: common.DiscriminationTest,
		AddressPrefix:  "ta",
	}

	NetworkInvalid = Network{
		Name: "invalid",
	} // NetworkInvalid is used as a return value for lookup functions when a network isn't found
)

// List of valid networks for use in lookup functions
var networks = []Network{
	NetworkMainnet,
	NetworkTestnet,
}

// NetworkByName returns a predefined network by name
func NetworkByName(name string) Network {
	for _, network := range networks {
		if network.Name == name {
			return network
		}
	}
	return NetworkInvalid
}

// NetworkByAddressPrefix returns a predefined network by its bech32 address
// prefix
func NetworkByAddressPrefix(prefix string) Network {
	for _, network := range networks {
		if network.AddressPrefix == prefix {
			return network
		}
	}
	return NetworkInvalid
}

// Network holds the address conventions of a chain
type Network struct {
	Name           string
	Discrimination common.Discrimination
	AddressPrefix  string
}

func (n Network) String() string {
	return n.Name
}

// AccountAddress returns the account address of key on this network
func (n Network) AccountAddress(key crypto.PublicKey) common.Address {
	return common.NewAccountAddress(n.Discrimination, key)
}

// FormatAddress returns the bech32 form of addr with the network prefix
func (n Network) FormatAddress(addr common.Address) string {
	return addr.Bech32(n.AddressPrefix)
}

// ParseAddress decodes a bech32 address and checks that it belongs to this
// network
func (n Network) ParseAddress(s string) (common.Address, error) {
	prefix, data, err := crypto.Bech32Decode(s)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %w", common.ErrInvalidAddress, err)
	}
	if prefix != n.AddressPrefix {
		return common.Address{}, fmt.Errorf(
			"%w: prefix %q does not belong to network %s",
			common.ErrInvalidAddress,
			prefix,
			n.Name,
		)
	}
	addr, err := common.NewAddressFromBytes(data)
	if err != nil {
		return common.Address{}, err
	}
	if addr.Discrimination() != n.Discrimination {
		return common.Address{}, fmt.Errorf(
			"%w: %s address on network %s",
			common.ErrInvalidAddress,
			addr.Discrimination(),
			n.Name,
		)
	}
	return addr, nil
}
