// Package accounts holds the key material of the named test roles. The
// material is loaded once from a fixtures file at process start and the
// resulting Registry is passed to whoever needs it.
package accounts

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/fiamma-labs/btctestkit/keys"
	"github.com/fiamma-labs/btctestkit/netparams"
)

type Role string

const (
	RoleOperator   Role = "operator"
	RoleCommittee  Role = "committee"
	RoleChallenger Role = "challenger"
	RoleUserPegin  Role = "user-pegin"
)

// Roles lists every role a fixtures file must define.
var Roles = []Role{RoleOperator, RoleCommittee, RoleChallenger, RoleUserPegin}

var (
	ErrUnknownRole    = errors.New("unknown account role")
	ErrNoPrivateKey   = errors.New("account has no private key")
	ErrKeyMismatch    = errors.New("private key does not match public key")
	ErrWrongNetwork   = errors.New("key material is not for the registry network")
	ErrMissingAccount = errors.New("account missing from fixtures")
)

// Account is a named role with its derived taproot address.
type Account struct {
	Role    Role
	PrivKey *btcec.PrivateKey
	PubKey  *btcec.PublicKey
	Address *btcutil.AddressTaproot
}

// KeyPair returns the account's private and public key.
func (a *Account) KeyPair() (*btcec.PrivateKey, *btcec.PublicKey, error) {
	if a.PrivKey == nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrNoPrivateKey, a.Role)
	}

	return a.PrivKey, a.PubKey, nil
}

// Registry is the read-only set of accounts for one network.
type Registry struct {
	net          *chaincfg.Params
	minerAddress btcutil.Address
	accounts     map[Role]*Account
}

type fixtureAccount struct {
	PrivateKey string `yaml:"private-key"`
	PublicKey  string `yaml:"public-key"`
}

type fixtures struct {
	MinerAddress string                    `yaml:"miner-address"`
	Accounts     map[string]fixtureAccount `yaml:"accounts"`
}

// Load reads the fixtures file at path and builds a registry for net.
func Load(path string, net *chaincfg.Params) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open account fixtures: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	var fx fixtures
	if err := dec.Decode(&fx); err != nil {
		return nil, fmt.Errorf("failed to decode account fixtures %s: %w", path, err)
	}

	return newRegistry(&fx, net)
}

func newRegistry(fx *fixtures, net *chaincfg.Params) (*Registry, error) {
	if err := netparams.CheckSupported(net); err != nil {
		return nil, err
	}

	var result *multierror.Error

	miner, err := btcutil.DecodeAddress(fx.MinerAddress, net)
	switch {
	case err != nil:
		result = multierror.Append(result, fmt.Errorf("invalid miner-address %q: %w", fx.MinerAddress, err))
	case !miner.IsForNet(net):
		result = multierror.Append(result, fmt.Errorf("%w: miner-address %s on %s", ErrWrongNetwork, fx.MinerAddress, net.Name))
	}

	known := make(map[string]bool, len(Roles))
	for _, r := range Roles {
		known[string(r)] = true
	}
	for name := range fx.Accounts {
		if !known[name] {
			result = multierror.Append(result, fmt.Errorf("%w: %q", ErrUnknownRole, name))
		}
	}

	registry := &Registry{
		net:          net,
		minerAddress: miner,
		accounts:     make(map[Role]*Account, len(Roles)),
	}
	for _, role := range Roles {
		entry, ok := fx.Accounts[string(role)]
		if !ok {
			result = multierror.Append(result, fmt.Errorf("%w: %s", ErrMissingAccount, role))
			continue
		}

		acc, err := newAccount(role, entry, net)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		registry.accounts[role] = acc
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}

	return registry, nil
}

func newAccount(role Role, entry fixtureAccount, net *chaincfg.Params) (*Account, error) {
	pub, err := keys.ParsePublicKey(entry.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", role, err)
	}

	acc := &Account{Role: role, PubKey: pub}

	if entry.PrivateKey != "" {
		xprv, err := hdkeychain.NewKeyFromString(entry.PrivateKey)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid extended private key: %w", role, err)
		}
		if !xprv.IsPrivate() {
			return nil, fmt.Errorf("%s: %w", role, ErrNoPrivateKey)
		}
		if !xprv.IsForNet(net) {
			return nil, fmt.Errorf("%w: %s extended key on %s", ErrWrongNetwork, role, net.Name)
		}
		priv, err := xprv.ECPrivKey()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", role, err)
		}
		if !priv.PubKey().IsEqual(pub) {
			return nil, fmt.Errorf("%w: %s", ErrKeyMismatch, role)
		}
		acc.PrivKey = priv
	}

	acc.Address, err = keys.TaprootAddress(pub, net)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", role, err)
	}

	return acc, nil
}

func (r *Registry) Network() *chaincfg.Params {
	return r.net
}

func (r *Registry) MinerAddress() btcutil.Address {
	return r.minerAddress
}

// Get returns the account for role.
func (r *Registry) Get(role Role) (*Account, error) {
	acc, ok := r.accounts[role]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}

	return acc, nil
}

func (r *Registry) Operator() *Account {
	return r.accounts[RoleOperator]
}

func (r *Registry) Committee() *Account {
	return r.accounts[RoleCommittee]
}

func (r *Registry) Challenger() *Account {
	return r.accounts[RoleChallenger]
}

func (r *Registry) UserPegin() *Account {
	return r.accounts[RoleUserPegin]
}

func (r *Registry) OperatorKeyPair() (*btcec.PrivateKey, *btcec.PublicKey, error) {
	return r.Operator().KeyPair()
}

// All returns the accounts ordered by role name.
func (r *Registry) All() []*Account {
	all := make([]*Account, 0, len(r.accounts))
	for _, acc := range r.accounts {
		all = append(all, acc)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Role < all[j].Role })

	return all
}
