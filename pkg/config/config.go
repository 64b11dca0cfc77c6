package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Environment variable names for relay server configuration
const (
	EnvRelayPort            = "RELAY_PORT"
	EnvRelayChainID         = "RELAY_CHAIN_ID"
	EnvRelayRPCURL          = "RELAY_RPC_URL"
	EnvRelayPrivateKey      = "RELAY_PRIVATE_KEY"
	EnvRelayContractAddress = "RELAY_CONTRACT_ADDRESS"
	EnvRelayReplayWindow    = "RELAY_REPLAY_WINDOW_SECONDS"
	EnvRelayPersistenceType = "RELAY_PERSISTENCE_TYPE"
	EnvRelayBadgerPath      = "RELAY_BADGER_PATH"
	EnvRelayRedisAddress    = "RELAY_REDIS_ADDRESS"
	EnvRelayVerbose         = "RELAY_VERBOSE"
)

type ChainId uint

const (
	ChainId_BaseMainnet ChainId = 8453
	ChainId_BaseSepolia ChainId = 84532
	ChainId_Anvil       ChainId = 31337
)

type ChainName string

const (
	ChainName_BaseMainnet ChainName = "base"
	ChainName_BaseSepolia ChainName = "base_sepolia"
	ChainName_Anvil       ChainName = "devnet"
)

var ChainIdToName = map[ChainId]ChainName{
	ChainId_BaseMainnet: ChainName_BaseMainnet,
	ChainId_BaseSepolia: ChainName_BaseSepolia,
	ChainId_Anvil:       ChainName_Anvil,
}
var ChainNameToId = map[ChainName]ChainId{
	ChainName_BaseMainnet: ChainId_BaseMainnet,
	ChainName_BaseSepolia: ChainId_BaseSepolia,
	ChainName_Anvil:       ChainId_Anvil,
}

// GetConfirmationTimeoutForChain returns how long a relay waits for a
// submitted transaction to be mined before giving up on the wait. The write
// itself is irrevocable once broadcast; only the waiting is bounded.
func GetConfirmationTimeoutForChain(chainId ChainId) time.Duration {
	switch chainId {
	case ChainId_BaseMainnet, ChainId_BaseSepolia:
		// Base produces 2s blocks; 90s covers sequencer hiccups.
		return 90 * time.Second
	case ChainId_Anvil:
		return 15 * time.Second
	default:
		return 90 * time.Second
	}
}

// PersistenceType selects the transaction log backend.
type PersistenceType string

const (
	PersistenceTypeMemory PersistenceType = "memory"
	PersistenceTypeBadger PersistenceType = "badger"
	PersistenceTypeRedis  PersistenceType = "redis"
)

// RelayServerConfig is the complete configuration for a relay server.
type RelayServerConfig struct {
	Port int `json:"port"`

	// Chain configuration
	ChainID   ChainId   `json:"chain_id"`
	ChainName ChainName `json:"chain_name"`

	// Blockchain configuration
	RpcUrl          string `json:"rpc_url"`          // JSON-RPC endpoint
	PrivateKey      string `json:"private_key"`      // funded relayer key, pays gas for all relays
	ContractAddress string `json:"contract_address"` // deployed ledger contract

	// Relay protocol settings
	ReplayWindowSeconds int64 `json:"replay_window_seconds"`

	// Transaction log persistence
	PersistenceType PersistenceType `json:"persistence_type"`
	BadgerPath      string          `json:"badger_path,omitempty"`
	RedisAddress    string          `json:"redis_address,omitempty"`

	// Operational settings
	Verbose bool `json:"verbose"`
}

// Validate validates the relay server configuration and normalizes the
// private key to its 0x-prefixed form.
func (c *RelayServerConfig) Validate() error {
	if c.RpcUrl == "" {
		return fmt.Errorf("rpc url cannot be empty")
	}

	if c.ContractAddress == "" {
		return fmt.Errorf("contract address cannot be empty")
	}
	if !common.IsHexAddress(c.ContractAddress) {
		return fmt.Errorf("invalid contract address format: %s", c.ContractAddress)
	}

	normalizedKey, err := NormalizePrivateKey(c.PrivateKey)
	if err != nil {
		return err
	}
	c.PrivateKey = normalizedKey

	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1-65535, got %d", c.Port)
	}

	chainName, exists := ChainIdToName[c.ChainID]
	if !exists {
		return fmt.Errorf("unsupported chain ID %d. Supported: %d (base), %d (base_sepolia), %d (anvil)",
			c.ChainID, ChainId_BaseMainnet, ChainId_BaseSepolia, ChainId_Anvil)
	}
	c.ChainName = chainName

	if c.ReplayWindowSeconds <= 0 {
		return fmt.Errorf("replay window must be positive, got %d", c.ReplayWindowSeconds)
	}

	switch c.PersistenceType {
	case PersistenceTypeMemory:
	case PersistenceTypeBadger:
		if c.BadgerPath == "" {
			return fmt.Errorf("badger path required when persistence type is badger")
		}
	case PersistenceTypeRedis:
		if c.RedisAddress == "" {
			return fmt.Errorf("redis address required when persistence type is redis")
		}
	default:
		return fmt.Errorf("unsupported persistence type: %q", c.PersistenceType)
	}

	return nil
}

// NormalizePrivateKey validates a secp256k1 private key in hex form and
// returns it 0x-prefixed. Accepts input with or without the prefix.
func NormalizePrivateKey(raw string) (string, error) {
	key := strings.TrimSpace(raw)
	if key == "" {
		return "", fmt.Errorf("private key cannot be empty")
	}
	if !strings.HasPrefix(key, "0x") {
		key = "0x" + key
	}
	if len(key) != 66 { // 0x + 64 hex chars
		return "", fmt.Errorf("private key must be 32 bytes (64 hex chars), got %d chars", len(key)-2)
	}
	for _, r := range key[2:] {
		if !isHexDigit(r) {
			return "", fmt.Errorf("private key contains non-hex character %q", r)
		}
	}
	return key, nil
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// GetSupportedChainIDs returns all supported chain IDs.
func GetSupportedChainIDs() []ChainId {
	return []ChainId{
		ChainId_BaseMainnet,
		ChainId_BaseSepolia,
		ChainId_Anvil,
	}
}

// GetSupportedChainIDsString returns supported chain IDs as strings for CLI help.
func GetSupportedChainIDsString() string {
	return fmt.Sprintf("%d (base), %d (base_sepolia), %d (anvil)",
		ChainId_BaseMainnet, ChainId_BaseSepolia, ChainId_Anvil)
}
