package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const (
	// HTTPListenAddrKey is the address the dashboard HTTP interface will listen on
	HTTPListenAddrKey = "HTTP_LISTEN_ADDR"
	// LogLevelKey are the different logging levels. For reference on the values https://godoc.org/github.com/sirupsen/logrus#Level
	LogLevelKey = "LOG_LEVEL"
	// IndexerEndpointKey is the base URL of the Blockfrost-compatible chain indexer
	IndexerEndpointKey = "INDEXER_ENDPOINT"
	// IndexerProjectIDKey is the credential sent to the indexer in the project_id header
	IndexerProjectIDKey = "INDEXER_PROJECT_ID"
	// PoolDirectoryEndpointKey is the base URL of the stake-pool directory
	PoolDirectoryEndpointKey = "POOL_DIRECTORY_ENDPOINT"
	// StakeDestinationAddressKey is the fixed destination address of every stake transfer
	StakeDestinationAddressKey = "STAKE_DESTINATION_ADDRESS"
	// MinStakeAdaKey is the minimum stake amount in display units
	MinStakeAdaKey = "MIN_STAKE_ADA"
	// ConnectSettleMsKey is the delay in milliseconds between enabling a wallet and reading its identity
	ConnectSettleMsKey = "CONNECT_SETTLE_MS"
	// BridgeCallTimeoutKey is the per-call timeout in seconds for relayed wallet calls, which may wait on user prompts
	BridgeCallTimeoutKey = "BRIDGE_CALL_TIMEOUT"
	// HistoryPageSizeKey is the default page size of the transaction history
	HistoryPageSizeKey = "HISTORY_PAGE_SIZE"
	// EnableStatsKey enables periodic runtime statistics logging
	EnableStatsKey = "ENABLE_STATS"
	// StatsIntervalKey defines the interval in seconds between statistics prints
	StatsIntervalKey = "STATS_INTERVAL"
)

var vip *viper.Viper

func InitConfig() error {
	vip = viper.New()
	vip.SetEnvPrefix("STAKEDASH")
	vip.AutomaticEnv()

	vip.SetDefault(HTTPListenAddrKey, ":7070")
	vip.SetDefault(LogLevelKey, 4)
	vip.SetDefault(IndexerEndpointKey, "https://cardano-mainnet.blockfrost.io/api/v0")
	vip.SetDefault(PoolDirectoryEndpointKey, "https://adapools.stakedash.io/api")
	vip.SetDefault(MinStakeAdaKey, 5)
	vip.SetDefault(ConnectSettleMsKey, 1000)
	vip.SetDefault(BridgeCallTimeoutKey, 120)
	vip.SetDefault(HistoryPageSizeKey, 10)
	vip.SetDefault(EnableStatsKey, false)
	vip.SetDefault(StatsIntervalKey, 600)

	return nil
}

// Validate checks the settings without reasonable defaults: the indexer
// credential and the stake destination must be provided explicitly.
func Validate() error {
	if GetString(IndexerProjectIDKey) == "" {
		return fmt.Errorf("%s must be set", IndexerProjectIDKey)
	}
	if GetString(StakeDestinationAddressKey) == "" {
		return fmt.Errorf("%s must be set", StakeDestinationAddressKey)
	}
	return nil
}

// GetString ...
func GetString(key string) string {
	return vip.GetString(key)
}

// GetInt ...
func GetInt(key string) int {
	return vip.GetInt(key)
}

// GetBool ...
func GetBool(key string) bool {
	return vip.GetBool(key)
}

// GetDuration returns the value of key, expressed in seconds, as a Duration.
func GetDuration(key string) time.Duration {
	return time.Duration(vip.GetInt(key)) * time.Second
}
