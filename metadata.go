package triarb

import (
	"encoding/json"
	"io"
	"log/slog"
	"strings"
)

// tradingStatus is the only exchange-info status that participates in
// universe construction. Comparison is exact, per spec.md §4.B.
const tradingStatus = "TRADING"

// SymbolInfo is one entry of exchange metadata: the decomposition of a
// listed market into its base and quote assets, plus its trading status.
// See spec.md §6.
type SymbolInfo struct {
	Symbol     Symbol `json:"symbol"`
	BaseAsset  Asset  `json:"base_asset"`
	QuoteAsset Asset  `json:"quote_asset"`
	Status     string `json:"status"`
}

// ExchangeInfo is the full set of listed symbols consumed by the universe
// builder. Only entries with Status == "TRADING" participate; everything
// else is dropped by ValidSymbols with a Warn-level log line, never an
// error (spec.md §4.B, §7).
type ExchangeInfo struct {
	Symbols []SymbolInfo `json:"symbols"`
}

// LoadExchangeInfo decodes a JSON document of the form
// {"symbols":[{"symbol":"BTCUSDT","base_asset":"BTC","quote_asset":"USDT","status":"TRADING"}, ...]}
// as read by cmd/triarb-universe from an exchange metadata snapshot.
func LoadExchangeInfo(r io.Reader) (ExchangeInfo, error) {
	var info ExchangeInfo
	if err := json.NewDecoder(r).Decode(&info); err != nil {
		return ExchangeInfo{}, err
	}
	return info, nil
}

// ValidSymbols filters out entries with an empty symbol, empty asset, or
// non-trading status, logging each skip at Warn via logger (or the
// default logger, if nil). The result is safe to pass to NewSymbolTable
// and BuildUniverse.
func (e ExchangeInfo) ValidSymbols(logger *slog.Logger) []SymbolInfo {
	if logger == nil {
		logger = slog.Default()
	}
	valid := make([]SymbolInfo, 0, len(e.Symbols))
	for _, s := range e.Symbols {
		if reason := s.malformedReason(); reason != "" {
			logger.Warn("metadata entry skipped", "symbol", s.Symbol, "reason", reason)
			IncMetadataSkipped()
			continue
		}
		if s.Status != tradingStatus {
			logger.Warn("metadata entry skipped", "symbol", s.Symbol, "reason", "status "+s.Status)
			IncMetadataSkipped()
			continue
		}
		valid = append(valid, s)
	}
	return valid
}

func (s SymbolInfo) malformedReason() string {
	if strings.TrimSpace(string(s.Symbol)) == "" {
		return "empty symbol"
	}
	if strings.TrimSpace(string(s.BaseAsset)) == "" {
		return "empty base asset"
	}
	if strings.TrimSpace(string(s.QuoteAsset)) == "" {
		return "empty quote asset"
	}
	if s.BaseAsset == s.QuoteAsset {
		return "base and quote asset are identical"
	}
	if strings.TrimSpace(s.Status) == "" {
		return "empty status"
	}
	return ""
}
