// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"

	"github.com/katalvlaran/unitmarket/market"
)

// MarketFile is the on-disk market: null marks an absent edge.
type MarketFile struct {
	Valuations *market.ValuationMatrix `json:"valuations"`
}

// Report is the output of the evp command.
type Report struct {
	Best       int              `json:"best"`
	Reserve    float64          `json:"reserve"`
	Candidates []CandidateEntry `json:"candidates"`
	Outcome    market.Outcome   `json:"outcome"`
}

// CandidateEntry summarizes one evaluated reserve.
type CandidateEntry struct {
	Bidder  int     `json:"bidder"`
	Reserve float64 `json:"reserve"`
	Revenue float64 `json:"revenue"`
}

func loadMarket(file string) (*market.ValuationMatrix, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	var mf MarketFile
	decoder := json.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&mf); err != nil {
		return nil, err
	}
	if mf.Valuations == nil {
		return nil, errors.New("missing \"valuations\"")
	}

	return mf.Valuations, nil
}

// writeJSON encodes v to file, or to w when file is empty.
func writeJSON(w io.Writer, file string, v any) error {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetIndent("", "   ")
	if err := encoder.Encode(v); err != nil {
		return err
	}
	if file == "" {
		_, err := w.Write(buf.Bytes())
		return err
	}

	return os.WriteFile(file, buf.Bytes(), 0o644)
}
