package service

import (
	"bytes"
	"encoding/json"

	"github.com/shipflow/ordergateway/internal/model"
	"github.com/shipflow/ordergateway/pkg/eccang"
)

// NormalizeTrackingList collapses the carrier's tracking list representations
// into one ordered pair list. The input may be absent, an array of
// box/tracking entries, or an object keyed by box number. Never fails:
// malformed input degrades to an empty list.
func NormalizeTrackingList(raw json.RawMessage) []model.TrackingPair {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return nil
	}

	switch trimmed[0] {
	case '[':
		return normalizePairList(trimmed)
	case '{':
		return normalizeKeyedList(trimmed)
	default:
		return nil
	}
}

func normalizePairList(raw []byte) []model.TrackingPair {
	var entries []struct {
		BoxNumber      string `json:"box_number"`
		TrackingNumber string `json:"tracking_number"`
	}
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil
	}

	pairs := make([]model.TrackingPair, 0, len(entries))
	for _, entry := range entries {
		if entry.TrackingNumber == "" {
			continue
		}

		box := entry.BoxNumber
		if box == "" {
			box = model.BoxNumberPrimary
		}

		pairs = append(pairs, model.TrackingPair{BoxNumber: box, TrackingNumber: entry.TrackingNumber})
	}

	return pairs
}

// normalizeKeyedList walks the object token by token so the pairs keep the
// carrier's key order, which a map decode would lose.
func normalizeKeyedList(raw []byte) []model.TrackingPair {
	dec := json.NewDecoder(bytes.NewReader(raw))
	if _, err := dec.Token(); err != nil {
		return nil
	}

	var pairs []model.TrackingPair
	for dec.More() {
		keyToken, err := dec.Token()
		if err != nil {
			return nil
		}

		key, ok := keyToken.(string)
		if !ok {
			return nil
		}

		var value string
		if err := dec.Decode(&value); err != nil {
			return nil
		}

		pairs = append(pairs, model.TrackingPair{BoxNumber: key, TrackingNumber: value})
	}

	return pairs
}

// SummarizeCreateOrder merges every tracking representation of a create-order
// response into one summary.
func SummarizeCreateOrder(response eccang.CreateOrderResponse) model.TrackingSummary {
	return summarize(response.TrackStatus, response.TrackingNumber, response.TrackingNumberAlt,
		response.TrackingNumberList)
}

// SummarizeTrackNumber builds a summary from the first entry of a tracking
// lookup. Reports false while the carrier has no tracking numbers yet.
func SummarizeTrackNumber(response eccang.GetTrackNumberResponse) (model.TrackingSummary, bool) {
	if len(response.Datas) == 0 {
		return model.TrackingSummary{}, false
	}

	entry := response.Datas[0]
	summary := summarize(response.TrackStatus, entry.TrackingNumber, entry.TrackingNumberAlt,
		entry.TrackingNumberList)
	if len(summary.TrackingNumbers) == 0 {
		return model.TrackingSummary{}, false
	}

	return summary, true
}

func summarize(status *int, primary, primaryAlt string, rawList json.RawMessage) model.TrackingSummary {
	list := NormalizeTrackingList(rawList)

	seen := make(map[string]struct{})
	var numbers []string
	add := func(number string) {
		if number == "" {
			return
		}
		if _, ok := seen[number]; ok {
			return
		}
		seen[number] = struct{}{}
		numbers = append(numbers, number)
	}

	add(primary)
	add(primaryAlt)
	for _, pair := range list {
		add(pair.TrackingNumber)
	}

	summary := model.TrackingSummary{Status: status, TrackingNumbers: numbers, List: list}
	if len(numbers) > 0 {
		summary.Primary = numbers[0]
	}

	return summary
}
