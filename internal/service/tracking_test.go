package service_test

import (
	"encoding/json"
	"testing"

	"github.com/shipflow/ordergateway/internal/model"
	"github.com/shipflow/ordergateway/internal/service"
	"github.com/shipflow/ordergateway/pkg/eccang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTrackingList(t *testing.T) {
	cases := []struct {
		name     string
		raw      string
		expected []model.TrackingPair
	}{
		{name: "absent input", raw: "", expected: nil},
		{name: "JSON null", raw: "null", expected: nil},
		{name: "malformed input", raw: `"just a string"`, expected: nil},
		{name: "malformed array", raw: `[{"box_number":`, expected: nil},
		{
			name: "pair list",
			raw:  `[{"box_number":"U001","tracking_number":"TN1"},{"box_number":"U002","tracking_number":"TN2"}]`,
			expected: []model.TrackingPair{
				{BoxNumber: "U001", TrackingNumber: "TN1"},
				{BoxNumber: "U002", TrackingNumber: "TN2"},
			},
		},
		{
			name: "entries without a tracking number are dropped",
			raw:  `[{"box_number":"U001","tracking_number":"TN1"},{"box_number":"U002"}]`,
			expected: []model.TrackingPair{
				{BoxNumber: "U001", TrackingNumber: "TN1"},
			},
		},
		{
			name: "entries without a box number get the primary box",
			raw:  `[{"tracking_number":"TN1"}]`,
			expected: []model.TrackingPair{
				{BoxNumber: model.BoxNumberPrimary, TrackingNumber: "TN1"},
			},
		},
		{
			name: "keyed object keeps the carrier key order",
			raw:  `{"U001":"TNA","U002":"TNB"}`,
			expected: []model.TrackingPair{
				{BoxNumber: "U001", TrackingNumber: "TNA"},
				{BoxNumber: "U002", TrackingNumber: "TNB"},
			},
		},
		{name: "keyed object with a non-string value", raw: `{"U001":{"nested":true}}`, expected: nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pairs := service.NormalizeTrackingList(json.RawMessage(tc.raw))
			assert.Equal(t, tc.expected, pairs)
		})
	}
}

func TestNormalizeTrackingList_Idempotent(t *testing.T) {
	raw := json.RawMessage(`{"U001":"TNA","U002":"TNB"}`)

	first := service.NormalizeTrackingList(raw)
	data, err := json.Marshal(first)
	require.NoError(t, err)
	second := service.NormalizeTrackingList(data)

	assert.Equal(t, first, second)
}

func TestSummarizeCreateOrder(t *testing.T) {
	t.Run("deduplicates numbers and keeps first-seen order", func(t *testing.T) {
		status := 1
		response := eccang.CreateOrderResponse{
			TrackStatus:        &status,
			TrackingNumber:     "TN1",
			TrackingNumberAlt:  "TN1",
			TrackingNumberList: json.RawMessage(`[{"box_number":"U001","tracking_number":"TN1"},{"box_number":"U002","tracking_number":"TN2"}]`),
		}

		summary := service.SummarizeCreateOrder(response)

		assert.Equal(t, []string{"TN1", "TN2"}, summary.TrackingNumbers)
		assert.Equal(t, "TN1", summary.Primary)
		require.NotNil(t, summary.Status)
		assert.Equal(t, 1, *summary.Status)
		assert.Len(t, summary.List, 2)
	})

	t.Run("primary is the first tracking number", func(t *testing.T) {
		response := eccang.CreateOrderResponse{
			TrackingNumberList: json.RawMessage(`{"U001":"TNA","U002":"TNB"}`),
		}

		summary := service.SummarizeCreateOrder(response)

		assert.Equal(t, "TNA", summary.Primary)
		assert.Equal(t, summary.TrackingNumbers[0], summary.Primary)
	})

	t.Run("empty response yields an empty summary", func(t *testing.T) {
		summary := service.SummarizeCreateOrder(eccang.CreateOrderResponse{})

		assert.Empty(t, summary.Primary)
		assert.Empty(t, summary.TrackingNumbers)
		assert.Empty(t, summary.List)
	})
}

func TestSummarizeTrackNumber(t *testing.T) {
	t.Run("reports unresolved when datas is empty", func(t *testing.T) {
		_, resolved := service.SummarizeTrackNumber(eccang.GetTrackNumberResponse{})
		assert.False(t, resolved)
	})

	t.Run("reports unresolved when the entry has no numbers", func(t *testing.T) {
		response := eccang.GetTrackNumberResponse{
			Datas: []eccang.TrackNumberData{{ReferenceNo: "REF-001"}},
		}

		_, resolved := service.SummarizeTrackNumber(response)
		assert.False(t, resolved)
	})

	t.Run("summarizes the first entry", func(t *testing.T) {
		status := 1
		response := eccang.GetTrackNumberResponse{
			TrackStatus: &status,
			Datas: []eccang.TrackNumberData{
				{ReferenceNo: "REF-001", TrackingNumber: "TN1"},
				{ReferenceNo: "REF-002", TrackingNumber: "ignored"},
			},
		}

		summary, resolved := service.SummarizeTrackNumber(response)

		require.True(t, resolved)
		assert.Equal(t, "TN1", summary.Primary)
		assert.Equal(t, []string{"TN1"}, summary.TrackingNumbers)
	})
}
