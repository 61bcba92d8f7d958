package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchResultDecodesAPIPayload(t *testing.T) {
	payload := `{
		"ticker": "BLCA11",
		"cnpj": "12.345.678/0001-90",
		"total_fnet": 120,
		"listados": 1,
		"documentos": [{
			"id": 501,
			"categoria": "Relatórios",
			"tipo": "Relatório Gerencial",
			"data_entrega": "01/03/2024 10:00",
			"data_referencia": "2024-02-01T00:00:00",
			"status": "A",
			"url_download": "/api/fnet/download/501",
			"url_fnet": "https://fnet.bmfbovespa.com.br/fnet/publico/exibirDocumento?id=501"
		}],
		"consultado_em": "2024-03-01T10:00:00.123456"
	}`

	var result SearchResult
	require.NoError(t, json.Unmarshal([]byte(payload), &result))

	assert.Equal(t, "BLCA11", result.Ticker)
	assert.Equal(t, "12.345.678/0001-90", result.Registration())
	assert.Equal(t, 120, result.TotalAvailable)
	require.Len(t, result.Documents, 1)
	assert.Equal(t, "/api/fnet/download/501", result.Documents[0].DownloadPath)
	assert.True(t, result.Consistent())

	doc, ok := result.Document(501)
	require.True(t, ok)
	assert.Equal(t, "Relatórios", doc.Category)
}

func TestSearchResultNullRegistration(t *testing.T) {
	var result SearchResult
	require.NoError(t, json.Unmarshal([]byte(`{"ticker":"X","cnpj":null,"documentos":[]}`), &result))
	assert.Nil(t, result.RegistrationID)
	assert.Equal(t, "", result.Registration())
}

func TestConsistent(t *testing.T) {
	r := &SearchResult{TotalAvailable: 1, ListedCount: 2, Documents: []Document{{ID: 1}, {ID: 2}}}
	assert.False(t, r.Consistent())

	r = &SearchResult{TotalAvailable: 5, ListedCount: 3, Documents: []Document{{ID: 1}}}
	assert.False(t, r.Consistent())
}

func TestValidPageSize(t *testing.T) {
	for _, n := range []int{10, 20, 50, 100} {
		assert.True(t, ValidPageSize(n), n)
	}
	for _, n := range []int{0, 5, 25, 1000} {
		assert.False(t, ValidPageSize(n), n)
	}
}
