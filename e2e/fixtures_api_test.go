//go:build e2e && unix

package main

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
)

const hglg11Body = `{
	"ticker": "HGLG11",
	"cnpj": "11.728.688/0001-47",
	"total_fnet": 1500,
	"listados": 2,
	"documentos": [
		{"id": 501, "categoria": "Relatórios", "tipo": "Relatório Gerencial", "status": "Ativo", "data_entrega": "2024-03-01T10:00:00", "data_referencia": "2024-02-01T00:00:00", "url_download": "/files/501", "url_fnet": "https://fnet.example/501"},
		{"id": 502, "categoria": "Fato Relevante", "tipo": "Aquisição de Imóvel", "status": "Ativo", "data_entrega": "2024-03-02T09:30:00", "data_referencia": "", "url_download": "/files/502", "url_fnet": "https://fnet.example/502"}
	],
	"consultado_em": "2024-03-05T12:00:00"
}`

// fakeAPI serves HGLG11 and answers 404 for any other ticker
func fakeAPI() *httptest.Server {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"status":"ok"}`)
	})
	r.Get("/documents/{ticker}", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if chi.URLParam(req, "ticker") != "HGLG11" {
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"detail":"Ticker not found"}`)
			return
		}
		_, _ = io.WriteString(w, hglg11Body)
	})
	r.Get("/files/{id}", func(w http.ResponseWriter, req *http.Request) {
		if chi.URLParam(req, "id") != "501" {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = io.WriteString(w, "%PDF-1.4\n%%EOF\n")
	})
	return httptest.NewServer(r)
}

// CreateTestWorkspace creates an isolated workspace with a running fake API
// and a config file pointing at it
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	workspace, err := os.MkdirTemp("", "fnetgrip-e2e-*")
	if err != nil {
		return "", fmt.Errorf("failed to create workspace: %w", err)
	}
	tf.workspace = workspace
	tf.api = fakeAPI()

	if err := os.MkdirAll(tf.DownloadDir(), 0755); err != nil {
		return "", err
	}

	body := fmt.Sprintf(`version = 1

[api]
base_url = %q

[download]
dir = %q

[log]
level = "debug"
file = %q
`, tf.api.URL, tf.DownloadDir(), filepath.Join(workspace, "fnetgrip.log"))

	if err := os.WriteFile(tf.ConfigPath(), []byte(body), 0644); err != nil {
		return "", fmt.Errorf("failed to write config: %w", err)
	}
	return workspace, nil
}

// ConfigPath is the workspace config file
func (tf *TUITestFramework) ConfigPath() string {
	return filepath.Join(tf.workspace, "config.toml")
}

// DownloadDir is where the app saves PDFs
func (tf *TUITestFramework) DownloadDir() string {
	return filepath.Join(tf.workspace, "downloads")
}
