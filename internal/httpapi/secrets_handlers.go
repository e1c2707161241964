package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync/atomic"

	"techready-engine/internal/config"
	"techready-engine/internal/secrets"
)

type SecretsHandler struct {
	CfgVal *atomic.Value // stores config.Config
}

type setAIKeyReq struct {
	Provider string `json:"provider,omitempty"`
	Key      string `json:"key"`
}

// SetAIKey stores an AI-provider API key in the OS keychain. The provider
// defaults to the configured one so the UI can send just the key.
func (h SecretsHandler) SetAIKey(w http.ResponseWriter, r *http.Request) {
	var req setAIKeyReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	provider := strings.TrimSpace(req.Provider)
	if provider == "" {
		cfg := h.CfgVal.Load().(config.Config)
		provider = cfg.AI.Provider
	}

	if err := secrets.SetAIKey(provider, req.Key); err != nil {
		writeErr(w, http.StatusBadRequest, "failed to store key: "+err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
