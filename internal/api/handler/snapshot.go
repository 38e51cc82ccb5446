package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

// SnapshotSyncer é o serviço que mantém o snapshot de faturamento em memória
type SnapshotSyncer interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// RefreshSnapshot dispara manualmente uma nova leitura do faturamento
func RefreshSnapshot(syncer SnapshotSyncer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RefreshSnapshot")

		syncer.TriggerManualSync()

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Atualização do snapshot iniciada com sucesso",
		})
	}
}

// GetSnapshotStatus retorna o estado da última atualização do snapshot
func GetSnapshotStatus(syncer SnapshotSyncer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, syncer.GetStatus())
	}
}
