package worker

// alerta_worker.go
// Procesa los jobs de QueueAlertas: envia por SMTP un aviso al encargado
// cuando un producto queda por debajo de su minimo.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Hjanner/2MS/internal/infra"
	"github.com/rs/zerolog/log"
)

// AlertaWorker envia los avisos de stock bajo.
type AlertaWorker struct {
	mailer       *infra.Mailer
	destinatario string
}

func NewAlertaWorker(mailer *infra.Mailer, destinatario string) *AlertaWorker {
	return &AlertaWorker{mailer: mailer, destinatario: destinatario}
}

func (w *AlertaWorker) Process(_ context.Context, raw json.RawMessage) {
	var payload AlertaStockPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("alerta_worker: invalid payload")
		return
	}
	if w.destinatario == "" {
		log.Warn().Msg("alerta_worker: ALERTAS_EMAIL no configurado, alerta descartada")
		return
	}

	subject := fmt.Sprintf("Stock bajo: %s", payload.CodProducto)
	body := fmt.Sprintf(
		"El producto %s quedo con %d unidades (minimo %d). Reponer inventario.",
		payload.CodProducto, payload.CantActual, payload.CantMin,
	)
	if err := w.mailer.SendAlertaStock(w.destinatario, subject, body); err != nil {
		log.Error().Err(err).Str("cod_producto", payload.CodProducto).Msg("alerta_worker: fallo el envio")
		return
	}
	log.Info().Str("cod_producto", payload.CodProducto).Int("cant_actual", payload.CantActual).Msg("alerta_worker: alerta enviada")
}
