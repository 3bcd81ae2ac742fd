package events

import (
	"context"
	"encoding/json"
	"log/slog"

	"sessionbook/internal/engine"
	"sessionbook/internal/pkg/config"
	"sessionbook/internal/pkg/errs"

	"github.com/nats-io/nats.go"
)

// Publisher mirrors committed engine transitions onto NATS so the external
// coordination layer can react without polling. Like the journal it is a
// best-effort sink; a nil connection degrades to a no-op.

const subjectPrefix = "sessionbook."

func Connect(cfg config.NATSConfig) (*nats.Conn, func(), error) {
	if cfg.URL == "" {
		return nil, func() {}, nil
	}
	conn, err := nats.Connect(cfg.URL,
		nats.Name(cfg.Name),
		nats.Timeout(cfg.Timeout),
	)
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to connect to NATS")
	}
	cleanup := func() { conn.Close() }
	return conn, cleanup, nil
}

type Publisher struct {
	conn *nats.Conn
	log  *slog.Logger
}

func New(conn *nats.Conn, logger *slog.Logger) *Publisher {
	return &Publisher{conn: conn, log: logger}
}

func (p *Publisher) Record(_ context.Context, ev engine.Event) error {
	if p.conn == nil {
		return nil
	}
	data, err := json.Marshal(ev)
	if err != nil {
		return errs.Wrap(err, "failed to marshal event")
	}
	if err := p.conn.Publish(subjectPrefix+ev.Kind, data); err != nil {
		return errs.Wrap(err, "failed to publish event")
	}
	return nil
}
