package keepalive

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Pinger es la operación de liveness contra el storage.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Run hace ping periódico a la base para que el hosting no suspenda la
// instancia por inactividad. Un ping fallido solo loguea; el próximo tick
// reintenta. Corre hasta que ctx se cancela.
func Run(ctx context.Context, pinger Pinger, interval time.Duration, logger *zap.Logger) {
	if interval <= 0 {
		interval = 15 * time.Minute
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			err := pinger.Ping(pingCtx)
			cancel()
			if err != nil {
				logger.Warn("keep-alive ping failed", zap.Error(err))
				continue
			}
			logger.Debug("keep-alive ping ok")
		}
	}
}
