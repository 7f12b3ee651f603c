package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"regexp"

	"github.com/kefmc/tournament-engine/internal/api/apierr"
	"github.com/kefmc/tournament-engine/internal/factory"
)

// DeviceHeader identifies the device whose state a request operates on
const DeviceHeader = "X-Device-ID"

var deviceIDPattern = regexp.MustCompile(`^[A-Za-z0-9._-]{1,64}$`)

type engineContextKey struct{}

// EngineSource resolves the engine for a device
type EngineSource interface {
	Engine(device string) (*factory.Engine, error)
}

// Device resolves the engine for the X-Device-ID header and holds its lock
// for the rest of the request, so requests for one device run one at a time
func Device(engines EngineSource, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			device := r.Header.Get(DeviceHeader)
			if device == "" {
				device = factory.DefaultDevice
			}
			if !deviceIDPattern.MatchString(device) {
				apierr.WriteError(w, apierr.NewInvalidRequestError("invalid "+DeviceHeader+" header"))
				return
			}

			engine, err := engines.Engine(device)
			if err != nil {
				logger.ErrorContext(r.Context(), "resolving device engine",
					slog.String("device", device),
					slog.Any("error", err),
				)
				apierr.WriteError(w, err)
				return
			}

			_ = engine.Do(func() error {
				ctx := context.WithValue(r.Context(), engineContextKey{}, engine)
				next.ServeHTTP(w, r.WithContext(ctx))
				return nil
			})
		})
	}
}

// GetEngine returns the device engine from the request context
func GetEngine(ctx context.Context) *factory.Engine {
	engine, _ := ctx.Value(engineContextKey{}).(*factory.Engine)
	return engine
}

// MustGetEngine returns the device engine or panics
func MustGetEngine(ctx context.Context) *factory.Engine {
	engine := GetEngine(ctx)
	if engine == nil {
		panic("no engine in context - device middleware not applied?")
	}
	return engine
}
