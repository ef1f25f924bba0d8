package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/unkn0wn-root/roman"
	asynchook "github.com/unkn0wn-root/roman/hooks/async"
	"github.com/unkn0wn-root/roman/internal/config"
	logrusadapter "github.com/unkn0wn-root/roman/log/logrus"
	slogadapter "github.com/unkn0wn-root/roman/log/slog"
	zapadapter "github.com/unkn0wn-root/roman/log/zap"
	"github.com/unkn0wn-root/roman/memo"
	pr "github.com/unkn0wn-root/roman/provider"
	"github.com/unkn0wn-root/roman/provider/bigcache"
	"github.com/unkn0wn-root/roman/provider/redis"
	"github.com/unkn0wn-root/roman/provider/ristretto"
)

const namespace = "roman:cli"

type app struct {
	log   *zap.Logger
	style roman.Style
	conv  memo.Converter
	hooks *asynchook.Hooks
}

func newApp(cfg *config.Config, logOut io.Writer) (*app, error) {
	// zap and the memo adapter share one locked writer
	out := zapcore.Lock(zapcore.AddSync(logOut))
	log, err := newLogger(cfg.Log, out)
	if err != nil {
		return nil, err
	}
	style, err := roman.ParseStyle(cfg.Output.Style)
	if err != nil {
		return nil, err
	}

	var p pr.Provider
	if cfg.Cache.Enabled {
		if p, err = newProvider(cfg.Cache); err != nil {
			return nil, err
		}
	}

	ml := memoLogger(cfg.Log, log, out)
	hooks := asynchook.New(memo.LogHooks{L: ml}, 1, 256)
	conv, err := memo.New(memo.Options{
		Namespace:     namespace,
		Provider:      p,
		Logger:        ml,
		Hooks:         hooks,
		ParseTTL:      cfg.Cache.TTL,
		FormatTTL:     cfg.Cache.TTL,
		CacheFailures: true,
		Disabled:      !cfg.Cache.Enabled,
	})
	if err != nil {
		hooks.Close()
		if p != nil {
			_ = p.Close(context.Background())
		}
		return nil, err
	}

	log.Debug("ready",
		zap.String("provider", cfg.Cache.Provider),
		zap.Bool("cache", conv.Enabled()),
		zap.Stringer("style", style))
	return &app{log: log, style: style, conv: conv, hooks: hooks}, nil
}

func (a *app) close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.conv.Close(ctx); err != nil {
		a.log.Warn("close provider", zap.Error(err))
	}
	a.hooks.Close()
	if n := a.hooks.Dropped(); n > 0 {
		a.log.Debug("hook events dropped", zap.Uint64("count", n))
	}
	_ = a.log.Sync()
}

func newLogger(cfg config.LogConfig, w io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("log.level: %w", err)
	}
	var enc zapcore.Encoder
	if cfg.Format == "json" {
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		enc = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	}
	core := zapcore.NewCore(enc, zapcore.AddSync(w), lvl)
	return zap.New(core).Named("roman"), nil
}

// memoLogger picks the adapter that carries memo events. The CLI's own
// messages always go through zap.
func memoLogger(cfg config.LogConfig, zl *zap.Logger, w io.Writer) memo.Logger {
	switch cfg.Backend {
	case "logrus":
		l := logrus.New()
		l.SetOutput(w)
		if lvl, err := logrus.ParseLevel(cfg.Level); err == nil {
			l.SetLevel(lvl)
		}
		if cfg.Format == "json" {
			l.SetFormatter(&logrus.JSONFormatter{})
		}
		return logrusadapter.LogrusLogger{E: logrus.NewEntry(l).WithField("logger", "roman.memo")}
	case "slog":
		var lvl slog.Level
		_ = lvl.UnmarshalText([]byte(cfg.Level))
		opts := &slog.HandlerOptions{Level: lvl}
		var h slog.Handler = slog.NewTextHandler(w, opts)
		if cfg.Format == "json" {
			h = slog.NewJSONHandler(w, opts)
		}
		return slogadapter.Logger{L: slog.New(h).With("logger", "roman.memo")}
	default:
		return zapadapter.ZapLogger{L: zl.Named("memo")}
	}
}

func newProvider(cfg config.CacheConfig) (pr.Provider, error) {
	switch cfg.Provider {
	case "ristretto":
		return ristretto.New(ristretto.DefaultConfig())
	case "bigcache":
		bc := bigcache.DefaultConfig()
		if cfg.TTL > 0 {
			bc.LifeWindow = cfg.TTL
		}
		return bigcache.New(bc)
	case "redis":
		return redis.New(redis.Config{
			Client:      goredis.NewClient(&goredis.Options{Addr: cfg.RedisAddr}),
			KeyPrefix:   "roman:",
			CloseClient: true,
		})
	default:
		return nil, fmt.Errorf("unknown cache provider %q", cfg.Provider)
	}
}
