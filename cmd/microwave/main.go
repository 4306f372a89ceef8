// Command microwave runs the oven controller against a configured event
// source: the keyboard, a replay script or an MQTT control topic.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/enetx/g"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/enetx/microwave"
	"github.com/enetx/microwave/config"
	"github.com/enetx/microwave/input"
	"github.com/enetx/microwave/logging"
	"github.com/enetx/microwave/metrics"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, "microwave:", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log, err := logging.New(logging.Options{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		OutputPath: cfg.Logger.OutputPath,
	})
	if err != nil {
		return err
	}
	defer log.Sync()

	var sink microwave.Sink = microwave.NewConsoleSink(os.Stdout)
	if cfg.Metrics.Enabled {
		sink = metrics.InstrumentSink(sink)
	}

	machine := microwave.New(microwave.Options{
		Sink:   sink,
		Logger: log,
	})

	machine.
		AddState(microwave.IdleState{}).
		AddState(microwave.CookingState{Throttle: cfg.Cooking.HeartbeatInterval}).
		AddState(microwave.PausedState{})

	machine.OnTransition(func(from, to g.String) {
		log.Info("transition",
			zap.String("from", from.Std()),
			zap.String("to", to.Std()),
		)
	})

	if cfg.Metrics.Enabled {
		machine.OnTransition(metrics.TransitionHook())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	source, cleanup, err := buildSource(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	var controller microwave.Controller = machine

	if cfg.Metrics.Enabled {
		sync := microwave.NewSync(machine)
		controller = sync

		go serveAdmin(ctx, cfg.Metrics.ListenAddr, sync, log)
	}

	if err := controller.GoToState(microwave.StateIdle); err != nil {
		return err
	}

	opts := microwave.DriverOptions{
		Logger:       log,
		PollInterval: cfg.Driver.PollInterval,
	}

	if cfg.Metrics.Enabled {
		opts.OnEvent = metrics.ObserveEvent
	}

	return microwave.NewDriver(controller, source, opts).Run(ctx)
}

func buildSource(ctx context.Context, cfg *config.Config, log *zap.Logger) (microwave.Source, func(), error) {
	switch cfg.Input.Mode {
	case config.ModeScript:
		return input.NewScripted(g.String(cfg.Input.Script)), func() {}, nil

	case config.ModeMQTT:
		source, err := input.NewMQTT(input.MQTTConfig{
			BrokerURL: cfg.Input.MQTT.BrokerURL,
			Topic:     cfg.Input.MQTT.Topic,
			ClientID:  cfg.Input.MQTT.ClientID,
			KeepAlive: cfg.Input.MQTT.KeepAlive,
		}, log)
		if err != nil {
			return nil, nil, err
		}

		if err := source.Connect(ctx); err != nil {
			return nil, nil, err
		}

		cleanup := func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()

			if err := source.Disconnect(disconnectCtx); err != nil {
				log.Warn("mqtt disconnect", zap.Error(err))
			}
		}

		return source, cleanup, nil

	default:
		return input.NewReader(os.Stdin), func() {}, nil
	}
}

// serveAdmin exposes the Prometheus registry together with a JSON snapshot
// of the controller and a Graphviz rendering of observed transitions.
func serveAdmin(ctx context.Context, addr string, machine *microwave.SyncMachine, log *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("/state", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(machine); err != nil {
			log.Warn("state snapshot", zap.Error(err))
		}
	})

	mux.HandleFunc("/diagram", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/vnd.graphviz")
		fmt.Fprint(w, machine.ToDOT().Std())
	})

	server := &http.Server{Addr: addr, Handler: mux}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()

		server.Shutdown(shutdownCtx)
	}()

	log.Info("admin endpoint listening", zap.String("addr", addr))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Warn("admin endpoint", zap.Error(err))
	}
}
