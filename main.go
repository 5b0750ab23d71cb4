package main

import (
	"context"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
	"github.com/milk9111/roomscroller/telemetry"
	"go.opentelemetry.io/otel/trace"
)

func main() {
	debug := flag.Bool("debug", false, "draw sensors and camera state")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	levelName := flag.String("level", "intro", "level name in levels/ (basename, .json optional)")
	tracing := flag.Bool("trace", false, "export room transition traces over OTLP/HTTP")
	watch := flag.Bool("watch", true, "hot reload prefabs/ from disk")
	flag.Parse()

	// OTEL_EXPORTER_OTLP_* may come from a local .env
	if err := godotenv.Load(); err != nil {
		log.Printf("env: .env not loaded: %v", err)
	}

	ctx := context.Background()
	tracer := telemetry.NoopTracer()
	if *tracing {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Printf("telemetry: setup failed, running without traces: %v", err)
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Printf("telemetry: shutdown: %v", err)
				}
			}()
			tracer = telemetry.Tracer("game")
		}
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("roomscroller")

	game, err := NewGame(ctx, Options{Level: *levelName, Debug: *debug, Watch: *watch, Tracer: tracer})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

// Options configures a Game.
type Options struct {
	Level  string
	Debug  bool
	Watch  bool
	Tracer trace.Tracer
}
