package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/vedantwpatil/Render-Quality/internal/config"
	"github.com/vedantwpatil/Render-Quality/internal/quality"
	"github.com/vedantwpatil/Render-Quality/internal/source"
)

type Application struct {
	config *config.Config
	out    io.Writer
	probe  func(path string) (source.Info, error)
}

func NewApplication(out io.Writer) *Application {
	cfg := config.NewConfig()
	cfg.LoadEnv(os.LookupEnv)
	return &Application{
		config: cfg,
		out:    out,
		probe:  source.Probe,
	}
}

// Run parses args on top of the environment-derived config and prints the
// effective quality. Only flags that were set on the command line count as overrides.
func (app *Application) Run(args []string) error {
	fs := flag.NewFlagSet("quality", flag.ContinueOnError)
	fs.SetOutput(app.out)

	preset := fs.String("preset", app.config.Quality.Preset, "quality preset: "+strings.Join(quality.Names(), ", "))
	workFactor := fs.String("work-factor", "", "work factor override between 0 and 1")
	dithering := fs.Bool("dithering", false, "dithering override")
	fps := fs.String("fps", "", "frame rate override between 1 and 120")
	sourcePath := fs.String("source", app.config.Source.Path, "video whose native frame rate is used as the fps override")
	list := fs.Bool("list", false, "print the preset table and exit")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *list {
		app.listPresets()
		return nil
	}

	app.config.Quality.Preset = *preset
	app.config.Source.Path = *sourcePath
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "work-factor":
			app.config.Quality.WorkFactor = workFactor
		case "dithering":
			app.config.Quality.Dithering = dithering
		case "fps":
			app.config.Quality.FrameRate = fps
		}
	})

	if err := app.applySource(); err != nil {
		return err
	}

	cfg, report := app.config.ResolveQuality()
	if err := report.Err(); err != nil {
		for _, line := range strings.Split(err.Error(), "\n") {
			log.Printf("[Quality] WARNING: %s", line)
		}
	}

	fmt.Fprintf(app.out, "preset:        %s\n", report.Preset)
	fmt.Fprintf(app.out, "work factor:   %.2f\n", cfg.WorkFactor)
	fmt.Fprintf(app.out, "dithering:     %t\n", cfg.EnableDithering)
	fmt.Fprintf(app.out, "preprocessing: %t\n", cfg.EnablePreprocessing)
	fmt.Fprintf(app.out, "optimizations: %t\n", cfg.EnableOptimizations)
	fmt.Fprintf(app.out, "frame rate:    %d fps (%.4fs per frame)\n", cfg.FrameRate, cfg.FrameTime())
	return nil
}

// applySource uses the source video's frame rate unless an fps override was given.
func (app *Application) applySource() error {
	if app.config.Source.Path == "" {
		return nil
	}
	if app.config.Quality.FrameRate != nil {
		log.Printf("[Source] fps override set, not probing %s", app.config.Source.Path)
		return nil
	}

	info, err := app.probe(app.config.Source.Path)
	if err != nil {
		return fmt.Errorf("failed to probe source: %w", err)
	}
	log.Printf("[Source] %s: %dx%d %.3f fps %s", info.Path, info.Width, info.Height, info.FPS, info.Codec)

	fps := info.FrameRateOverride()
	app.config.Quality.FrameRate = &fps
	return nil
}

func (app *Application) listPresets() {
	for _, name := range quality.Names() {
		cfg, _ := quality.Lookup(name)
		fmt.Fprintf(app.out, "%-7s %s\n", name, cfg)
	}
}

func main() {
	app := NewApplication(os.Stdout)
	if err := app.Run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("Application error: %v", err)
	}
}
