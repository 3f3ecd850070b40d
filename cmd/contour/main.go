package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/esimov/contour"
	"github.com/esimov/contour/utils"
	"golang.org/x/term"
)

// Supported heightmap files.
var extensions = []string{".jpg", ".jpeg", ".png", ".bmp", ".tif", ".tiff", ".webp"}

type options struct {
	source      string
	destination string
	configPath  string
	format      string
	preview     bool
	verbose     bool
}

func main() {
	p := contour.NewProcessor()
	opts := &options{}
	fs := newFlagSet(p, opts)
	args := os.Args[1:]
	if err := fs.Parse(args); err != nil {
		os.Exit(2)
	}

	if len(opts.destination) == 0 {
		log.Fatal("Usage: contour [-in heightmap.png|dir|url] -out out.png [-config params.json]")
	}
	if opts.configPath != "" {
		cfg, err := contour.LoadConfig(opts.configPath)
		if err != nil {
			log.Fatalf("Unable to load config: %v", err)
		}
		cfg.Apply(p)
		// Parse again so that flags given on the command line win.
		if err := fs.Parse(args); err != nil {
			os.Exit(2)
		}
	}
	if !opts.verbose {
		contour.SetLogger(nil)
	}

	toProcess, err := collect(opts)
	if err != nil {
		log.Fatal(err)
	}

	interactive := term.IsTerminal(int(os.Stderr.Fd()))
	for _, job := range toProcess {
		if err := run(p, job, opts, interactive); err != nil {
			fmt.Fprintf(os.Stderr, "%s %s: %v\n", utils.ErrorStyle.Render("Error generating contours"), job.in, err)
		}
	}
}

func newFlagSet(p *contour.Processor, opts *options) *flag.FlagSet {
	fs := flag.NewFlagSet("contour", flag.ContinueOnError)
	fs.StringVar(&opts.source, "in", "", "Heightmap image, directory or URL (noise field when empty)")
	fs.StringVar(&opts.destination, "out", "", "Destination file or directory")
	fs.StringVar(&opts.configPath, "config", "", "JSON parameter file")
	fs.StringVar(&opts.format, "format", ".png", "Output extension for directory batches (.png or .svg)")
	fs.BoolVar(&opts.preview, "preview", false, "Print a braille preview to the terminal")
	fs.BoolVar(&opts.verbose, "v", false, "Verbose logging")

	fs.IntVar(&p.Width, "width", p.Width, "Canvas width")
	fs.IntVar(&p.Height, "height", p.Height, "Canvas height")
	fs.IntVar(&p.LayerCount, "layers", p.LayerCount, "Number of isoline layers")
	fs.Float64Var(&p.EdgeLow, "low", p.EdgeLow, "Lowest threshold")
	fs.Float64Var(&p.EdgeHigh, "high", p.EdgeHigh, "Highest threshold")
	fs.Float64Var(&p.Inset, "inset", p.Inset, "Frame inset as a fraction of the shorter side")
	fs.BoolVar(&p.FixedAspect, "square", p.FixedAspect, "Square up the frame")
	fs.BoolVar(&p.Mask, "mask", p.Mask, "Fade the field out towards the frame border")
	fs.Float64Var(&p.Rounding, "rounding", p.Rounding, "Corner rounding of the mask")
	fs.Float64Var(&p.Easing, "easing", p.Easing, "Steepness of the mask fade")
	fs.Float64Var(&p.NoiseScaleX, "scalex", p.NoiseScaleX, "Horizontal noise scale")
	fs.Float64Var(&p.NoiseScaleY, "scaley", p.NoiseScaleY, "Vertical noise scale")
	fs.Float64Var(&p.NoiseVariant, "variant", p.NoiseVariant, "Noise variant")
	fs.Int64Var(&p.Seed, "seed", p.Seed, "Noise seed")
	fs.IntVar(&p.Blur, "blur", p.Blur, "Heightmap blur radius")
	fs.IntVar(&p.Resolution, "res", p.Resolution, "Grid resolution (columns)")
	fs.BoolVar(&p.Interpolate, "interpolate", p.Interpolate, "Interpolate crossing positions")
	fs.BoolVar(&p.EvenSpacing, "even", p.EvenSpacing, "Respace polyline points evenly")
	fs.Float64Var(&p.SplineTension, "tension", p.SplineTension, "Spline tension")
	fs.Float64Var(&p.LineWidth, "stroke", p.LineWidth, "Stroke width")
	fs.BoolVar(&p.GridLayer, "grid", p.GridLayer, "Draw the sampling grid")
	return fs
}

type job struct {
	in, out string
}

// collect resolves the source and destination into processing jobs.
func collect(opts *options) ([]job, error) {
	if opts.source == "" || isURL(opts.source) {
		return []job{{in: opts.source, out: opts.destination}}, nil
	}

	fi, err := os.Stat(opts.source)
	if err != nil {
		return nil, fmt.Errorf("unable to open source: %w", err)
	}
	if fi.Mode().IsRegular() {
		return []job{{in: opts.source, out: opts.destination}}, nil
	}

	dst, err := os.Stat(opts.destination)
	if err != nil {
		return nil, fmt.Errorf("unable to get dir stats: %w", err)
	}
	if !dst.IsDir() {
		return nil, fmt.Errorf("please specify a directory as destination")
	}
	entries, err := os.ReadDir(opts.source)
	if err != nil {
		return nil, fmt.Errorf("unable to read dir: %w", err)
	}

	var jobs []job
	for _, e := range entries {
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if e.IsDir() || !supported(ext) {
			continue
		}
		name := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		jobs = append(jobs, job{
			in:  filepath.Join(opts.source, e.Name()),
			out: filepath.Join(opts.destination, name+opts.format),
		})
	}
	return jobs, nil
}

func run(p *contour.Processor, j job, opts *options, interactive bool) error {
	var src io.Reader
	switch {
	case j.in == "":
	case isURL(j.in):
		f, err := utils.DownloadImage(j.in)
		if err != nil {
			return err
		}
		defer os.Remove(f.Name())
		defer f.Close()
		src = f
	default:
		f, err := os.Open(j.in)
		if err != nil {
			return fmt.Errorf("unable to open source file: %w", err)
		}
		defer f.Close()
		src = f
	}

	var s *utils.Spinner
	if interactive {
		s = utils.NewSpinner(os.Stderr, 100*time.Millisecond)
		s.Start("Generating contours...")
	}
	start := time.Now()
	_, res, err := p.Process(src, j.out)
	if s != nil {
		s.Stop()
	}
	if err != nil {
		return err
	}

	var polylines int
	for _, l := range res.Layers {
		polylines += len(l)
	}
	fmt.Printf("Generated in: %s\n", utils.SuccessStyle.Render(utils.FormatTime(time.Since(start))))
	fmt.Printf("Total number of %s polylines over %s layers on a %s grid\n",
		utils.AccentStyle.Render(fmt.Sprint(polylines)),
		utils.AccentStyle.Render(fmt.Sprint(len(res.Thresholds))),
		utils.AccentStyle.Render(fmt.Sprintf("%dx%d", res.Cols, res.Rows)),
	)
	fmt.Printf("Saved as: %s %s\n\n", utils.DimStyle.Render(j.out), utils.SuccessStyle.Render("✓"))

	if opts.preview {
		pv := &contour.Preview{Cols: 80, Title: filepath.Base(j.out)}
		if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 8 {
			// Leave room for the border and padding.
			pv.Cols = width - 4
		}
		return pv.Draw(os.Stdout, res)
	}
	return nil
}

func supported(ext string) bool {
	for _, e := range extensions {
		if e == ext {
			return true
		}
	}
	return false
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
