// Command noisegen renders a noise view to PNG without opening a window. It
// can also save the permutation table for the seed or load one written by a
// previous run so another process reproduces exactly the same field.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"valnoise/internal/fields"
	_ "valnoise/internal/fields/clouds"
	_ "valnoise/internal/fields/density"
	_ "valnoise/internal/fields/plane"
	"valnoise/internal/render"
	"valnoise/internal/session"
)

type options struct {
	view      string
	width     int
	height    int
	freq      float64
	seed      int64
	steps     int
	palette   string
	out       string
	table     string
	saveTable string
}

func main() {
	var opts options
	flag.StringVar(&opts.view, "view", "plane", "view to render")
	flag.IntVar(&opts.width, "w", 256, "raster width")
	flag.IntVar(&opts.height, "h", 256, "raster height")
	flag.Float64Var(&opts.freq, "freq", 0, "sampling frequency (0 keeps the view default)")
	flag.Int64Var(&opts.seed, "seed", 42, "seed for the permutation table")
	flag.IntVar(&opts.steps, "steps", 0, "steps to advance before rendering")
	flag.StringVar(&opts.palette, "palette", "gray", "palette: gray, terrain or clouds")
	flag.StringVar(&opts.out, "out", "", "PNG output path (defaults to a session-named file)")
	flag.StringVar(&opts.table, "table", "", "load the permutation table from this file")
	flag.StringVar(&opts.saveTable, "save-table", "", "write the permutation table to this file")
	flag.Parse()

	if err := run(opts, os.Stdout); err != nil {
		log.Fatalf("noisegen: %v", err)
	}
}

func run(opts options, stdout io.Writer) error {
	sess, err := openSession(opts)
	if err != nil {
		return err
	}
	palette, err := render.ByName(opts.palette)
	if err != nil {
		return err
	}
	view, err := fields.New(opts.view, viewConfig(opts))
	if err != nil {
		return err
	}
	view.Reset(sess.Table())
	for i := 0; i < opts.steps; i++ {
		view.Step()
	}

	if opts.saveTable != "" {
		if err := writeFile(opts.saveTable, sess.WriteTable); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "table: %s\n", opts.saveTable)
	}

	out := opts.out
	if out == "" {
		out = sess.Filename(view.Name(), "png")
	}
	img := render.ToImage(view.Raster(), palette)
	if err := writeFile(out, func(w io.Writer) error { return render.WritePNG(w, img) }); err != nil {
		return err
	}
	lo, hi := view.Raster().MinMax()
	fmt.Fprintf(stdout, "%s: %dx%d seed=%d steps=%d range=[%.4f, %.4f]\n",
		out, view.Size().W, view.Size().H, sess.Seed(), opts.steps, lo, hi)
	return nil
}

func openSession(opts options) (*session.Session, error) {
	if opts.table == "" {
		return session.New(opts.seed), nil
	}
	f, err := os.Open(opts.table)
	if err != nil {
		return nil, fmt.Errorf("open table: %w", err)
	}
	defer f.Close()
	return session.Load(opts.seed, f)
}

func viewConfig(opts options) map[string]string {
	cfg := map[string]string{
		"w": strconv.Itoa(opts.width),
		"h": strconv.Itoa(opts.height),
	}
	if opts.freq > 0 {
		cfg["freq"] = strconv.FormatFloat(opts.freq, 'g', -1, 64)
	}
	return cfg
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
