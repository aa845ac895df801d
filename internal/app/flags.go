package app

import "flag"

// Config represents the command-line parameters for the preview window.
type Config struct {
	View    string
	Scale   int
	TPS     int
	Seed    int64
	Palette string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{View: "clouds", Scale: 3, TPS: 30, Seed: 42, Palette: "terrain"}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.View, "view", c.View, "view to show")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the permutation table")
	fs.StringVar(&c.Palette, "palette", c.Palette, "palette: gray, terrain or clouds")
}
