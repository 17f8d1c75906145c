package engine

import "time"

// Builtin returns the registry of every engine mdtest knows about.
// kramdown's automatic heading IDs are disabled to match the reference output.
func Builtin(gfmToken string, timeout time.Duration) (*Registry, error) {
	gfm, err := NewGFM(gfmToken, timeout)
	if err != nil {
		return nil, err
	}

	return NewRegistry(
		gfm,
		NewGoldmark(),
		NewCommand("kramdown", "kramdown", timeout, "--no-auto-ids"),
		NewCommand("md2html", "md2html", timeout),
		NewCommand("multimarkdown", "multimarkdown", timeout),
		NewCommand("pandoc", "pandoc", timeout),
		NewCommand("redcarpet", "redcarpet", timeout),
	), nil
}
