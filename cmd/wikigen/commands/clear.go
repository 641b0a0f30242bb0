package commands

import "git.home.luguber.info/inful/wikigen/internal/builder"

// ClearCmd implements the 'clear' command.
type ClearCmd struct{}

func (c *ClearCmd) Run(_ *Global, root *CLI) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	return builder.New(cfg).Clear()
}
