package prefabs

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Catalog is the tuning data for every entity type, loaded together so a
// level never runs with half-updated specs.
type Catalog struct {
	Player        PlayerSpec
	Goomba        WalkerSpec
	Mushroom      WalkerSpec
	FireBar       FireBarSpec
	QuestionBlock BlockSpec
}

// Files lists the spec files a catalog is built from.
var Files = []string{"player.yaml", "goomba.yaml", "mushroom.yaml", "firebar.yaml", "question_block.yaml"}

func LoadCatalog() (*Catalog, error) {
	var (
		c Catalog
		g errgroup.Group
	)
	g.Go(func() (err error) { c.Player, err = LoadSpec[PlayerSpec]("player.yaml"); return })
	g.Go(func() (err error) { c.Goomba, err = LoadSpec[WalkerSpec]("goomba.yaml"); return })
	g.Go(func() (err error) { c.Mushroom, err = LoadSpec[WalkerSpec]("mushroom.yaml"); return })
	g.Go(func() (err error) { c.FireBar, err = LoadSpec[FireBarSpec]("firebar.yaml"); return })
	g.Go(func() (err error) { c.QuestionBlock, err = LoadSpec[BlockSpec]("question_block.yaml"); return })
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// MustLoadCatalog loads the catalog and panics on failure. The embedded
// specs always load, so this only fails on a broken on-disk override.
func MustLoadCatalog() *Catalog {
	c, err := LoadCatalog()
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) Validate() error {
	sizes := map[string]SizeSpec{
		"player.small":  c.Player.Small,
		"player.big":    c.Player.Big,
		"goomba.size":   c.Goomba.Size,
		"mushroom.size": c.Mushroom.Size,
	}
	for name, s := range sizes {
		if s.Width <= 0 || s.Height <= 0 {
			return fmt.Errorf("prefabs: %s %dx%d must be positive", name, s.Width, s.Height)
		}
	}
	if c.FireBar.Links < 1 || c.FireBar.LinkSize < 1 {
		return fmt.Errorf("prefabs: firebar needs links (%d) and a link size (%d)", c.FireBar.Links, c.FireBar.LinkSize)
	}
	return nil
}
