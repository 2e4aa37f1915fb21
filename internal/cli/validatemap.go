package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/wg-forge/hextanks-client/game"
	"github.com/wg-forge/hextanks-client/sim"
)

// mapFixture is the YAML shape of an offline map fixture: the same content
// the server's ActionMap response carries, minus the wire envelope.
type mapFixture struct {
	Size    int                `yaml:"size"`
	Name    string             `yaml:"name"`
	Content map[string][]hexXY `yaml:"content"`
}

type hexXY struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	Z int `yaml:"z"`
}

func (h hexXY) toCube() game.Cube { return game.Cube{X: h.X, Y: h.Y, Z: h.Z} }

var validateMapCmd = &cobra.Command{
	Use:   "validate-map <file>",
	Short: "Load a YAML map fixture and report whether the bot planner can run on it",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidateMap,
}

func runValidateMap(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}

	var fixture mapFixture
	if err := yaml.Unmarshal(data, &fixture); err != nil {
		return fmt.Errorf("parse %s: %w", args[0], err)
	}

	content := game.MapContent{}
	for _, h := range fixture.Content["base"] {
		content.Base = append(content.Base, h.toCube())
	}
	for _, h := range fixture.Content["obstacle"] {
		content.Obstacle = append(content.Obstacle, h.toCube())
	}
	for _, h := range fixture.Content["catapult"] {
		content.Catapult = append(content.Catapult, h.toCube())
	}
	for _, h := range fixture.Content["light_repair"] {
		content.LightRepair = append(content.LightRepair, h.toCube())
	}
	for _, h := range fixture.Content["hard_repair"] {
		content.HardRepair = append(content.HardRepair, h.toCube())
	}

	m := game.NewMap(fixture.Size, fixture.Name, content)
	var bases, obstacles int
	m.NonEmpty(func(c game.Cube, kind game.HexKind) {
		switch kind {
		case game.Base:
			bases++
		case game.Obstacle:
			obstacles++
		}
	})
	if bases == 0 {
		return fmt.Errorf("map %q has no base hexes: the bot's flood-fill value map would be flat everywhere", fixture.Name)
	}

	world := sim.NewWorld(m)
	baseValues := sim.BuildBaseValueMap(world.Map, world.Map.Size())
	peak := 0.0
	m.NonEmpty(func(c game.Cube, kind game.HexKind) {
		if v := baseValues.ValueAt(c); v > peak {
			peak = v
		}
	})

	fmt.Printf("map %q: size %d, %d base hex(es), %d obstacle hex(es), peak base value %.2f\n",
		fixture.Name, fixture.Size, bases, obstacles, peak)
	fmt.Println("ok")
	return nil
}
