// shipgrid is a CLI utility for inspecting ship save archives and
// converting them into renderable grid models.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/shipgrid/internal/config"
	"github.com/Faultbox/shipgrid/internal/logger"
	"github.com/Faultbox/shipgrid/pkg/catalog"
	"github.com/Faultbox/shipgrid/pkg/convert"
	"github.com/Faultbox/shipgrid/pkg/grid"
	"github.com/Faultbox/shipgrid/pkg/save"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(logger.DefaultOptions(cfg.Logging.Level, cfg.Logging.File)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	args := flag.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	command := args[0]
	rest := args[1:]

	switch command {
	case "info":
		cmdInfo(rest)
	case "ships", "ls":
		cmdShips(rest)
	case "convert":
		cmdConvert(cfg, rest)
	case "perimeter":
		cmdPerimeter(cfg, rest)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`shipgrid - ship save archive conversion utility

Usage:
  shipgrid [flags] <command> [options]

Commands:
  info <save>                        Show archive information
  ships <save>                       List ships in the archive
  convert <save> <ship-id>           Convert one ship to a grid model
  perimeter <save> <ship-id>         Convert and report hull geometry

Flags:
  -config <file>    Config file path
  -catalog <file>   Structure catalog YAML
  -debug            Enable debug logging
  -log-file <file>  Write logs to this file

Examples:
  shipgrid info autosave.xml
  shipgrid ships autosave.xml.gz
  shipgrid -catalog structures.yaml convert autosave.xml AB12 -json model.json`)
}

func cmdInfo(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: shipgrid info <save>")
		os.Exit(1)
	}

	doc := mustParse(args[0])

	fmt.Printf("Archive:      %s\n", args[0])
	if doc.Version != "" {
		fmt.Printf("Version:      %s\n", doc.Version)
	}
	fmt.Printf("Ships:        %d\n", doc.ShipCount())
	fmt.Printf("Player ships: %d\n", len(doc.PlayerShips()))

	for _, meta := range doc.Ships() {
		n, _ := doc.ElementCount(meta.ID)
		fmt.Printf("  %-10s %-20s %dx%d  %d elements\n", meta.ID, meta.Name, meta.Width, meta.Height, n)
	}
}

func cmdShips(args []string) {
	fs := flag.NewFlagSet("ships", flag.ExitOnError)
	playerOnly := fs.Bool("player", false, "List only player-owned ships")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: shipgrid ships <save>")
		os.Exit(1)
	}

	doc := mustParse(fs.Arg(0))

	ships := doc.Ships()
	if *playerOnly {
		ships = doc.PlayerShips()
	}

	for _, meta := range ships {
		owner := "npc"
		if meta.PlayerOwned {
			owner = "player"
		}
		fmt.Printf("%-10s %-20s %3dx%-3d %s\n", meta.ID, meta.Name, meta.Width, meta.Height, owner)
	}

	if len(ships) == 0 {
		fmt.Fprintln(os.Stderr, "No ships found")
	}
}

func cmdConvert(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	jsonOut := fs.String("json", "", "Write the grid model as JSON to this file ('-' for stdout)")
	fs.Parse(args)

	if fs.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "Usage: shipgrid convert <save> <ship-id> [-json out.json]")
		os.Exit(1)
	}

	res := runConversion(cfg, fs.Arg(0), fs.Arg(1))

	fmt.Printf("Grid:       %s (%dx%d)\n", res.Preset.Label, res.GridWidth, res.GridHeight)
	fmt.Printf("Hull tiles: %d\n", res.Stats.HullTiles)
	fmt.Printf("Structures: %d\n", res.Stats.Structures)
	fmt.Printf("Elements:   %d\n", res.Stats.Elements)
	if res.Stats.UnknownCodes > 0 {
		fmt.Printf("Unknown:    %d distinct type code(s)\n", res.Stats.UnknownCodes)
	}

	if *jsonOut != "" {
		if err := writeModelJSON(res, *jsonOut); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing JSON: %v\n", err)
			os.Exit(1)
		}
	}
}

func cmdPerimeter(cfg *config.Config, args []string) {
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: shipgrid perimeter <save> <ship-id>")
		os.Exit(1)
	}

	res := runConversion(cfg, args[0], args[1])

	edges := grid.PerimeterEdges(res.Hull)
	inner := 0
	for _, p := range res.Hull.Positions() {
		if grid.IsInnerHullTile(res.Hull, p.X, p.Y) {
			inner++
		}
	}

	fmt.Printf("Hull tiles:      %d\n", res.Hull.Len())
	fmt.Printf("Perimeter edges: %d\n", len(edges))
	fmt.Printf("Inner tiles:     %d\n", inner)
}

// runConversion loads the archive and catalog, converts the ship and
// logs any warnings. Exits on anything fatal.
func runConversion(cfg *config.Config, savePath, shipID string) *convert.Result {
	doc := mustParse(savePath)

	cat, err := catalog.LoadFile(cfg.Data.CatalogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rules := convert.DefaultRules()
	rules.EmptyTypeCode = cfg.Convert.EmptyTypeCode
	if len(cfg.Convert.HullTypeCodes) > 0 {
		rules.HullTypeCodes = cfg.Convert.HullTypeCodes
	}

	res, ok := convert.ConvertShip(doc, shipID, cat, rules)
	if !ok {
		fmt.Fprintf(os.Stderr, "Ship not found: %s\n", shipID)
		os.Exit(1)
	}

	for _, w := range res.Warnings {
		logger.Warn(w.Message,
			zap.String("kind", string(w.Kind)),
			zap.Int("count", w.Count))
	}
	logger.Debug("conversion finished",
		zap.String("ship", shipID),
		zap.Int("hull_tiles", res.Stats.HullTiles),
		zap.Int("structures", res.Stats.Structures))

	return res
}

func mustParse(path string) *save.Document {
	doc, err := save.ParseFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return doc
}

// JSON shapes for the -json output, consumed by the rendering layer.
type jsonModel struct {
	Preset     string          `json:"preset"`
	Width      int             `json:"width"`
	Height     int             `json:"height"`
	Hull       [][2]int        `json:"hull"`
	Structures []jsonStructure `json:"structures"`
	Warnings   []jsonWarning   `json:"warnings,omitempty"`
}

type jsonStructure struct {
	ID       string `json:"id"`
	TypeCode int    `json:"type"`
	Category string `json:"category"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Rotation string `json:"rotation"`
	Layer    string `json:"layer"`
	Group    string `json:"group,omitempty"`
}

type jsonWarning struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Count   int    `json:"count,omitempty"`
}

func writeModelJSON(res *convert.Result, path string) error {
	model := jsonModel{
		Preset: res.Preset.Label,
		Width:  res.GridWidth,
		Height: res.GridHeight,
	}
	for _, p := range res.Hull.Positions() {
		model.Hull = append(model.Hull, [2]int{p.X, p.Y})
	}
	for _, s := range res.Structures {
		model.Structures = append(model.Structures, jsonStructure{
			ID:       s.ID,
			TypeCode: s.TypeCode,
			Category: s.Category,
			X:        s.Pos.X,
			Y:        s.Pos.Y,
			Rotation: s.Rot.String(),
			Layer:    s.Layer.String(),
			Group:    s.SourceGroup,
		})
	}
	for _, w := range res.Warnings {
		model.Warnings = append(model.Warnings, jsonWarning{
			Kind:    string(w.Kind),
			Message: w.Message,
			Count:   w.Count,
		})
	}

	data, err := json.MarshalIndent(model, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if path == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0644)
}
