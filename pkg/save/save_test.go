package save

import (
	"fmt"
	"strings"
	"testing"

	"github.com/Faultbox/shipgrid/pkg/grid"
)

// createTestArchive builds a minimal well-formed save archive from
// ship node bodies.
func createTestArchive(ships ...string) []byte {
	var b strings.Builder
	b.WriteString(`<shipfile version="0.17">`)
	for _, s := range ships {
		b.WriteString(s)
	}
	b.WriteString(`</shipfile>`)
	return []byte(b.String())
}

func shipNode(sid, name string, w, h int, owner string, derelict bool, tiles string) string {
	d := "0"
	if derelict {
		d = "1"
	}
	return fmt.Sprintf(`<ship sid=%q name=%q w="%d" h="%d" owner=%q derelict=%q>%s</ship>`,
		sid, name, w, h, owner, d, tiles)
}

func TestParse_ValidArchive(t *testing.T) {
	data := createTestArchive(
		shipNode("AB12", "Scout", 28, 28, "player", false,
			`<tile x="3" y="4" type="1422" rot="2"/>`),
	)

	doc, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if doc.Version != "0.17" {
		t.Errorf("expected version 0.17, got %s", doc.Version)
	}
	if doc.ShipCount() != 1 {
		t.Fatalf("expected 1 ship, got %d", doc.ShipCount())
	}

	meta := doc.Ships()[0]
	if meta.ID != "AB12" {
		t.Errorf("expected ship id AB12, got %s", meta.ID)
	}
	if meta.Name != "Scout" {
		t.Errorf("expected name Scout, got %s", meta.Name)
	}
	if meta.Width != 28 || meta.Height != 28 {
		t.Errorf("expected 28x28, got %dx%d", meta.Width, meta.Height)
	}
	if !meta.PlayerOwned {
		t.Error("expected ship to be player-owned")
	}
}

func TestParse_MalformedXML(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unclosed tag", `<shipfile><ship sid="A">`},
		{"plain text", `this is not xml`},
		{"mismatched tags", `<shipfile><ship></shipfile></ship>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error for malformed XML")
			}
		})
	}
}

func TestParse_EmptyArchive(t *testing.T) {
	doc, err := Parse(createTestArchive())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if doc.ShipCount() != 0 {
		t.Errorf("expected 0 ships, got %d", doc.ShipCount())
	}
	if len(doc.Ships()) != 0 {
		t.Errorf("expected empty ship list, got %v", doc.Ships())
	}
	if len(doc.PlayerShips()) != 0 {
		t.Errorf("expected empty player ship list, got %v", doc.PlayerShips())
	}
}

func TestParse_PlayerPartition(t *testing.T) {
	data := createTestArchive(
		shipNode("P1", "Home", 28, 28, "player", false, ""),
		shipNode("N1", "Trader", 16, 16, "npc", false, ""),
		shipNode("D1", "Wreck", 16, 16, "player", true, ""),
	)

	doc, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if doc.ShipCount() != 3 {
		t.Fatalf("expected 3 ships, got %d", doc.ShipCount())
	}

	players := doc.PlayerShips()
	if len(players) != 1 {
		t.Fatalf("expected 1 player ship, got %d", len(players))
	}
	if players[0].ID != "P1" {
		t.Errorf("expected player ship P1, got %s", players[0].ID)
	}

	// A player-flagged derelict is not clearly player-owned.
	meta, _, ok := doc.Ship("D1")
	if !ok {
		t.Fatal("derelict ship should still be in the document")
	}
	if meta.PlayerOwned {
		t.Error("derelict should not count as player-owned")
	}
}

func TestDocument_Ship(t *testing.T) {
	data := createTestArchive(
		shipNode("AB12", "Scout", 28, 28, "player", false,
			`<tile x="3" y="4" type="1" rot="0"/><tile x="4" y="4" type="2" rot="0"/>`),
	)
	doc, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	meta, elements, ok := doc.Ship("AB12")
	if !ok {
		t.Fatal("expected to find ship AB12")
	}
	if meta.ID != "AB12" {
		t.Errorf("expected id AB12, got %s", meta.ID)
	}
	if len(elements) != 2 {
		t.Fatalf("expected 2 elements, got %d", len(elements))
	}
	if elements[0].Pos != (grid.Position{X: 3, Y: 4}) {
		t.Errorf("unexpected first element position: %v", elements[0].Pos)
	}
	if elements[1].TypeCode != 2 {
		t.Errorf("expected type code 2, got %d", elements[1].TypeCode)
	}
}

func TestDocument_ShipNotFound(t *testing.T) {
	doc, err := Parse(createTestArchive(shipNode("AB12", "Scout", 28, 28, "player", false, "")))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	for _, id := range []string{"ZZ99", "", "abc;drop ships"} {
		if _, _, ok := doc.Ship(id); ok {
			t.Errorf("expected lookup of %q to fail", id)
		}
	}
}

func TestParse_MultiTileElement(t *testing.T) {
	data := createTestArchive(
		shipNode("AB12", "Scout", 28, 28, "player", false,
			`<tile x="6" y="5" type="1422" rot="1">
				<cell x="5" y="5"/><cell x="6" y="5"/><cell x="5" y="6"/><cell x="6" y="6"/>
			</tile>`),
	)
	doc, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	_, elements, ok := doc.Ship("AB12")
	if !ok {
		t.Fatal("ship not found")
	}
	// Cells attach to the owning element, they are not elements.
	if len(elements) != 1 {
		t.Fatalf("expected 1 element, got %d", len(elements))
	}

	el := elements[0]
	if !el.Multi {
		t.Error("expected multi-tile flag")
	}
	if len(el.Cells) != 4 {
		t.Fatalf("expected 4 cells, got %d", len(el.Cells))
	}
	if el.Rot != grid.Rot90 {
		t.Errorf("expected rotation 90, got %s", el.Rot)
	}
	if el.Cells[0] != (grid.Position{X: 5, Y: 5}) {
		t.Errorf("unexpected first cell: %v", el.Cells[0])
	}
}

func TestParse_LenientAttributes(t *testing.T) {
	data := createTestArchive(
		`<ship sid="AB12" name="Scout" w="abc" h="">` +
			`<tile x="oops" y="-2" type="" rot="9"/>` +
			`</ship>`,
	)
	doc, err := Parse(data)
	if err != nil {
		t.Fatalf("garbage attributes must not fail the parse: %v", err)
	}

	meta, elements, ok := doc.Ship("AB12")
	if !ok {
		t.Fatal("ship not found")
	}
	if meta.Width != 0 || meta.Height != 0 {
		t.Errorf("garbage dimensions should degrade to 0, got %dx%d", meta.Width, meta.Height)
	}
	if len(elements) != 1 {
		t.Fatalf("expected 1 element, got %d", len(elements))
	}
	if elements[0].Pos != (grid.Position{X: 0, Y: -2}) {
		t.Errorf("unexpected position: %v", elements[0].Pos)
	}
	if elements[0].Rot != grid.Rot90 {
		t.Errorf("rotation 9 should normalize to 90, got %s", elements[0].Rot)
	}
}

func TestParse_NegativeCoordinates(t *testing.T) {
	data := createTestArchive(
		shipNode("AB12", "Scout", 28, 28, "player", false,
			`<tile x="-7" y="-3" type="1" rot="0"/>`),
	)
	doc, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	_, elements, _ := doc.Ship("AB12")
	if elements[0].Pos != (grid.Position{X: -7, Y: -3}) {
		t.Errorf("expected (-7,-3), got %v", elements[0].Pos)
	}
}

func TestDocument_ElementCount(t *testing.T) {
	data := createTestArchive(
		shipNode("AB12", "Scout", 28, 28, "player", false,
			`<tile x="0" y="0" type="1" rot="0"/><tile x="1" y="0" type="1" rot="0"/>`),
	)
	doc, _ := Parse(data)

	n, ok := doc.ElementCount("AB12")
	if !ok || n != 2 {
		t.Errorf("expected 2 elements, got %d (ok=%v)", n, ok)
	}
	if _, ok := doc.ElementCount("missing"); ok {
		t.Error("expected ok=false for unknown ship")
	}
}
