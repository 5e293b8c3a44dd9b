package corpus

import (
	"strings"
	"testing"
)

const sampleCSV = `name,faceName,edhrecRank,colorIdentity,colors,manaCost,manaValue,type,creatureTypes,text,power,toughness,keywords,themeTags,layout,side
Lightning Bolt,Lightning Bolt,120,R,R,{R},1,Instant,[],"Lightning Bolt deals 3 damage to any target.",,,[],[],normal,a
Atraxa Praetors' Voice,Atraxa Praetors' Voice,5,"W, U, B, G","W, U, B, G",{G}{W}{U}{B},4,Legendary Creature — Phyrexian Angel Horror,"['Phyrexian', 'Angel', 'Horror']","Flying, vigilance, deathtouch, lifelink. At the beginning of your end step, proliferate.",4,4,"['Flying', 'Vigilance', 'Deathtouch', 'Lifelink']",[],normal,a
Rhystic Study,Rhystic Study,80,U,U,{2}{U},3,Enchantment,[],"Whenever an opponent casts a spell, unless that player pays {1}, you draw a card.",,,[],[],normal,a
`

func TestLoadFullCorpusFrom(t *testing.T) {
	table, err := LoadFullCorpusFrom(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("LoadFullCorpusFrom: %v", err)
	}

	if table.Len() != 3 {
		t.Fatalf("expected 3 cards, got %d", table.Len())
	}

	byName := table.ByName()
	bolt, ok := byName["Lightning Bolt"]
	if !ok {
		t.Fatal("missing Lightning Bolt")
	}
	if bolt.ManaValue != 1 {
		t.Errorf("expected manaValue 1, got %d", bolt.ManaValue)
	}

	atraxa := byName["Atraxa Praetors' Voice"]
	if len(atraxa.ColorIdentity) != 4 {
		t.Errorf("expected 4-color identity, got %v", atraxa.ColorIdentity)
	}
	if len(atraxa.CreatureTypes) != 3 {
		t.Errorf("expected 3 creature types, got %v", atraxa.CreatureTypes)
	}
}

func TestLoadFullCorpus_MissingFile(t *testing.T) {
	_, err := LoadFullCorpus("/nonexistent/path/cards.csv")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadFullCorpusFrom_MissingColumn(t *testing.T) {
	bad := "name,type\nFoo,Creature\n"
	_, err := LoadFullCorpusFrom(strings.NewReader(bad))
	if err == nil {
		t.Fatal("expected schema error")
	}
}

func TestLoadFullCorpusFrom_DuplicateName(t *testing.T) {
	dup := `name,faceName,edhrecRank,colorIdentity,colors,manaCost,manaValue,type,creatureTypes,text,power,toughness,keywords,themeTags,layout,side
Sol Ring,Sol Ring,1,,,{1},1,Artifact,[],"Add {C}{C}.",,,[],[],normal,a
Sol Ring,Sol Ring,1,,,{1},1,Artifact,[],"Add {C}{C}.",,,[],[],normal,a
`
	_, err := LoadFullCorpusFrom(strings.NewReader(dup))
	if err == nil {
		t.Fatal("expected duplicate name error")
	}
}

func TestCanonicalColorIdentityName(t *testing.T) {
	cases := []struct {
		colors []string
		want   ColorIdentity
	}{
		{nil, "colorless"},
		{[]string{"W"}, "white"},
		{[]string{"W", "U"}, "azorius"},
		{[]string{"U", "W"}, "azorius"}, // order-independent
		{[]string{"W", "U", "B", "G"}, "witch"},
		{[]string{"W", "U", "B", "R", "G"}, "wubrg"},
	}

	for _, c := range cases {
		got := CanonicalColorIdentityName(c.colors)
		if got != c.want {
			t.Errorf("CanonicalColorIdentityName(%v) = %s, want %s", c.colors, got, c.want)
		}
	}
}

func TestLoadCommanderPool(t *testing.T) {
	table, err := LoadFullCorpusFrom(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("LoadFullCorpusFrom: %v", err)
	}

	pool := LoadCommanderPool(table)
	names := make(map[string]bool)
	for _, c := range pool.Cards {
		names[c.Name] = true
	}

	if !names["Atraxa Praetors' Voice"] {
		t.Error("expected Atraxa in commander pool")
	}
	if names["Lightning Bolt"] {
		t.Error("Lightning Bolt should not be commander-eligible")
	}
}
