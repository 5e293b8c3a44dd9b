package tagengine

import (
	"strings"

	"github.com/commanderforge/commanderforge/corpus"
)

// CreatureTypeVocabulary is the closed list of canonical creature-type
// strings. A representative subset of the ~300-entry source vocabulary,
// large enough to exercise kindred tagging, the outlaw rollup, and the
// ignore-list subtraction.
var CreatureTypeVocabulary = buildVocabulary([]string{
	"Advisor", "Aetherborn", "Alien", "Ally", "Angel", "Antelope", "Ape",
	"Archer", "Archon", "Army", "Artificer", "Assassin", "Assembly-Worker",
	"Atog", "Aurochs", "Avatar", "Azra", "Badger", "Barbarian", "Bard",
	"Basilisk", "Bat", "Bear", "Beast", "Beeble", "Berserker", "Bird",
	"Blinkmoth", "Boar", "Bringer", "Brushwagg", "Camarid", "Camel",
	"Capybara", "Caribou", "Carrier", "Cat", "Centaur", "Child", "Chimera",
	"Citizen", "Cleric", "Cockatrice", "Construct", "Coward", "Crab",
	"Crocodile", "Cyclops", "Dauthi", "Demigod", "Demon", "Deserter",
	"Devil", "Dinosaur", "Djinn", "Dog", "Dragon", "Drake", "Dreadnought",
	"Drone", "Druid", "Dryad", "Dwarf", "Efreet", "Egg", "Elder", "Eldrazi",
	"Elemental", "Elephant", "Elf", "Elk", "Eye", "Faerie", "Ferret",
	"Fish", "Flagbearer", "Fox", "Fractal", "Frog", "Fungus", "Gargoyle",
	"Germ", "Giant", "Gnoll", "Gnome", "Goat", "Goblin", "God", "Golem",
	"Gorgon", "Graveborn", "Gremlin", "Griffin", "Hag", "Halfling",
	"Harpy", "Hellion", "Hippo", "Hippogriff", "Homarid", "Homunculus",
	"Horror", "Horse", "Human", "Hydra", "Hyena", "Illusion", "Imp",
	"Incarnation", "Inkling", "Insect", "Jackal", "Jellyfish", "Juggernaut",
	"Kavu", "Kirin", "Kithkin", "Knight", "Kobold", "Kor", "Kraken",
	"Lamia", "Lammasu", "Leech", "Leviathan", "Lhurgoyf", "Lizard",
	"Manticore", "Masticore", "Mercenary", "Merfolk", "Metathran",
	"Minion", "Minotaur", "Mole", "Monger", "Mongoose", "Monk", "Monkey",
	"Moonfolk", "Mouse", "Mutant", "Myr", "Mystic", "Naga", "Nautilus",
	"Necron", "Nephilim", "Nightmare", "Nightstalker", "Ninja", "Noble",
	"Noggle", "Nomad", "Nymph", "Octopus", "Ogre", "Ooze", "Orb", "Orc",
	"Orgg", "Otter", "Ouphe", "Ox", "Oyster", "Pangolin", "Peasant",
	"Pegasus", "Pentavite", "Performer", "Pest", "Phelddagrif", "Phoenix",
	"Phyrexian", "Pilot", "Pincher", "Pirate", "Plant", "Praetor",
	"Primarch", "Prism", "Processor", "Rabbit", "Raccoon", "Ranger",
	"Rat", "Rebel", "Reflection", "Rhino", "Rigger", "Robot", "Rogue",
	"Sable", "Salamander", "Samurai", "Sand", "Saproling", "Satyr",
	"Scarecrow", "Scientist", "Scion", "Scorpion", "Scout", "Serf",
	"Serpent", "Servo", "Shade", "Shaman", "Shapeshifter", "Shark",
	"Sheep", "Siren", "Skeleton", "Slith", "Sliver", "Slug", "Snake",
	"Soldier", "Soltari", "Spawn", "Specter", "Spellshaper", "Sphinx",
	"Spider", "Spike", "Spirit", "Splinter", "Sponge", "Squid",
	"Squirrel", "Starfish", "Surrakar", "Survivor", "Tentacle",
	"Tetravite", "Thalakos", "Thopter", "Thrull", "Treefolk", "Trilobite",
	"Troll", "Turtle", "Unicorn", "Vampire", "Vedalken", "Viashino",
	"Volver", "Wall", "Walrus", "Warlock", "Warrior", "Weird", "Werewolf",
	"Whale", "Wizard", "Wolf", "Wolverine", "Wombat", "Worm", "Wraith",
	"Wurm", "Yeti", "Zombie", "Zubera",
})

func buildVocabulary(names []string) map[string]string {
	m := make(map[string]string, len(names))
	for _, n := range names {
		m[strings.ToLower(n)] = n
	}
	return m
}

// oracleTextFalsePositiveIgnore lists cards whose oracle text mentions a
// canonical creature type in a way that is not a self-reference or a true
// kindred signal. A small ignore-list of cards with misleading text is
// subtracted from the extraction pass.
var oracleTextFalsePositiveIgnore = map[string]bool{
	"Marit Lage":       true, // text references "Horror" flavor, not a type grant
	"Form of the Dragon": true,
}

// outlawTypes is the set whose presence in creature_types triggers the
// Outlaw rollup.
var outlawTypes = map[string]bool{
	"Assassin": true, "Mercenary": true, "Pirate": true, "Rogue": true, "Warlock": true,
}

// extractCreatureTypes runs the creature-type extraction phase over the
// whole table.
func extractCreatureTypes(table *corpus.Table) {
	for _, c := range table.Cards {
		if !c.HasType("Creature") {
			continue
		}

		var fromTypeLine []string
		if idx := strings.Index(c.TypeLine, "—"); idx >= 0 {
			after := c.TypeLine[idx+len("—"):]
			for _, tok := range strings.Fields(after) {
				if canon, ok := CreatureTypeVocabulary[strings.ToLower(tok)]; ok {
					fromTypeLine = append(fromTypeLine, canon)
				}
			}
		}
		c.AddCreatureTypes(fromTypeLine...)

		if oracleTextFalsePositiveIgnore[c.Name] {
			continue
		}

		text := strings.ToLower(c.Text())
		name := strings.ToLower(c.Name)
		for lower, canon := range CreatureTypeVocabulary {
			if containsExact(c.CreatureTypes, canon) {
				continue
			}
			if strings.Contains(text, lower) && !strings.Contains(name, lower) {
				c.AddCreatureTypes(canon)
			}
		}
	}
}

// applyOutlawRollup runs the outlaw-rollup phase.
func applyOutlawRollup(table *corpus.Table) {
	for _, c := range table.Cards {
		for _, t := range c.CreatureTypes {
			if outlawTypes[t] {
				c.AddCreatureTypes("Outlaw")
				break
			}
		}
	}
}

func containsExact(haystack []string, needle string) bool {
	for _, h := range haystack {
		if h == needle {
			return true
		}
	}
	return false
}
