package rulesdata

// overlay patches and extends the generated rules index. Entries here replace
// index entries with the same name.
var overlay = map[string]string{
	"throwing spears":          "weapons-of-war/throwing-spear",
	"halberds":                 "weapons-of-war/halberd",
	"additional hand weapons":  "weapons-of-war/two-hand-weapons-additional-hand-weapon",
	"cavalry spears":           "weapons-of-war/cavalry-spear",
	"repeater handguns":        "weapons-of-war/repeater-handgun",
	"hand weapons":             "weapons-of-war/hand-weapon",
	"flails":                   "weapons-of-war/flail",
	"plague censers":           "weapons-of-war/plague-censer",
	"great weapons":            "weapons-of-war/great-weapon",
	"whips":                    "weapons-of-war/whip",
	"spears":                   "weapons-of-war/spears",
	"morning stars":            "weapons-of-war/morning-star",
	"blowpipes":                "weapons-of-war/blowpipe",
	"handguns":                 "weapons-of-war/handgun",
	"lances":                   "weapons-of-war/lance",
	"shortbows":                "weapons-of-war/shortbow",
	"thrusting spears":         "weapons-of-war/thrusting-spear",
	"javelins":                 "weapons-of-war/javelin",
	"longbows":                 "weapons-of-war/longbow",
	"pistols":                  "weapons-of-war/pistol",
	"throwing axes":            "weapons-of-war/throwing-axe",
	"hellblades":               "weapons-of-war/hellblade",
	"repeater pistols":         "weapons-of-war/repeater-pistol",
	"blackbriar javelins":      "weapons-of-war/blackbriar-javelin",
	"drakeguns":                "weapons-of-war/drakegun",
	"great hammers":            "weapons-of-war/great-hammer",
	"brimstone guns":           "weapons-of-war/brimstone-gun",
	"clatterguns":              "weapons-of-war/clattergun",
	"crossbows":                "weapons-of-war/crossbow",
	"throwing weapons":         "weapons-of-war/throwing-weapons",
	"slings":                   "weapons-of-war/sling",
	"blunderbusses":            "weapons-of-war/blunderbuss",
	"repeater handbows":        "weapons-of-war/repeater-handbow",
	"repeater crossbows":       "weapons-of-war/repeater-crossbow",
	"daemons of khorne":        "special-rules/daemon-of-khorne",
	"daemons of tzeentch":      "special-rules/daemon-of-tzeentch",
	"daemons of nurgle":        "special-rules/daemon-of-nurgle",
	"daemons of slaanesh":      "special-rules/daemon-of-slaanesh",
	"asrai spears":             "weapons-of-war/asrai-spear",
	"asrai longbows":           "weapons-of-war/asrai-longbow",
	"ironfists":                "weapons-of-war/ironfist",
	"general":                  "characters/the-general-characters",
	"moonfire shots":           "weapons-of-war/moonfire-shot",
	"battle standard bearer":   "characters/the-battle-standard",
	"champions":                "command-groups/champions",
	"musician":                 "command-groups/musicians",
	"standard bearer":          "command-groups/standard-bearers",
	"wizard":                   "magic/wizards",
	"level 1 wizard":           "magic/levels-of-wizardry",
	"level 2 wizard":           "magic/levels-of-wizardry",
	"level 3 wizard":           "magic/levels-of-wizardry",
	"level 4 wizard":           "magic/levels-of-wizardry",
	"storm call warriors":      "special-rules/storm-call",
	"doomseeker dwarfs":        "special-rules/doomseeker",
	"armour piercing":          "the-shooting-phase/armour-piercing",
	"nuln state troops empire": "special-rules/nuln-state-troops",
}

// Overlay returns a copy of the curated overlay table
func Overlay() map[string]string {
	return clone(overlay)
}
