package features

import (
	"sort"

	"github.com/KirkDiggler/dnd-features/internal/domain/equipment"
	"github.com/KirkDiggler/dnd-features/internal/domain/rulebook/dnd5e/spells"
	dnderr "github.com/KirkDiggler/dnd-features/internal/errors"
)

// Player's Handbook invocations
const (
	InvocationAgonizingBlast         = "agonizing_blast"
	InvocationArmorOfShadows         = "armor_of_shadows"
	InvocationAscendantStep          = "ascendant_step"
	InvocationBeastSpeech            = "beast_speech"
	InvocationBeguilingInfluence     = "beguiling_influence"
	InvocationBewitchingWhispers     = "bewitching_whispers"
	InvocationBookOfAncientSecrets   = "book_of_ancient_secrets"
	InvocationChainsOfCarceri        = "chains_of_carceri"
	InvocationDevilsSight            = "devils_sight"
	InvocationDreadfulWord           = "dreadful_word"
	InvocationEldritchSight          = "eldritch_sight"
	InvocationEldritchSpear          = "eldritch_spear"
	InvocationEyesOfTheRuneKeeper    = "eyes_of_the_rune_keeper"
	InvocationFiendishVigor          = "fiendish_vigor"
	InvocationGazeOfTwoMinds         = "gaze_of_two_minds"
	InvocationLifeDrinker            = "life_drinker"
	InvocationMaskOfManyFaces        = "mask_of_many_faces"
	InvocationMasterOfMyriadForms    = "master_of_myriad_forms"
	InvocationMinionsOfChaos         = "minions_of_chaos"
	InvocationMireTheMind            = "mire_the_mind"
	InvocationMistyVisions           = "misty_visions"
	InvocationOneWithShadows         = "one_with_shadows"
	InvocationOtherworldlyLeap       = "otherworldly_leap"
	InvocationRepellingBlast         = "repelling_blast"
	InvocationSculptorOfFlesh        = "sculptor_of_flesh"
	InvocationSignOfIllOmen          = "sign_of_ill_omen"
	InvocationThiefOfFiveFates       = "thief_of_five_fates"
	InvocationThirstingBlade         = "thirsting_blade"
	InvocationVisionsOfDistantRealms = "visions_of_distant_realms"
	InvocationVoiceOfTheChain        = "voice_of_the_chain"
	InvocationWhispersOfTheGrave     = "whispers_of_the_grave"
	InvocationWitchSight             = "witch_sight"
)

// Xanathar's Guide to Everything invocations
const (
	InvocationAspectOfTheMoon         = "aspect_of_the_moon"
	InvocationCloakOfFlies            = "cloak_of_flies"
	InvocationEldritchSmite           = "eldritch_smite"
	InvocationGhostlyGaze             = "ghostly_gaze"
	InvocationGiftOfTheDepths         = "gift_of_the_depths"
	InvocationGiftOfTheEverLivingOnes = "gift_of_the_ever_living_ones"
	InvocationGraspOfHadar            = "grasp_of_hadar"
	InvocationImprovedPactWeapon      = "improved_pact_weapon"
	InvocationLanceOfLethargy         = "lance_of_lethargy"
	InvocationMaddeningHex            = "maddening_hex"
	InvocationRelentlessHex           = "relentless_hex"
	InvocationShroudOfShadow          = "shroud_of_shadow"
	InvocationTombOfLevistus          = "tomb_of_levistus"
	InvocationTrickstersEscape        = "tricksters_escape"
)

type invocationDef struct {
	name                string
	prerequisite        string
	description         string
	atWill              []string
	needsImplementation bool
}

var invocationCatalog = map[string]invocationDef{
	InvocationAgonizingBlast: {
		name:        "Agonizing Blast",
		description: "When you cast eldritch blast, add your Charisma modifier to the damage it deals on a hit.",
	},
	InvocationArmorOfShadows: {
		name:        "Armor of Shadows",
		description: "You can cast mage armor on yourself at will, without expending a spell slot or material components.",
		atWill:      []string{spells.KeyMageArmor},
	},
	InvocationAscendantStep: {
		name:         "Ascendant Step",
		prerequisite: "9th level",
		description:  "You can cast levitate on yourself at will, without expending a spell slot or material components.",
		atWill:       []string{spells.KeyLevitate},
	},
	InvocationBeastSpeech: {
		name:        "Beast Speech",
		description: "You can cast speak with animals at will, without expending a spell slot.",
		atWill:      []string{spells.KeySpeakWithAnimals},
	},
	InvocationBeguilingInfluence: {
		name:                "Beguiling Influence",
		description:         "You gain proficiency in the Deception and Persuasion skills.",
		needsImplementation: true,
	},
	InvocationBewitchingWhispers: {
		name:         "Bewitching Whispers",
		prerequisite: "7th level",
		description:  "You can cast compulsion once using a warlock spell slot, regaining the use after a long rest.",
	},
	InvocationBookOfAncientSecrets: {
		name:         "Book of Ancient Secrets",
		prerequisite: "Pact of the Tome",
		description: "You can inscribe ritual spells in your Book of Shadows and cast them as rituals while " +
			"holding it. You start with two 1st-level rituals and can transcribe more as you find them.",
	},
	InvocationChainsOfCarceri: {
		name:         "Chains of Carceri",
		prerequisite: "15th level, Pact of the Chain",
		description: "You can cast hold monster at will against a celestial, fiend, or elemental, without " +
			"expending a spell slot or material components. Each creature can be targeted once per long rest.",
	},
	InvocationDevilsSight: {
		name:        "Devil's Sight",
		description: "You can see normally in darkness, both magical and nonmagical, to a distance of 120 feet.",
	},
	InvocationDreadfulWord: {
		name:         "Dreadful Word",
		prerequisite: "7th level",
		description:  "You can cast confusion once using a warlock spell slot, regaining the use after a long rest.",
	},
	InvocationEldritchSight: {
		name:        "Eldritch Sight",
		description: "You can cast detect magic at will, without expending a spell slot.",
		atWill:      []string{spells.KeyDetectMagic},
	},
	InvocationEldritchSpear: {
		name:                "Eldritch Spear",
		description:         "When you cast eldritch blast, its range is 300 feet.",
		needsImplementation: true,
	},
	InvocationEyesOfTheRuneKeeper: {
		name:        "Eyes of the Rune Keeper",
		description: "You can read all writing.",
	},
	InvocationFiendishVigor: {
		name:        "Fiendish Vigor",
		description: "You can cast false life on yourself at will as a 1st-level spell, without expending a spell slot or material components.",
		atWill:      []string{spells.KeyFalseLife},
	},
	InvocationGazeOfTwoMinds: {
		name: "Gaze of Two Minds",
		description: "You can touch a willing humanoid and perceive through its senses until the end of your " +
			"next turn, extending the link with your action on later turns.",
	},
	InvocationLifeDrinker: {
		name:                "Life Drinker",
		prerequisite:        "12th level, Pact of the Blade",
		description:         "Hits with your pact weapon deal extra necrotic damage equal to your Charisma modifier (minimum 1).",
		needsImplementation: true,
	},
	InvocationMaskOfManyFaces: {
		name:        "Mask of Many Faces",
		description: "You can cast disguise self at will, without expending a spell slot.",
		atWill:      []string{spells.KeyDisguiseSelf},
	},
	InvocationMasterOfMyriadForms: {
		name:         "Master of Myriad Forms",
		prerequisite: "15th level",
		description:  "You can cast alter self at will, without expending a spell slot.",
		atWill:       []string{spells.KeyAlterSelf},
	},
	InvocationMinionsOfChaos: {
		name:         "Minions of Chaos",
		prerequisite: "9th level",
		description:  "You can cast conjure elemental once using a warlock spell slot, regaining the use after a long rest.",
	},
	InvocationMireTheMind: {
		name:         "Mire the Mind",
		prerequisite: "5th level",
		description:  "You can cast slow once using a warlock spell slot, regaining the use after a long rest.",
	},
	InvocationMistyVisions: {
		name:        "Misty Visions",
		description: "You can cast silent image at will, without expending a spell slot or material components.",
		atWill:      []string{spells.KeySilentImage},
	},
	InvocationOneWithShadows: {
		name:         "One with Shadows",
		prerequisite: "5th level",
		description:  "In dim light or darkness you can use your action to become invisible until you move or take an action or a reaction.",
	},
	InvocationOtherworldlyLeap: {
		name:         "Otherworldly Leap",
		prerequisite: "9th level",
		description:  "You can cast jump on yourself at will, without expending a spell slot or material components.",
		atWill:       []string{spells.KeyJump},
	},
	InvocationRepellingBlast: {
		name:        "Repelling Blast",
		description: "When you hit a creature with eldritch blast, you can push it up to 10 feet away from you in a straight line.",
	},
	InvocationSculptorOfFlesh: {
		name:         "Sculptor of Flesh",
		prerequisite: "7th level",
		description:  "You can cast polymorph once using a warlock spell slot, regaining the use after a long rest.",
	},
	InvocationSignOfIllOmen: {
		name:         "Sign of Ill Omen",
		prerequisite: "5th level",
		description:  "You can cast bestow curse once using a warlock spell slot, regaining the use after a long rest.",
	},
	InvocationThiefOfFiveFates: {
		name:        "Thief of Five Fates",
		description: "You can cast bane once using a warlock spell slot, regaining the use after a long rest.",
	},
	InvocationThirstingBlade: {
		name:         "Thirsting Blade",
		prerequisite: "5th level, Pact of the Blade",
		description:  "You can attack with your pact weapon twice, instead of once, whenever you take the Attack action on your turn.",
	},
	InvocationVisionsOfDistantRealms: {
		name:         "Visions of Distant Realms",
		prerequisite: "15th level",
		description:  "You can cast arcane eye at will, without expending a spell slot.",
		atWill:       []string{spells.KeyArcaneEye},
	},
	InvocationVoiceOfTheChain: {
		name:         "Voice of the Chain",
		prerequisite: "Pact of the Chain",
		description: "You can communicate telepathically with your familiar and perceive through its senses " +
			"on the same plane, and speak through it in your own voice.",
	},
	InvocationWhispersOfTheGrave: {
		name:         "Whispers of the Grave",
		prerequisite: "9th level",
		description:  "You can cast speak with dead at will, without expending a spell slot.",
		atWill:       []string{spells.KeySpeakWithDead},
	},
	InvocationWitchSight: {
		name:         "Witch Sight",
		prerequisite: "15th level",
		description:  "You can see the true form of any shapechanger or creature concealed by illusion or transmutation magic within 30 feet and line of sight.",
	},
	InvocationAspectOfTheMoon: {
		name:         "Aspect of the Moon",
		prerequisite: "Pact of the Tome",
		description:  "You no longer need to sleep and can't be forced to sleep. A long rest can be spent entirely on light activity.",
	},
	InvocationCloakOfFlies: {
		name:         "Cloak of Flies",
		prerequisite: "5th level",
		description: "As a bonus action you surround yourself with a 5-foot aura of buzzing flies that grants " +
			"advantage on Intimidation, disadvantage on other Charisma checks, and deals poison damage equal " +
			"to your Charisma modifier to creatures starting their turn in it. Once per short or long rest.",
	},
	InvocationEldritchSmite: {
		name:         "Eldritch Smite",
		prerequisite: "5th level, Pact of the Blade",
		description: "Once per turn when you hit with your pact weapon, you can expend a warlock spell slot to " +
			"deal an extra 1d8 force damage plus 1d8 per slot level, and knock a Huge or smaller target prone.",
	},
	InvocationGhostlyGaze: {
		name:         "Ghostly Gaze",
		prerequisite: "7th level",
		description:  "As an action you can see through solid objects to 30 feet for up to 1 minute while concentrating. Once per short or long rest.",
	},
	InvocationGiftOfTheDepths: {
		name:         "Gift of the Depths",
		prerequisite: "5th level",
		description:  "You can breathe underwater and gain a swimming speed equal to your walking speed. You can cast water breathing once per long rest without a slot.",
	},
	InvocationGiftOfTheEverLivingOnes: {
		name:         "Gift of the Ever-Living Ones",
		prerequisite: "Pact of the Chain",
		description:  "While your familiar is within 100 feet, dice you roll to regain hit points count as rolling their maximum.",
	},
	InvocationGraspOfHadar: {
		name:        "Grasp of Hadar",
		description: "Once on each of your turns when you hit a creature with eldritch blast, you can pull it 10 feet closer to you.",
	},
	InvocationImprovedPactWeapon: {
		name:         "Improved Pact Weapon",
		prerequisite: "Pact of the Blade",
		description: "Your pact weapon is a spellcasting focus and gains a +1 bonus to attack and damage rolls " +
			"unless it already has a magic bonus. It can also be a shortbow, longbow, or crossbow.",
	},
	InvocationLanceOfLethargy: {
		name:        "Lance of Lethargy",
		description: "Once on each of your turns when you hit a creature with eldritch blast, you can reduce its speed by 10 feet until the end of your next turn.",
	},
	InvocationMaddeningHex: {
		name:         "Maddening Hex",
		prerequisite: "5th level, hex spell or a warlock feature that curses",
		description: "As a bonus action you deal psychic damage equal to your Charisma modifier (minimum 1) to " +
			"your cursed target and creatures of your choice within 5 feet of it.",
	},
	InvocationRelentlessHex: {
		name:         "Relentless Hex",
		prerequisite: "7th level, hex spell or a warlock feature that curses",
		description:  "As a bonus action you can teleport up to 30 feet to a space within 5 feet of the target you have cursed.",
	},
	InvocationShroudOfShadow: {
		name:         "Shroud of Shadow",
		prerequisite: "15th level",
		description:  "You can cast invisibility at will, without expending a spell slot.",
		atWill:       []string{spells.KeyInvisibility},
	},
	InvocationTombOfLevistus: {
		name:         "Tomb of Levistus",
		prerequisite: "5th level",
		description: "As a reaction when you take damage, you entomb yourself in ice, gaining 10 temporary hit " +
			"points per warlock level until the end of your next turn. Once per short or long rest.",
	},
	InvocationTrickstersEscape: {
		name:         "Trickster's Escape",
		prerequisite: "7th level",
		description:  "You can cast freedom of movement on yourself once without expending a spell slot, regaining the use after a long rest.",
	},
}

// InvocationKeys lists every catalog invocation in sorted order
func InvocationKeys() []string {
	keys := make([]string, 0, len(invocationCatalog))
	for k := range invocationCatalog {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// NewInvocation builds a catalog invocation by key
func NewInvocation(key string) (Feature, error) {
	def, ok := invocationCatalog[key]
	if !ok {
		return nil, dnderr.NotFoundf("invocation %s not found", key).
			WithMeta("feature", key)
	}

	inv := newInvocation(key, def.name, def.prerequisite, def.description, def.atWill...)
	inv.needsImplementation = def.needsImplementation

	if key == InvocationImprovedPactWeapon {
		return &ImprovedPactWeapon{Invocation: *inv}, nil
	}
	return inv, nil
}

// pactWeaponMagicFloor is the magic bonus at or below which Improved Pact
// Weapon applies its +1
const pactWeaponMagicFloor = 1

// ImprovedPactWeapon gives a non-magical pact weapon a +1 bonus
type ImprovedPactWeapon struct {
	Invocation
}

// ModifyWeapon raises a weapon at or below the +1 floor to a +1 weapon.
// Weapons with a higher enchantment are left alone.
func (f *ImprovedPactWeapon) ModifyWeapon(weapon *equipment.Weapon, _ Owner) *equipment.Weapon {
	if weapon == nil {
		return nil
	}

	if weapon.MagicBonus <= pactWeaponMagicFloor {
		weapon.MagicBonus = pactWeaponMagicFloor
		weapon.AttackBonus++
		weapon.BonusDamage++
	}
	return weapon
}
