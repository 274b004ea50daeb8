package features

import (
	"fmt"

	"github.com/KirkDiggler/dnd-features/internal/domain/shared"
)

// SourceFiend tags The Fiend patron features
const SourceFiend = "Warlock (The Fiend Patron)"

const (
	FeatureDarkOnesBlessing   = "dark_ones_blessing"
	FeatureDarkOnesOwnLuck    = "dark_ones_own_luck"
	FeatureFiendishResilience = "fiendish_resilience"
	FeatureHurlThroughHell    = "hurl_through_hell"
)

// DarkOnesBlessing grants temporary hit points when the warlock drops a
// hostile creature to 0
type DarkOnesBlessing struct {
	BaseFeature
}

// NewDarkOnesBlessing creates the Dark One's Blessing feature
func NewDarkOnesBlessing() Feature {
	return &DarkOnesBlessing{
		BaseFeature: BaseFeature{
			key:    FeatureDarkOnesBlessing,
			name:   "Dark One's Blessing",
			source: SourceFiend,
			description: "When you reduce a hostile creature to 0 hit points, you gain temporary hit points " +
				"equal to your Charisma modifier + your warlock level (minimum of 1).",
		},
	}
}

// Name includes the temporary hit points granted at the owner's current
// warlock level and Charisma
func (f *DarkOnesBlessing) Name() (string, error) {
	owner, err := f.Owner()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s (%d HP)", f.name, f.TemporaryHitPoints(owner)), nil
}

// TemporaryHitPoints is the warlock level plus the Charisma modifier
func (f *DarkOnesBlessing) TemporaryHitPoints(owner Owner) int {
	return owner.ClassLevel(ClassWarlock) + owner.AbilityModifier(shared.AttributeCharisma)
}

// NewDarkOnesOwnLuck creates the Dark One's Own Luck feature
func NewDarkOnesOwnLuck() Feature {
	return &BaseFeature{
		key:         FeatureDarkOnesOwnLuck,
		name:        "Dark One's Own Luck",
		source:      SourceFiend,
		description: "When you make an ability check or saving throw, you can add a d10 to the roll after seeing it. Once per short or long rest.",
	}
}

// NewFiendishResilience creates the Fiendish Resilience feature
func NewFiendishResilience() Feature {
	return &BaseFeature{
		key:    FeatureFiendishResilience,
		name:   "Fiendish Resilience",
		source: SourceFiend,
		description: "After a short or long rest, choose one damage type. You resist it until you choose " +
			"another, unless it comes from a magical or silvered weapon.",
	}
}

// NewHurlThroughHell creates the Hurl Through Hell feature
func NewHurlThroughHell() Feature {
	return &BaseFeature{
		key:    FeatureHurlThroughHell,
		name:   "Hurl Through Hell",
		source: SourceFiend,
		description: "When you hit a creature with an attack, you can send it through the lower planes " +
			"until the end of your next turn. A non-fiend takes 10d10 psychic damage on return. Once per long rest.",
	}
}
