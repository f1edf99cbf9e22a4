package saves

// dazeBonus grants extra daze rounds to a spell under one condition
type dazeBonus struct {
	rounds int
	// failMargin is how far under the DC the save must land; 0 means unused
	failMargin int
	// onCritical requires a confirmed critical on the spell's attack
	onCritical bool
}

// dazeBonuses is keyed by untranslated spell name
var dazeBonuses = map[string]dazeBonus{
	"Fireball":       {rounds: 1, failMargin: 5},
	"Lightning Bolt": {rounds: 1, failMargin: 5},
	"Cone of Cold":   {rounds: 1, failMargin: 5},
	"Scorching Ray":  {rounds: 1, onCritical: true},
	"Shocking Grasp": {rounds: 1, onCritical: true},
}

// DazeBonusRounds returns the extra rounds spell grants when a save failed by
// missed points, given whether the attack was a confirmed critical
func DazeBonusRounds(spell string, missed int, critical bool) int {
	bonus, ok := dazeBonuses[spell]
	if !ok {
		return 0
	}
	switch {
	case bonus.onCritical && critical:
		return bonus.rounds
	case bonus.failMargin > 0 && missed >= bonus.failMargin:
		return bonus.rounds
	}
	return 0
}
