package summon

import (
	"encoding/json"
	"strconv"
	"strings"
)

// BearSpiritTempHP is the temporary HP the Bear Spirit aura grants
func BearSpiritTempHP(druidLevel int) int {
	return 5 + druidLevel
}

// Roster is the set of creatures summoned during one play session, kept in
// the order they were summoned. It is not safe for concurrent use; callers
// serialize access per session.
type Roster struct {
	order     []string
	creatures map[string]SummonedCreature
}

func NewRoster() *Roster {
	return &Roster{
		order:     []string{},
		creatures: make(map[string]SummonedCreature),
	}
}

// Add appends creatures, replacing any with the same ID in place
func (r *Roster) Add(creatures ...SummonedCreature) {
	if r.creatures == nil {
		r.creatures = make(map[string]SummonedCreature)
	}
	for _, creature := range creatures {
		if _, exists := r.creatures[creature.ID]; !exists {
			r.order = append(r.order, creature.ID)
		}
		r.creatures[creature.ID] = creature.clone()
	}
}

func (r *Roster) Get(id string) (SummonedCreature, bool) {
	creature, ok := r.creatures[id]
	if !ok {
		return SummonedCreature{}, false
	}
	return creature.clone(), true
}

// List returns the creatures in summon order
func (r *Roster) List() []SummonedCreature {
	out := make([]SummonedCreature, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.creatures[id].clone())
	}
	return out
}

// Clone returns an independent copy of the roster
func (r *Roster) Clone() *Roster {
	out := NewRoster()
	out.Add(r.List()...)
	return out
}

func (r *Roster) Len() int {
	return len(r.order)
}

// Remove deletes a creature. Removing an unknown ID does nothing.
func (r *Roster) Remove(id string) bool {
	if _, ok := r.creatures[id]; !ok {
		return false
	}

	delete(r.creatures, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// Clear dismisses every creature
func (r *Roster) Clear() {
	r.order = []string{}
	r.creatures = make(map[string]SummonedCreature)
}

// SetCurrentHP overwrites current HP with any integer. Unknown IDs and
// non-numeric input leave the roster unchanged and return false.
func (r *Roster) SetCurrentHP(id, raw string) bool {
	creature, ok := r.creatures[id]
	if !ok {
		return false
	}

	hp, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return false
	}

	creature.CurrentHP = hp
	r.creatures[id] = creature
	return true
}

// SetTempHP overwrites temporary HP, flooring negatives at 0. Unknown IDs and
// non-numeric input leave the roster unchanged and return false.
func (r *Roster) SetTempHP(id, raw string) bool {
	creature, ok := r.creatures[id]
	if !ok {
		return false
	}

	temp, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return false
	}

	creature.TempHP = max(0, temp)
	r.creatures[id] = creature
	return true
}

// ApplyTempHP offers temporary HP to every creature, keeping the higher value
func (r *Roster) ApplyTempHP(proposed int) {
	for id, creature := range r.creatures {
		r.creatures[id] = creature.WithTempHP(proposed)
	}
}

// ApplyBearSpirit grants the Bear Spirit aura to every creature and returns
// the amount offered
func (r *Roster) ApplyBearSpirit(druidLevel int) int {
	amount := BearSpiritTempHP(druidLevel)
	r.ApplyTempHP(amount)
	return amount
}

type rosterJSON struct {
	Creatures []SummonedCreature `json:"creatures"`
}

func (r *Roster) MarshalJSON() ([]byte, error) {
	return json.Marshal(rosterJSON{Creatures: r.List()})
}

func (r *Roster) UnmarshalJSON(data []byte) error {
	var raw rosterJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.Clear()
	r.Add(raw.Creatures...)
	return nil
}
