package ai

import "math"

// Consideration is one (input axis, response curve) pair contributing to an
// action's score. Value is only read for the Constant axis.
type Consideration struct {
	Axis  Axis
	Curve Curve
	Value float64
}

// ActionDef is the declarative scoring description for one action.
type ActionDef struct {
	Action         ActionId
	Considerations []Consideration
	Weight         float64
	CooldownTicks  uint32
	InertiaBonus   float64
}

// Config is the full decision document. Slice order is the tie-break order:
// first declared wins on an exact score tie. An empty config is valid and
// degrades every entity to Idle.
type Config struct {
	Actions []ActionDef
}

// Def returns the definition for an action, or nil if the config omits it.
func (c *Config) Def(a ActionId) *ActionDef {
	for i := range c.Actions {
		if c.Actions[i].Action == a {
			return &c.Actions[i]
		}
	}
	return nil
}

// Engine scores actions for one entity at a time. It holds no per-entity
// state and never fails: missing config entries simply drop out of
// consideration.
type Engine struct {
	cfg *Config
}

func NewEngine(cfg *Config) *Engine {
	if cfg == nil {
		cfg = &Config{}
	}
	return &Engine{cfg: cfg}
}

func (e *Engine) Config() *Config { return e.cfg }

// Choose scores every configured action against in and returns the winner.
// current is the entity's current action (for the inertia bonus); onCooldown
// reports whether an action is blocked this tick. An action with no
// considerations is skipped. The running best starts at a negative sentinel,
// so any scoring action beats the Idle default, and only a strictly higher
// score displaces an earlier action.
func (e *Engine) Choose(in Inputs, current ActionId, onCooldown func(ActionId) bool) ActionId {
	best := Idle
	bestScore := -1.0
	for i := range e.cfg.Actions {
		def := &e.cfg.Actions[i]
		if len(def.Considerations) == 0 {
			continue
		}
		if onCooldown != nil && onCooldown(def.Action) {
			continue
		}
		score := e.score(def, in)
		if def.Action == current {
			score += def.InertiaBonus
		}
		if score > bestScore {
			bestScore = score
			best = def.Action
		}
	}
	return best
}

// score is the geometric mean of the considerations' curve outputs times the
// action's weight.
func (e *Engine) score(def *ActionDef, in Inputs) float64 {
	product := 1.0
	for _, c := range def.Considerations {
		product *= c.Curve.Eval(in.axis(c.Axis, c.Value))
	}
	mean := math.Pow(product, 1.0/float64(len(def.Considerations)))
	return mean * def.Weight
}
