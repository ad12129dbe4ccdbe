package main

import (
	"strings"

	aoc "github.com/maisem/aocsearch"
)

type spell struct {
	name  string
	cost  int
	cast  func(*battle)
	timer func(*battle) *int
}

// battle is the state at the start of the player's turn, before effects.
type battle struct {
	hp, mana, boss           int
	shield, poison, recharge int // turns left on each effect
}

var spells = []spell{
	{name: "Magic Missile", cost: 53, cast: func(b *battle) { b.boss -= 4 }},
	{name: "Drain", cost: 73, cast: func(b *battle) { b.boss -= 2; b.hp += 2 }},
	{name: "Shield", cost: 113, cast: func(b *battle) { b.shield = 6 }, timer: func(b *battle) *int { return &b.shield }},
	{name: "Poison", cost: 173, cast: func(b *battle) { b.poison = 6 }, timer: func(b *battle) *int { return &b.poison }},
	{name: "Recharge", cost: 229, cast: func(b *battle) { b.recharge = 5 }, timer: func(b *battle) *int { return &b.recharge }},
}

// tick applies active effects and returns the player's armor for the turn.
func (b *battle) tick() (armor int) {
	if b.shield > 0 {
		armor = 7
		b.shield--
	}
	if b.poison > 0 {
		b.boss -= 3
		b.poison--
	}
	if b.recharge > 0 {
		b.mana += 101
		b.recharge--
	}
	return armor
}

// fight returns the least mana the player can spend and still win.
func fight(start battle, bossDamage int, hard bool) (int, error) {
	w := aoc.Weighted[battle]{
		Goal: func(b battle) bool { return b.boss <= 0 },
		Next: func(b battle, yield func(battle, int) bool) {
			if hard {
				b.hp--
				if b.hp <= 0 {
					return
				}
			}
			b.tick()
			if b.boss <= 0 {
				yield(b, 0)
				return
			}
			for _, sp := range spells {
				if b.mana < sp.cost || (sp.timer != nil && *sp.timer(&b) > 0) {
					continue
				}
				n := b
				n.mana -= sp.cost
				sp.cast(&n)
				if n.boss > 0 {
					armor := n.tick()
					if n.boss > 0 {
						n.hp -= max(1, bossDamage-armor)
						if n.hp <= 0 {
							continue
						}
					}
				}
				if !yield(n, sp.cost) {
					return
				}
			}
		},
	}
	res, err := w.Run(aoc.Seed[battle]{State: start})
	if err != nil {
		return 0, err
	}
	return res.Cost, nil
}

func (s solver) wizard(hard bool) int {
	var boss, damage int
	s.ForLines(func(line string) {
		k, v, _ := strings.Cut(line, ": ")
		switch k {
		case "Hit Points":
			boss = aoc.Int(v)
		case "Damage":
			damage = aoc.Int(v)
		}
	})
	start := battle{hp: 50, mana: 500, boss: boss}
	if s.SampleMode {
		start.hp, start.mana = 10, 250
	}
	return aoc.MustGet(fight(start, damage, hard))
}

/*
want=226

Hit Points: 13
Damage: 8
*/
func (s solver) D22p1() any {
	return s.wizard(false)
}

func (s solver) D22p2() any {
	return s.wizard(true)
}
