package model

import (
	"fmt"
	"strings"
	"unicode"
)

// PlayerSlot identifies which of the two seats placed a token
type PlayerSlot int

const (
	SlotOne PlayerSlot = iota
	SlotTwo
)

// Valid returns true for the two defined slots
func (s PlayerSlot) Valid() bool {
	return s == SlotOne || s == SlotTwo
}

// Other returns the opposing slot
func (s PlayerSlot) Other() PlayerSlot {
	if s == SlotOne {
		return SlotTwo
	}
	return SlotOne
}

// Index returns the slot as a 0-based player index
func (s PlayerSlot) Index() int {
	return int(s)
}

func (s PlayerSlot) String() string {
	switch s {
	case SlotOne:
		return "player_one"
	case SlotTwo:
		return "player_two"
	default:
		return fmt.Sprintf("slot(%d)", int(s))
	}
}

// DisplayAttribute is passed through to the renderer untouched (e.g. "red")
type DisplayAttribute string

// Player is an immutable game participant
type Player struct {
	name    string
	display DisplayAttribute
	token   rune
}

// NewPlayer validates and builds a Player
func NewPlayer(name string, display DisplayAttribute, token rune) (Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Player{}, ErrInvalidPlayerName
	}
	if token == 0 || unicode.IsSpace(token) {
		return Player{}, fmt.Errorf("%w: %q", ErrInvalidToken, token)
	}
	return Player{
		name:    name,
		display: display,
		token:   token,
	}, nil
}

// NewOpponent builds the second player, rejecting a token already taken by first
func NewOpponent(first Player, name string, display DisplayAttribute, token rune) (Player, error) {
	p, err := NewPlayer(name, display, token)
	if err != nil {
		return Player{}, err
	}
	if p.token == first.token {
		return Player{}, fmt.Errorf("%w: %q", ErrDuplicateToken, token)
	}
	return p, nil
}

// Name returns the player's display name
func (p Player) Name() string {
	return p.name
}

// DisplayAttribute returns the opaque rendering attribute
func (p Player) DisplayAttribute() DisplayAttribute {
	return p.display
}

// Token returns the player's token identifier
func (p Player) Token() rune {
	return p.token
}

// IsZero reports whether p was never constructed through NewPlayer
func (p Player) IsZero() bool {
	return p.name == ""
}
