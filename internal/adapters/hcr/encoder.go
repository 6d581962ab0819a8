// Package hcr drives the Human Cyborg Relations vocalizer through its ASCII tag protocol.
// Every command is a bracketed tag such as <CA0007> or <PSG>.
package hcr

import (
	"context"
	"fmt"

	"github.com/penumbra-droid/droidsound/internal/domain"
	"github.com/penumbra-droid/droidsound/internal/ports"
)

// Tags
const (
	TagMuse      = "<M0>"
	TagRandom    = "<MM>"
	TagStop      = "<PSG>"
	TagMuteMain  = "<PVV000>"
	tagPlay      = "<CA%04d>"
	tagVolumeSet = "<PVV100><PVA%03d><PVB%03d>"
)

// MaxLevel is the top of the per-channel percentage scale
const MaxLevel = 100

// Encoder implements ports.Encoder, ports.Initializer and ports.RandomPlayer
type Encoder struct {
	ch ports.Channel
}

// Verify interface compliance at compile time
var (
	_ ports.Encoder      = (*Encoder)(nil)
	_ ports.Initializer  = (*Encoder)(nil)
	_ ports.RandomPlayer = (*Encoder)(nil)
)

// NewEncoder creates a vocalizer encoder writing to ch
func NewEncoder(ch ports.Channel) *Encoder {
	return &Encoder{ch: ch}
}

// Init turns off the vocalizer's idle muse. The first tag after power-up is
// sometimes swallowed, so it is sent twice.
func (e *Encoder) Init(_ context.Context) error {
	if err := e.write(TagMuse); err != nil {
		return err
	}
	return e.write(TagMuse)
}

// Play plays a file from the card's audio folder
func (e *Encoder) Play(track uint16) error {
	return e.write(fmt.Sprintf(tagPlay, track))
}

// Stop silences the current sound
func (e *Encoder) Stop() error {
	return e.write(TagStop)
}

// SetVolume sets the main volume to full and both channels to level percent
func (e *Encoder) SetVolume(level int) error {
	level = min(max(level, 0), MaxLevel)
	return e.write(fmt.Sprintf(tagVolumeSet, level, level))
}

// Mute zeroes the main volume
func (e *Encoder) Mute() error {
	return e.write(TagMuteMain)
}

// PlayRandom lets the vocalizer pick a random vocalization itself
func (e *Encoder) PlayRandom() error {
	return e.write(TagRandom)
}

func (e *Encoder) write(tag string) error {
	if e.ch == nil {
		return domain.ErrNoChannel
	}
	_, err := e.ch.Write([]byte(tag))
	return err
}
