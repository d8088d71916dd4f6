// Package mux implements the multiplexer problem: a classic single-step
// reinforcement-learning benchmark where the state encodes an address
// field that selects one bit of a data field, and the correct action is
// that bit's value. It plays the same role for internal/bench that a
// scheduling instance generator plays for a combinatorial optimizer —
// a reward-generating environment the engine is driven against.
package mux

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/nuggfr/xcsrc/internal/rng"
	"github.com/nuggfr/xcsrc/internal/xcs"
)

// InputMode selects how RandomState renders a drawn sample.
type InputMode int

const (
	// Binary renders every bit as a literal '0'/'1' character, one per
	// input dimension, with no separators.
	Binary InputMode = iota
	// Real renders every drawn value (rounded to 3 decimals) as a
	// 5-character truncated float token such as "0.370", separated by ';'.
	// The correct action is still computed from the thresholded bits.
	Real
)

// Instance is one multiplexer configuration: addressBits selects 2^addressBits
// data bits, so the total input length is addressBits + 2^addressBits.
type Instance struct {
	addressBits int
	inputMode   InputMode
	length      int
}

// NewInstance returns a multiplexer of the given address width and
// rendering mode. Panics if addressBits is not positive — this mirrors a
// construction-time contract violation, not a runtime data error.
func NewInstance(addressBits int, inputMode InputMode) *Instance {
	if addressBits <= 0 {
		panic("mux: addressBits must be positive")
	}
	return &Instance{
		addressBits: addressBits,
		inputMode:   inputMode,
		length:      addressBits + pow2Int(addressBits),
	}
}

// AddressBits returns the configured address width.
func (inst *Instance) AddressBits() int { return inst.addressBits }

// Length returns the total bit length of a multiplexer state
// (addressBits + 2^addressBits).
func (inst *Instance) Length() int { return inst.length }

// RandomState draws a uniformly random address+data bitstring and renders
// it per the instance's InputMode, returning both the rendered state (what
// gets passed to Engine.TakeAction) and the raw bits (what CorrectAction
// needs to score the reward).
func (inst *Instance) RandomState(src rng.Source) (state string, bits []int) {
	bits = make([]int, inst.length)
	rounded := make([]float64, inst.length)
	for i := range bits {
		v := src.Float64Range(0, 1)
		rounded[i] = float64(int64(v*1000+0.5)) / 1000
		bits[i] = int(rounded[i] + 0.5)
	}

	var b strings.Builder
	for i, bit := range bits {
		switch inst.inputMode {
		case Binary:
			if bit == 0 {
				b.WriteByte('0')
			} else {
				b.WriteByte('1')
			}
		default:
			tok := strconv.FormatFloat(rounded[i], 'f', 6, 64)
			if len(tok) > 5 {
				tok = tok[:5]
			}
			b.WriteString(tok)
			if i < inst.length-1 {
				b.WriteByte(';')
			}
		}
	}
	return b.String(), bits
}

// CorrectAction computes the reward-bearing answer for bits: the address
// bits, read as a binary integer, select which data bit is the correct
// action.
func (inst *Instance) CorrectAction(bits []int) (xcs.Action, error) {
	if len(bits) != inst.length {
		return 0, errors.Errorf("mux: expected %d bits, got %d", inst.length, len(bits))
	}

	pos := inst.addressBits
	for i := 0; i < inst.addressBits; i++ {
		pos += bits[i] * pow2Int(inst.addressBits-i-1)
	}
	return xcs.Action(bits[pos]), nil
}

func pow2Int(n int) int {
	result := 1
	for i := 0; i < n; i++ {
		result *= 2
	}
	return result
}
