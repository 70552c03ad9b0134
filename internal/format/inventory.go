package format

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/guttosm/pickship/internal/domain/model"
)

type inventoryState int

const (
	invStart inventoryState = iota
	invBody
	invItem
	invCode
	invName
	invWeight
	invEnd
)

// ReadInventory parses an inventory document:
//
//	INVENTORY START
//	ITEM START
//	CODE: <code>
//	NAME: <name>
//	WEIGHT: <positive number>
//	ITEM END
//	...
//	INVENTORY END
//
// Blank lines are ignored and surrounding whitespace is trimmed.
func ReadInventory(r io.Reader) (model.Inventory, error) {
	inv := model.Inventory{}
	s := newLineScanner(r)
	state := invStart

	var item model.Item
	fail := func(expected string) error {
		return &ParseError{Source: "inventory", Line: s.line, Expected: expected, Got: s.text}
	}

	for s.next() {
		switch state {
		case invStart:
			if s.text != "INVENTORY START" {
				return nil, fail("INVENTORY START")
			}
			state = invBody

		case invBody:
			switch s.text {
			case "INVENTORY END":
				state = invEnd
			case "ITEM START":
				item = model.Item{}
				state = invItem
			default:
				return nil, fail("ITEM START or INVENTORY END")
			}

		case invItem:
			code, ok := s.field("CODE: ")
			if !ok {
				return nil, fail("CODE line")
			}
			if _, dup := inv[code]; dup {
				return nil, fail("CODE line with a unique code")
			}
			item.Code = code
			state = invCode

		case invCode:
			name, ok := s.field("NAME: ")
			if !ok {
				return nil, fail("NAME line")
			}
			item.Name = name
			state = invName

		case invName:
			raw, ok := s.field("WEIGHT: ")
			if !ok {
				return nil, fail("WEIGHT line")
			}
			weight, err := strconv.ParseFloat(raw, 64)
			if err != nil || weight <= 0 || math.IsInf(weight, 0) || math.IsNaN(weight) {
				return nil, fail("WEIGHT line with a positive number")
			}
			item.Weight = weight
			state = invWeight

		case invWeight:
			if s.text != "ITEM END" {
				return nil, fail("ITEM END")
			}
			inv[item.Code] = item
			state = invBody

		case invEnd:
			return nil, fail("nothing after INVENTORY END")
		}
	}
	if err := s.err(); err != nil {
		return nil, fmt.Errorf("reading inventory: %w", err)
	}

	if state != invEnd {
		return nil, &ParseError{Source: "inventory", Expected: inventoryExpectation(state)}
	}
	return inv, nil
}

func inventoryExpectation(state inventoryState) string {
	switch state {
	case invStart:
		return "INVENTORY START"
	case invItem:
		return "CODE line"
	case invCode:
		return "NAME line"
	case invName:
		return "WEIGHT line"
	case invWeight:
		return "ITEM END"
	default:
		return "INVENTORY END"
	}
}
