package format

import (
	"fmt"
	"io"
	"regexp"
	"strconv"

	"github.com/guttosm/pickship/internal/domain/model"
)

type orderState int

const (
	ordStart orderState = iota
	ordNumber
	ordCustomer
	ordItems
	ordEnd
)

var lineItemPattern = regexp.MustCompile(`^ITEM:\s+(.+?),\s+(.+)$`)

// ReadOrder parses an order document:
//
//	ORDER START
//	ORDER NUMBER: <integer>
//	CUSTOMER CODE: <code>
//	ITEM: <code>, <quantity>
//	...
//	ORDER END
//
// Quantities must be integers of at least 1.
func ReadOrder(r io.Reader) (model.Order, error) {
	var order model.Order
	s := newLineScanner(r)
	state := ordStart

	fail := func(expected string) error {
		return &ParseError{Source: "order", Line: s.line, Expected: expected, Got: s.text}
	}

	for s.next() {
		switch state {
		case ordStart:
			if s.text != "ORDER START" {
				return model.Order{}, fail("ORDER START")
			}
			state = ordNumber

		case ordNumber:
			raw, ok := s.field("ORDER NUMBER: ")
			if !ok {
				return model.Order{}, fail("ORDER NUMBER line")
			}
			n, err := strconv.Atoi(raw)
			if err != nil {
				return model.Order{}, fail("ORDER NUMBER line with an integer")
			}
			order.Number = n
			state = ordCustomer

		case ordCustomer:
			code, ok := s.field("CUSTOMER CODE: ")
			if !ok {
				return model.Order{}, fail("CUSTOMER CODE line")
			}
			order.CustomerCode = code
			state = ordItems

		case ordItems:
			if s.text == "ORDER END" {
				state = ordEnd
				continue
			}
			m := lineItemPattern.FindStringSubmatch(s.text)
			if m == nil {
				return model.Order{}, fail("ITEM or ORDER END line")
			}
			qty, err := strconv.Atoi(m[2])
			if err != nil || qty < 1 {
				return model.Order{}, fail("ITEM line with a positive integer quantity")
			}
			order.LineItems = append(order.LineItems, model.LineItem{Code: m[1], Quantity: qty})

		case ordEnd:
			return model.Order{}, fail("nothing after ORDER END")
		}
	}
	if err := s.err(); err != nil {
		return model.Order{}, fmt.Errorf("reading order: %w", err)
	}

	if state != ordEnd {
		return model.Order{}, &ParseError{Source: "order", Expected: orderExpectation(state)}
	}
	return order, nil
}

func orderExpectation(state orderState) string {
	switch state {
	case ordStart:
		return "ORDER START"
	case ordNumber:
		return "ORDER NUMBER line"
	case ordCustomer:
		return "CUSTOMER CODE line"
	default:
		return "ORDER END"
	}
}
