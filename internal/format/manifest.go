package format

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/guttosm/pickship/internal/domain/model"
)

// WriteManifest renders a manifest as a pick-ship document. Boxes are numbered from 1.
func WriteManifest(w io.Writer, m model.Manifest) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "PICK SHIP START")
	fmt.Fprintf(bw, "ORDER NUMBER: %d\n", m.OrderNumber)
	fmt.Fprintf(bw, "TOTAL SHIP WEIGHT: %s\n", formatWeight(m.Weight))
	for _, box := range m.Boxes {
		fmt.Fprintf(bw, "BOXSTART: %d\n", box.Number+1)
		fmt.Fprintf(bw, "SHIP WEIGHT: %s\n", formatWeight(box.Weight))
		for _, li := range box.LineItems {
			fmt.Fprintf(bw, "ITEM: %s, %d\n", li.Code, li.Quantity)
		}
		fmt.Fprintln(bw, "BOX END")
	}
	fmt.Fprintln(bw, "PICK SHIP END")

	return bw.Flush()
}

func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}
