// Package evens writes the even-number report printed by the evens command.
package evens

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmingruby/evens/pred"
	"github.com/charmingruby/evens/seq"
)

// Options controls the framing of the report.
type Options struct {
	// Label is written once before any number.
	Label string
	// Separator follows every number, including the last one.
	Separator string
	// Terminator is written after the last number.
	Terminator string
}

// DefaultOptions returns the framing of the standard report.
func DefaultOptions() Options {
	return Options{
		Label:      "Even numbers: ",
		Separator:  " ",
		Terminator: "\n",
	}
}

// Numbers returns the fixed input sequence. Each call returns a new slice.
func Numbers() []int {
	return []int{1, 2, 3, 4, 5}
}

// View derives the lazy even-valued view of numbers.
func View(numbers []int) seq.View[int] {
	return seq.Over(numbers).Filter(pred.IsEven[int])
}

// Write prints the even values of numbers to w in source order.
func Write(w io.Writer, numbers []int, opts Options) error {
	if _, err := io.WriteString(w, opts.Label); err != nil {
		return fmt.Errorf("write label: %w", err)
	}
	err := seq.ForEach(View(numbers).Iter(), func(n int) error {
		_, err := io.WriteString(w, strconv.Itoa(n)+opts.Separator)
		return err
	})
	if err != nil {
		return fmt.Errorf("write number: %w", err)
	}
	if _, err := io.WriteString(w, opts.Terminator); err != nil {
		return fmt.Errorf("write terminator: %w", err)
	}
	return nil
}
