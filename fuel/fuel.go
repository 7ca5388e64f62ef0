// Package fuel computes the fuel needed to launch spacecraft modules.
package fuel

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/ezrec/aoc2019/translate"
)

var f = translate.From

var (
	ErrMassEmpty = errors.New(f("mass list empty"))
)

type ErrParseMass struct {
	LineNo int
	Text   string
}

func (err ErrParseMass) Error() string {
	return f("line %d '%v' is not a mass", err.LineNo, err.Text)
}

// Required returns the fuel needed to lift mass, ignoring the fuel itself.
// The result is negative for very small masses.
func Required(mass int64) int64 {
	return mass/3 - 2
}

// Total returns the fuel needed to lift mass, including the fuel needed to
// lift that fuel, until the additional requirement is not positive.
func Total(mass int64) (fuel int64) {
	for extra := Required(mass); extra > 0; extra = Required(extra) {
		fuel += extra
	}

	return
}

// Sum adds fn(mass) over every mass.
func Sum(masses []int64, fn func(int64) int64) (sum int64) {
	for _, mass := range masses {
		sum += fn(mass)
	}

	return
}

// Parse reads one decimal mass per line. Blank lines are skipped.
func Parse(r io.Reader) (masses []int64, err error) {
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		text := strings.TrimSpace(scanner.Text())
		if len(text) == 0 {
			continue
		}
		var mass int64
		mass, err = strconv.ParseInt(text, 10, 64)
		if err != nil {
			err = ErrParseMass{LineNo: lineno, Text: text}
			return
		}
		masses = append(masses, mass)
	}
	err = scanner.Err()
	if err != nil {
		return
	}

	if len(masses) == 0 {
		err = ErrMassEmpty
	}

	return
}
