package fixture

import (
	"bufio"
	"os"
	"regexp"
	"strconv"

	"github.com/alglobo/exgen/pkg/paymentstore"
	"github.com/rs/zerolog/log"
)

// paymentLine is the row format alglobo accepts. Other lines are skipped by alglobo.
var paymentLine = regexp.MustCompile(`^(\d+),(\d+\.\d{2}),(\d+\.\d{2})$`)

// Report summarizes a fixture file as alglobo would read it
type Report struct {
	Lines      int   // lines in the file
	Payments   int   // distinct payment ids
	Skipped    int   // lines alglobo would skip, or ids below 1
	Duplicates []int // ids that appear more than once, ascending
	Missing    int   // ids between 1 and the highest id that do not appear
}

// OK reports whether the file holds exactly the payments 1..n, each once
func (r Report) OK() bool {
	return r.Skipped == 0 && len(r.Duplicates) == 0 && r.Missing == 0
}

// Verify reads the fixture file at path and checks it against the alglobo row format.
// Only errors opening or reading the file are returned; content problems end up in the Report.
func Verify(path string) (Report, error) {
	logger := log.With().Str("component", "verify").Logger()
	var rep Report

	f, err := os.Open(path)
	if err != nil {
		return rep, &FileAccessError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	s := paymentstore.NewStore()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		rep.Lines++
		p, ok := parsePayment(scanner.Text())
		if !ok {
			logger.Debug().Msgf("skipping line %d: %q", rep.Lines, scanner.Text())
			rep.Skipped++
			continue
		}
		s.Write(p)
	}
	if err := scanner.Err(); err != nil {
		return rep, &FileAccessError{Op: "read", Path: path, Err: err}
	}

	next := 1
	for _, id := range s.List() {
		_, n, _ := s.Read(id)
		if n > 1 {
			rep.Duplicates = append(rep.Duplicates, id)
		}
		rep.Missing += id - next
		next = id + 1
	}
	rep.Payments = s.Len()

	logger.Info().Msgf("%s: %d lines, %d payments, %d skipped, %d duplicates, %d missing",
		path, rep.Lines, rep.Payments, rep.Skipped, len(rep.Duplicates), rep.Missing)
	return rep, nil
}

func parsePayment(line string) (paymentstore.Payment, bool) {
	m := paymentLine.FindStringSubmatch(line)
	if m == nil {
		return paymentstore.Payment{}, false
	}
	id, err := strconv.Atoi(m[1])
	if err != nil || id < 1 {
		return paymentstore.Payment{}, false
	}
	// the pattern guarantees both amounts parse
	airline, _ := strconv.ParseFloat(m[2], 64)
	hotel, _ := strconv.ParseFloat(m[3], 64)
	return paymentstore.Payment{ID: id, AirlineAmount: airline, HotelAmount: hotel}, true
}
