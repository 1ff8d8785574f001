package service

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// statement exports are named <prefix><6 digits>(<card digits>).csv
const filePrefix = "enavi"

var routeRe = regexp.MustCompile(`^` + filePrefix + `(\d{6})\(`)

// Route extracts the destination month from a statement file name. Two digit
// layouts exist in the wild, YYYYMM and YYMMDD: when the first four digits
// read as a year >= 2000 the YYYYMM reading is preferred, otherwise YYMMDD.
// If the preferred reading yields no valid month the other layout is tried.
// The threshold check cannot distinguish every YYMMDD name from a YYYYMM one
// (see route_test.go for the pinned ambiguous case).
func Route(fileName string) (int, bool) {
	name := fileName
	if strings.EqualFold(filepath.Ext(name), ".csv") {
		name = name[:len(name)-len(".csv")]
	}
	m := routeRe.FindStringSubmatch(name)
	if m == nil {
		return 0, false
	}
	digits := m[1]
	yyyymm, _ := strconv.Atoi(digits[4:6]) // month if YYYYMM
	yymmdd, _ := strconv.Atoi(digits[2:4]) // month if YYMMDD

	first4, _ := strconv.Atoi(digits[:4])
	candidates := []int{yymmdd, yyyymm}
	if first4 >= 2000 {
		candidates = []int{yyyymm, yymmdd}
	}
	for _, month := range candidates {
		if month >= 1 && month <= 12 {
			return month, true
		}
	}
	return 0, false
}
