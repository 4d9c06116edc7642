package entities

import (
	"errors"
	"strconv"
	"strings"
)

// Pair is one element of a serialized name/value list: a consumed food and
// its quantity in grams, an exercise and its calories burned, or a composite
// ingredient and its quantity.
type Pair struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type PairList []Pair

// ErrMalformedRecord indicates a serialized pair-list field that does not
// parse. Read paths treat such a field as an empty list instead of failing
// the whole row.
var ErrMalformedRecord = errors.New("malformed pair list")

// The wire format is the legacy database contract: pairs joined by ';',
// name and value joined by ','. No escaping exists, so names containing
// either separator are rejected at write time (ContainsReservedChar).
const (
	pairSeparator  = ";"
	valueSeparator = ","
)

// ContainsReservedChar reports whether a name would corrupt the wire format.
func ContainsReservedChar(name string) bool {
	return strings.ContainsAny(name, pairSeparator+valueSeparator)
}

// EncodePairs serializes a pair list. An empty list encodes to "".
func EncodePairs(pairs PairList) string {
	if len(pairs) == 0 {
		return ""
	}
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, p.Name+valueSeparator+strconv.FormatFloat(p.Value, 'f', -1, 64))
	}
	return strings.Join(parts, pairSeparator)
}

// DecodePairs parses a serialized pair list. "" decodes to an empty list.
// Any element that is not exactly name,number fails the whole field with
// ErrMalformedRecord.
func DecodePairs(s string) (PairList, error) {
	if s == "" {
		return PairList{}, nil
	}
	items := strings.Split(s, pairSeparator)
	pairs := make(PairList, 0, len(items))
	for _, item := range items {
		name, raw, ok := strings.Cut(item, valueSeparator)
		if !ok || name == "" {
			return nil, ErrMalformedRecord
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, ErrMalformedRecord
		}
		pairs = append(pairs, Pair{Name: name, Value: value})
	}
	return pairs, nil
}
