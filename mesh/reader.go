// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"bufio"
	goio "io"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
)

// SetBlock holds a named set read from an Abaqus file
type SetBlock struct {
	Key string // "NSET" or "ELSET"
	Set        // name and 0-based ids

	// auxiliary
	generate bool // data lines hold "first, last[, increment]"
}

// ReadSets reads all *NSET and *ELSET blocks. Other keywords and their data lines are skipped
func ReadSets(r goio.Reader) (blocks []*SetBlock, err error) {
	var cur *SetBlock
	scanner := bufio.NewScanner(r)
	nline := 0
	for scanner.Scan() {
		nline++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "**") {
			continue
		}
		if strings.HasPrefix(line, "*") {
			cur, err = parseSetHeader(line)
			if err != nil {
				return nil, chk.Err("line %d: %v", nline, err)
			}
			if cur != nil {
				blocks = append(blocks, cur)
			}
			continue
		}
		if cur == nil {
			continue
		}
		if cur.generate {
			if err = cur.expand(line); err != nil {
				return nil, chk.Err("line %d: %v", nline, err)
			}
			continue
		}
		for _, field := range strings.Split(line, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			id, e := strconv.Atoi(field)
			if e != nil {
				return nil, chk.Err("line %d: cannot parse member %q of set %q", nline, field, cur.Name)
			}
			cur.Ids = append(cur.Ids, id-IdShift)
		}
	}
	if err = scanner.Err(); err != nil {
		return nil, chk.Err("cannot read sets:\n%v", err)
	}
	return
}

// parseSetHeader parses lines such as "*NSET, NSET=name". Returns nil if line is not a set header
func parseSetHeader(line string) (*SetBlock, error) {
	fields := strings.Split(line, ",")
	key := strings.ToUpper(strings.TrimSpace(strings.TrimPrefix(fields[0], "*")))
	if key != "NSET" && key != "ELSET" {
		return nil, nil
	}
	var o *SetBlock
	generate := false
	for _, field := range fields[1:] {
		kv := strings.SplitN(field, "=", 2)
		opt := strings.ToUpper(strings.TrimSpace(kv[0]))
		if len(kv) == 2 && opt == key {
			o = &SetBlock{Key: key, Set: Set{Name: strings.TrimSpace(kv[1])}}
		}
		if len(kv) == 1 && opt == "GENERATE" {
			generate = true
		}
	}
	if o == nil {
		return nil, chk.Err("set header %q has no name", line)
	}
	o.generate = generate
	return o, nil
}

// expand appends the members given by "first, last[, increment]"
func (o *SetBlock) expand(line string) error {
	var v []int
	for _, field := range strings.Split(line, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			return chk.Err("cannot parse generator %q of set %q", field, o.Name)
		}
		v = append(v, n)
	}
	if len(v) == 2 {
		v = append(v, 1)
	}
	if len(v) != 3 || v[2] < 1 || v[1] < v[0] {
		return chk.Err("generator %q of set %q is invalid; \"first, last[, increment]\" with first <= last and increment >= 1 is required", line, o.Name)
	}
	for id := v[0]; id <= v[1]; id += v[2] {
		o.Ids = append(o.Ids, id-IdShift)
	}
	return nil
}
