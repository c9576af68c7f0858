// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Package connstring parses the subset of the MongoDB connection string
// format that configures read and write concerns: hosts, the auth database,
// and the readConcernLevel, w, journal, and wtimeoutMS options.
package connstring

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// ConnString represents a connection string to MongoDB.
type ConnString struct {
	Original         string
	Hosts            []string
	Database         string
	ReadConcernLevel string
	WString          string
	WNumber          int
	WNumberSet       bool
	J                bool
	JSet             bool
	WTimeout         time.Duration
	WTimeoutSet      bool

	// Options holds every query option by lowercased name, in the order
	// the values appeared, including options this package does not handle
	// itself.
	Options map[string][]string
}

const scheme = "mongodb://"

// Parse parses the provided uri and returns a URI object.
func Parse(s string) (ConnString, error) {
	var cs ConnString
	cs.Original = s

	if !strings.HasPrefix(s, scheme) {
		return cs, errors.Errorf("scheme must be \"mongodb\": %q", s)
	}
	rest := s[len(scheme):]

	var query string
	if idx := strings.IndexByte(rest, '?'); idx >= 0 {
		rest, query = rest[:idx], rest[idx+1:]
	}

	if idx := strings.IndexByte(rest, '/'); idx >= 0 {
		rest, cs.Database = rest[:idx], rest[idx+1:]
	}

	if len(rest) == 0 {
		return cs, errors.New("must have at least one host")
	}
	for _, host := range strings.Split(rest, ",") {
		if len(host) == 0 {
			return cs, errors.Errorf("empty host in host list: %q", s)
		}
		cs.Hosts = append(cs.Hosts, host)
	}

	if err := cs.parseOptions(query); err != nil {
		return cs, err
	}

	return cs, nil
}

func (cs *ConnString) parseOptions(query string) error {
	if len(query) == 0 {
		return nil
	}

	cs.Options = make(map[string][]string)
	for _, pair := range strings.Split(query, "&") {
		if len(pair) == 0 {
			continue
		}
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) != 2 || len(kv[0]) == 0 {
			return errors.Errorf("invalid option: %q", pair)
		}

		value, err := url.QueryUnescape(kv[1])
		if err != nil {
			return errors.Wrapf(err, "invalid option value %q", kv[1])
		}

		key := strings.ToLower(kv[0])
		cs.Options[key] = append(cs.Options[key], value)
	}

	if level, ok := cs.option("readconcernlevel"); ok {
		cs.ReadConcernLevel = level
	}

	if w, ok := cs.option("w"); ok {
		if n, err := strconv.Atoi(w); err == nil {
			if n < 0 {
				return errors.New("connection string `w` must be a non-negative number")
			}
			cs.WNumber = n
			cs.WNumberSet = true
		} else {
			cs.WString = w
		}
	}

	// Both spellings of the journal and timeout options are accepted; the
	// lookup order is fixed and the first one present wins.
	if j, ok := cs.option("j", "journal"); ok {
		b, err := strconv.ParseBool(j)
		if err != nil {
			return errors.Errorf("journal must be \"true\" or \"false\": %q", j)
		}
		cs.J = b
		cs.JSet = true
	}

	if ms, ok := cs.option("wtimeout", "wtimeoutms"); ok {
		n, err := strconv.Atoi(ms)
		if err != nil {
			return errors.Errorf("wtimeoutMS must be an integer: %q", ms)
		}
		if n < 0 {
			return errors.New("wtimeoutMS must be a non-negative number")
		}
		cs.WTimeout = time.Duration(n) * time.Millisecond
		cs.WTimeoutSet = true
	}

	return nil
}

// option returns the first value recorded for the first of the given keys
// present in the options.
func (cs *ConnString) option(keys ...string) (string, bool) {
	for _, key := range keys {
		if values, ok := cs.Options[key]; ok && len(values) > 0 {
			return values[0], true
		}
	}
	return "", false
}
