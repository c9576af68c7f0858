// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package command_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"

	"github.com/virushuo/mongo-go-concern/core/command"
	"github.com/virushuo/mongo-go-concern/core/readconcern"
	"github.com/virushuo/mongo-go-concern/core/writeconcern"
)

func levelDoc(level string) bsoncore.Document {
	return bsoncore.BuildDocument(nil, bsoncore.AppendStringElement(nil, "level", level))
}

func TestResolveReadConcern(t *testing.T) {
	t.Parallel()

	base := bsoncore.BuildDocument(nil, bsoncore.AppendInt32Element(nil, "ping", 1))

	testCases := []struct {
		name      string
		requested *readconcern.ReadConcern
		caller    *readconcern.ReadConcern
		cmd       bsoncore.Document
		want      bsoncore.Document
	}{
		{
			name:      "no request inherits without appending",
			requested: nil,
			caller:    readconcern.Majority(),
			cmd:       base,
			want:      base,
		},
		{
			name:      "no request and nil base stays nil",
			requested: nil,
			caller:    readconcern.Majority(),
			cmd:       nil,
			want:      nil,
		},
		{
			name:      "both default appends nothing",
			requested: readconcern.New(),
			caller:    readconcern.New(),
			cmd:       nil,
			want:      nil,
		},
		{
			name:      "default request with nil caller appends nothing",
			requested: readconcern.New(),
			caller:    nil,
			cmd:       base,
			want:      base,
		},
		{
			name:      "override wins over caller",
			requested: readconcern.Majority(),
			caller:    readconcern.Local(),
			cmd:       nil,
			want: bsoncore.BuildDocument(nil,
				bsoncore.AppendDocumentElement(nil, "readConcern", levelDoc("majority"))),
		},
		{
			name:      "non-default request with matching caller still appends",
			requested: readconcern.Majority(),
			caller:    readconcern.Majority(),
			cmd:       nil,
			want: bsoncore.BuildDocument(nil,
				bsoncore.AppendDocumentElement(nil, "readConcern", levelDoc("majority"))),
		},
		{
			name:      "explicit default overrides non-default caller with empty document",
			requested: readconcern.New(),
			caller:    readconcern.Majority(),
			cmd:       nil,
			want: bsoncore.BuildDocument(nil,
				bsoncore.AppendDocumentElement(nil, "readConcern", bsoncore.BuildDocument(nil, nil))),
		},
		{
			name:      "unrelated keys are preserved",
			requested: readconcern.Snapshot(),
			caller:    nil,
			cmd:       base,
			want: bsoncore.BuildDocument(nil,
				bsoncore.AppendDocumentElement(
					bsoncore.AppendInt32Element(nil, "ping", 1),
					"readConcern", levelDoc("snapshot"))),
		},
		{
			name:      "existing read concern is replaced",
			requested: readconcern.Majority(),
			caller:    nil,
			cmd: bsoncore.BuildDocument(nil,
				bsoncore.AppendDocumentElement(
					bsoncore.AppendInt32Element(nil, "ping", 1),
					"readConcern", levelDoc("local"))),
			want: bsoncore.BuildDocument(nil,
				bsoncore.AppendDocumentElement(
					bsoncore.AppendInt32Element(nil, "ping", 1),
					"readConcern", levelDoc("majority"))),
		},
	}

	for _, tc := range testCases {
		tc := tc // Capture range variable.

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := command.ResolveReadConcern(tc.requested, tc.caller, tc.cmd)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got, "expected command %s, got %s",
				bsoncore.Document(tc.want).String(), bsoncore.Document(got).String())
		})
	}
}

func TestResolveWriteConcern(t *testing.T) {
	t.Parallel()

	w2 := bsoncore.BuildDocument(nil, bsoncore.AppendInt32Element(nil, "w", 2))

	testCases := []struct {
		name      string
		requested *writeconcern.WriteConcern
		caller    *writeconcern.WriteConcern
		cmd       bsoncore.Document
		want      bsoncore.Document
	}{
		{
			name:      "no request inherits without appending",
			requested: nil,
			caller:    writeconcern.New(writeconcern.W(2)),
			cmd:       nil,
			want:      nil,
		},
		{
			name:      "both default appends nothing",
			requested: writeconcern.New(),
			caller:    nil,
			cmd:       nil,
			want:      nil,
		},
		{
			name:      "override wins over caller",
			requested: writeconcern.New(writeconcern.W(2)),
			caller:    writeconcern.New(writeconcern.W(1)),
			cmd:       nil,
			want: bsoncore.BuildDocument(nil,
				bsoncore.AppendDocumentElement(nil, "writeConcern", w2)),
		},
		{
			name:      "explicit default overrides non-default caller with empty document",
			requested: writeconcern.New(),
			caller:    writeconcern.New(writeconcern.W(1)),
			cmd:       nil,
			want: bsoncore.BuildDocument(nil,
				bsoncore.AppendDocumentElement(nil, "writeConcern", bsoncore.BuildDocument(nil, nil))),
		},
	}

	for _, tc := range testCases {
		tc := tc // Capture range variable.

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := command.ResolveWriteConcern(tc.requested, tc.caller, tc.cmd)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestResolveWriteConcern_invalid(t *testing.T) {
	t.Parallel()

	requested := writeconcern.New(writeconcern.W(0), writeconcern.J(true))

	_, err := command.ResolveWriteConcern(requested, nil, nil)
	assert.ErrorIs(t, err, writeconcern.ErrInconsistent)
}

func TestResolve_malformedBase(t *testing.T) {
	t.Parallel()

	// Truncated document bytes: a length header pointing past the end.
	malformed := bsoncore.Document{0x20, 0x00, 0x00, 0x00, 0x01}

	_, err := command.ResolveReadConcern(readconcern.Majority(), nil, malformed)
	assert.Error(t, err)
}
