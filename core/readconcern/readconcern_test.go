// Copyright (C) MongoDB, Inc. 2023-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package readconcern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"

	"github.com/virushuo/mongo-go-concern/core/readconcern"
)

func TestReadConcern_MarshalBSONValue(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		rc        *readconcern.ReadConcern
		bytes     []byte
		wantError error
	}{
		{
			name:      "local",
			rc:        readconcern.Local(),
			bytes:     bsoncore.BuildDocument(nil, bsoncore.AppendStringElement(nil, "level", "local")),
			wantError: nil,
		},
		{
			name:      "custom level",
			rc:        readconcern.New(readconcern.Level("future")),
			bytes:     bsoncore.BuildDocument(nil, bsoncore.AppendStringElement(nil, "level", "future")),
			wantError: nil,
		},
		{
			name:      "empty",
			rc:        readconcern.New(),
			bytes:     bsoncore.BuildDocument(nil, nil),
			wantError: nil,
		},
		{
			name:      "nil",
			rc:        nil,
			bytes:     nil,
			wantError: readconcern.ErrEmptyReadConcern,
		},
	}

	for _, tc := range testCases {
		tc := tc // Capture range variable.

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, b, err := tc.rc.MarshalBSONValue()
			assert.Equal(t, tc.bytes, b, "expected and actual outputs do not match")
			assert.Equal(t, tc.wantError, err, "expected and actual errors do not match")
		})
	}
}

func TestReadConcern_constructors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		rc        *readconcern.ReadConcern
		wantLevel string
	}{
		{name: "local", rc: readconcern.Local(), wantLevel: "local"},
		{name: "available", rc: readconcern.Available(), wantLevel: "available"},
		{name: "majority", rc: readconcern.Majority(), wantLevel: "majority"},
		{name: "linearizable", rc: readconcern.Linearizable(), wantLevel: "linearizable"},
		{name: "snapshot", rc: readconcern.Snapshot(), wantLevel: "snapshot"},
		{name: "empty", rc: readconcern.New(), wantLevel: ""},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.wantLevel, tc.rc.GetLevel())
			assert.Equal(t, tc.wantLevel == "", tc.rc.IsDefault())
		})
	}
}

func TestReadConcern_NewFromLevel(t *testing.T) {
	t.Parallel()

	t.Run("known level", func(t *testing.T) {
		t.Parallel()

		rc, err := readconcern.NewFromLevel("majority")
		require.NoError(t, err)
		assert.Equal(t, "majority", rc.GetLevel())
	})

	t.Run("unknown level", func(t *testing.T) {
		t.Parallel()

		rc, err := readconcern.NewFromLevel("blah")
		assert.Nil(t, rc)
		assert.ErrorIs(t, err, readconcern.ErrInvalidLevel)
	})
}

func TestReadConcern_FromDocument(t *testing.T) {
	t.Parallel()

	t.Run("level present", func(t *testing.T) {
		t.Parallel()

		doc := bsoncore.BuildDocument(nil, bsoncore.AppendStringElement(nil, "level", "linearizable"))
		rc, err := readconcern.FromDocument(doc)
		require.NoError(t, err)
		assert.Equal(t, "linearizable", rc.GetLevel())
	})

	t.Run("level absent", func(t *testing.T) {
		t.Parallel()

		rc, err := readconcern.FromDocument(bsoncore.BuildDocument(nil, nil))
		require.NoError(t, err)
		require.NotNil(t, rc)
		assert.True(t, rc.IsDefault())
	})

	t.Run("level has wrong type", func(t *testing.T) {
		t.Parallel()

		doc := bsoncore.BuildDocument(nil, bsoncore.AppendInt32Element(nil, "level", 1))
		_, err := readconcern.FromDocument(doc)
		assert.Error(t, err)
	})
}

func TestReadConcern_Equal(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		a, b *readconcern.ReadConcern
		want bool
	}{
		{name: "same level", a: readconcern.Majority(), b: readconcern.Majority(), want: true},
		{name: "different levels", a: readconcern.Majority(), b: readconcern.Local(), want: false},
		{name: "both nil", a: nil, b: nil, want: true},
		{name: "nil and empty", a: nil, b: readconcern.New(), want: true},
		{name: "nil and level", a: nil, b: readconcern.Local(), want: false},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, tc.a.Equal(tc.b))
			assert.Equal(t, tc.want, tc.b.Equal(tc.a))
		})
	}
}
